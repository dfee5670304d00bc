package mnemonic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChecksum indicates the checksum bits derived from the phrase's
// entropy do not match the checksum carried by the final word.
var ErrInvalidChecksum = errors.New("mnemonic: invalid checksum")

// BadWordCountError indicates a phrase whose word count is not a multiple of
// the word group size.
type BadWordCountError struct {
	Count int
}

func (e *BadWordCountError) Error() string {
	return fmt.Sprintf("mnemonic: word count %d is not a multiple of %d", e.Count, WordGroupSize)
}

// UnknownWordError names the first word that ruled out every candidate
// wordlist. Validation short-circuits at that word.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("mnemonic: unknown word %q", e.Word)
}

// BadEntropyBitCountError indicates an entropy size no supported phrase
// length can carry.
type BadEntropyBitCountError struct {
	Bits int
}

func (e *BadEntropyBitCountError) Error() string {
	return fmt.Sprintf("mnemonic: %d entropy bits; need 128, 192, or 256", e.Bits)
}

// AmbiguousWordListError indicates the phrase is valid under more than one
// language's wordlist. It is not a defect in the phrase; the caller must
// resolve it by parsing with an explicit language.
type AmbiguousWordListError struct {
	Languages []Language
}

func (e *AmbiguousWordListError) Error() string {
	names := make([]string, len(e.Languages))
	for i, l := range e.Languages {
		names[i] = l.String()
	}
	return fmt.Sprintf("mnemonic: phrase is valid in multiple languages: %s", strings.Join(names, ", "))
}
