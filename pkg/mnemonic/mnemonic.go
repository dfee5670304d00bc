// Package mnemonic parses and validates BIP39 recovery phrases across the
// eight standard wordlists, classifying each failure mode separately so
// callers can report exactly what is wrong with a phrase.
package mnemonic

import (
	"crypto/sha256"
	"strings"

	"github.com/cosmos/go-bip39"
)

const (
	// WordGroupSize is the granularity of valid phrase lengths.
	WordGroupSize = 6

	// MinEntropyBits and MaxEntropyBits bound the entropy a phrase may encode.
	MinEntropyBits = 128
	MaxEntropyBits = 256

	bitsPerWord = 11
)

// Mnemonic is a validated recovery phrase. The zero value is not usable;
// construct one with Parse, ParseWithLanguage, or New.
type Mnemonic struct {
	words   []string
	lang    Language
	entropy []byte
}

// Parse validates a phrase, auto-detecting its language. A phrase valid
// under more than one wordlist fails with AmbiguousWordListError; resolve it
// with ParseWithLanguage.
func Parse(phrase string) (*Mnemonic, error) {
	words := strings.Fields(phrase)
	if err := checkLength(len(words)); err != nil {
		return nil, err
	}

	candidates := Languages()
	for _, word := range words {
		var kept []Language
		for _, lang := range candidates {
			if _, ok := wordIndexByLanguage[lang][word]; ok {
				kept = append(kept, lang)
			}
		}
		if len(kept) == 0 {
			return nil, &UnknownWordError{Word: word}
		}
		candidates = kept
	}
	if len(candidates) > 1 {
		return nil, &AmbiguousWordListError{Languages: candidates}
	}

	return finish(words, candidates[0])
}

// ParseWithLanguage validates a phrase against a single wordlist, bypassing
// detection.
func ParseWithLanguage(phrase string, lang Language) (*Mnemonic, error) {
	words := strings.Fields(phrase)
	if err := checkLength(len(words)); err != nil {
		return nil, err
	}

	index := wordIndexByLanguage[lang]
	for _, word := range words {
		if _, ok := index[word]; !ok {
			return nil, &UnknownWordError{Word: word}
		}
	}

	return finish(words, lang)
}

// New generates a fresh English mnemonic carrying the given number of
// entropy bits: 128, 192, or 256. Other sizes would yield word counts that
// break the phrase grouping and are rejected.
func New(bits int) (*Mnemonic, error) {
	if bits < MinEntropyBits || bits > MaxEntropyBits || bits%64 != 0 {
		return nil, &BadEntropyBitCountError{Bits: bits}
	}
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return nil, &BadEntropyBitCountError{Bits: bits}
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, &BadEntropyBitCountError{Bits: bits}
	}
	return ParseWithLanguage(phrase, English)
}

// String returns the phrase with words joined by single spaces.
func (m *Mnemonic) String() string {
	return strings.Join(m.words, " ")
}

// Words returns a copy of the phrase's words.
func (m *Mnemonic) Words() []string {
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out
}

// Language reports which wordlist the phrase was validated against.
func (m *Mnemonic) Language() Language {
	return m.lang
}

// Entropy returns a copy of the entropy the phrase encodes.
func (m *Mnemonic) Entropy() []byte {
	out := make([]byte, len(m.entropy))
	copy(out, m.entropy)
	return out
}

// Seed derives the 64-byte BIP39 seed for the phrase under the given
// passphrase.
func (m *Mnemonic) Seed(passphrase string) []byte {
	return bip39.NewSeed(m.String(), passphrase)
}

func checkLength(count int) error {
	if count == 0 || count%WordGroupSize != 0 {
		return &BadWordCountError{Count: count}
	}
	bits := count / 3 * 32
	if bits < MinEntropyBits || bits > MaxEntropyBits {
		return &BadEntropyBitCountError{Bits: bits}
	}
	return nil
}

// finish packs the word indices into entropy plus checksum bits and verifies
// the checksum against SHA-256 of the entropy.
func finish(words []string, lang Language) (*Mnemonic, error) {
	index := wordIndexByLanguage[lang]

	totalBits := len(words) * bitsPerWord
	buf := make([]byte, (totalBits+7)/8)
	bit := 0
	for _, word := range words {
		v := index[word]
		for i := bitsPerWord - 1; i >= 0; i-- {
			if v&(1<<uint(i)) != 0 {
				buf[bit/8] |= 1 << uint(7-bit%8)
			}
			bit++
		}
	}

	entropyBits := len(words) / 3 * 32
	checksumBits := totalBits - entropyBits
	entropy := buf[:entropyBits/8]

	hash := sha256.Sum256(entropy)
	want := hash[0] >> uint(8-checksumBits)
	got := buf[entropyBits/8] >> uint(8-checksumBits)
	if want != got {
		return nil, ErrInvalidChecksum
	}

	return &Mnemonic{words: words, lang: lang, entropy: entropy}, nil
}
