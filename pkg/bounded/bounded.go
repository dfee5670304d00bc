// Package bounded provides fixed-capacity strings for fields that must never
// exceed a known size, such as bech32 address prefixes. Construction is
// all-or-nothing: a value that does not fit is rejected rather than truncated.
package bounded

import "errors"

// ErrTooLong indicates the value exceeds the string's capacity.
var ErrTooLong = errors.New("bounded: string exceeds capacity")

// String is an immutable string with a fixed maximum capacity.
//
// The zero value is an empty string with zero capacity.
type String struct {
	value    string
	capacity int
}

// NewString returns a String holding value, or ErrTooLong if value does not
// fit within capacity bytes. The value is never truncated.
func NewString(value string, capacity int) (String, error) {
	if len(value) > capacity {
		return String{}, ErrTooLong
	}
	return String{value: value, capacity: capacity}, nil
}

// String returns the held value.
func (s String) String() string { return s.value }

// Len returns the length of the held value in bytes.
func (s String) Len() int { return len(s.value) }

// Cap returns the capacity the String was constructed with.
func (s String) Cap() int { return s.capacity }
