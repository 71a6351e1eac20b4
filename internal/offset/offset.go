// Package offset converts text offsets between the wire encoding
// (UTF-8 bytes) and the rendering encoding (UTF-16 code units).
package offset

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrInvalidOffset reports a byte offset that is past the end of the
// text or does not fall on a code-point boundary. Callers treat it as
// malformed input, not a fatal condition.
var ErrInvalidOffset = errors.New("invalid byte offset")

// ToUTF16 converts a UTF-8 byte offset into text to the equivalent
// UTF-16 code-unit offset.
func ToUTF16(text string, byteOff int) (int, error) {
	if byteOff < 0 || byteOff > len(text) {
		return 0, fmt.Errorf("%w: %d out of range for %d bytes", ErrInvalidOffset, byteOff, len(text))
	}
	if byteOff < len(text) && !utf8.RuneStart(text[byteOff]) {
		return 0, fmt.Errorf("%w: %d not on a code-point boundary", ErrInvalidOffset, byteOff)
	}

	units := 0
	for _, r := range text[:byteOff] {
		units += utf16.RuneLen(r)
	}
	return units, nil
}

// UTF16Len returns the length of text in UTF-16 code units.
func UTF16Len(text string) int {
	units := 0
	for _, r := range text {
		units += utf16.RuneLen(r)
	}
	return units
}
