// Package core provides shared value types for the style subsystem.
// This package breaks import cycles between the registry, the span
// decoder, the protocol layer, and line-builder implementations.
package core

import "fmt"

// ID identifies a style in the registry.
//
// Identifiers below the configured reserved threshold are owned by the
// protocol for built-in purposes (selection, find highlights) and are
// never resolved through the registry's attribute-application path.
type ID int

// DefaultReserved is the default number of protocol-reserved style
// identifiers. The protocol describes the reservation as a temporary
// artifact, so it is carried as a configurable value rather than baked
// into call sites; this is only the default.
const DefaultReserved = 8

// Color is a 32-bit ARGB-packed color value.
//
// The color model is opaque to this subsystem: values are carried from
// the protocol to the rendering builder without interpretation, except
// that a zero alpha component marks a background color as absent.
type Color uint32

// ARGB creates a color from individual components.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// Red returns the red component.
func (c Color) Red() uint8 {
	return uint8(c >> 16)
}

// Green returns the green component.
func (c Color) Green() uint8 {
	return uint8(c >> 8)
}

// Blue returns the blue component.
func (c Color) Blue() uint8 {
	return uint8(c)
}

// String returns the color as #aarrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// Range is a half-open interval of UTF-16 code units within a line.
type Range struct {
	Start int // inclusive
	End   int // exclusive
}

// Len returns the length of the range in code units.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no code units.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains reports whether the given code-unit offset is within the range.
func (r Range) Contains(off int) bool {
	return off >= r.Start && off < r.End
}

// String returns the range in start..end form.
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Span pairs a range of rendering code units with a style identifier.
// Spans are produced transiently per line of text and never persisted.
type Span struct {
	Range Range
	ID    ID
}

// UnderlineStyle selects the underline decoration of an underline span.
type UnderlineStyle int

const (
	// UnderlineSingle is a plain single underline.
	UnderlineSingle UnderlineStyle = iota
)

// String returns the underline style name.
func (u UnderlineStyle) String() string {
	switch u {
	case UnderlineSingle:
		return "single"
	default:
		return "unknown"
	}
}
