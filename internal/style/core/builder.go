package core

import "github.com/dshills/stylemap/internal/font"

// LineBuilder accumulates rendering attributes for a single line of text.
// It is the narrow surface this subsystem drives on the downstream
// text-layout builder; implementations compose overlapping attributes
// with later-wins semantics, so callers control layering by emission
// order.
type LineBuilder interface {
	// AddForegroundSpan applies a foreground color to a range.
	AddForegroundSpan(r Range, c Color)

	// AddBackgroundSpan applies a background color to a range.
	AddBackgroundSpan(r Range, c Color)

	// AddFontSpan applies a concrete font to a range.
	AddFontSpan(r Range, f font.Font)

	// AddSyntheticSlantSpan marks a range for rendering-side italic
	// simulation, used when no true italic variant exists.
	AddSyntheticSlantSpan(r Range)

	// AddUnderlineSpan applies an underline decoration to a range.
	AddUnderlineSpan(r Range, u UnderlineStyle)

	// Measure returns the advance width of the line as built so far.
	Measure() float64
}

// LineFactory creates a LineBuilder for one line of text. The registry
// uses it for width measurement; the daemon uses it to realize decoded
// spans.
type LineFactory interface {
	NewLine(text string) LineBuilder
}
