// Package termline implements the line-builder interface on top of
// tcell styles, for terminal rendering and headless width measurement.
//
// Fonts do not exist in a terminal; font spans degrade to the bold
// attribute when the resolved font's weight is at or above the bold
// threshold, and synthetic slant degrades to the italic attribute.
// Advance width is measured in terminal cells.
package termline

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/stylemap/internal/font"
	"github.com/dshills/stylemap/internal/offset"
	"github.com/dshills/stylemap/internal/style/core"
)

// boldWeight is the native-scale weight at and above which a font span
// renders as the terminal bold attribute. Native regular is 5 (the
// remap of protocol weight 400); 7 ≈ semibold.
const boldWeight = 7

// Cell is one styled rune of a built line.
type Cell struct {
	Rune  rune
	Width int
	Style tcell.Style
}

// Builder accumulates tcell styling for a single line of text. Spans
// are addressed in UTF-16 code units, matching what the registry and
// span decoder produce.
type Builder struct {
	backend font.Backend
	cells   []Cell
	starts  []int // UTF-16 start offset of each cell's rune
}

// Factory creates Builders bound to a font backend.
type Factory struct {
	backend font.Backend
}

// NewFactory creates a factory. The backend interprets font handles
// applied to lines; it may be nil when no font spans will be applied.
func NewFactory(backend font.Backend) *Factory {
	return &Factory{backend: backend}
}

// NewLine implements core.LineFactory.
func (f *Factory) NewLine(text string) core.LineBuilder {
	return New(text, f.backend)
}

// New creates a builder for one line of text.
func New(text string, backend font.Backend) *Builder {
	b := &Builder{backend: backend}
	unit := 0
	for _, r := range text {
		b.cells = append(b.cells, Cell{
			Rune:  r,
			Width: runewidth.RuneWidth(r),
			Style: tcell.StyleDefault,
		})
		b.starts = append(b.starts, unit)
		unit += offset.UTF16Len(string(r))
	}
	return b
}

// Cells returns the styled cells built so far.
func (b *Builder) Cells() []Cell {
	return b.cells
}

// apply restyles every cell whose rune starts inside r.
func (b *Builder) apply(r core.Range, f func(tcell.Style) tcell.Style) {
	for i := range b.cells {
		if r.Contains(b.starts[i]) {
			b.cells[i].Style = f(b.cells[i].Style)
		}
	}
}

// AddForegroundSpan implements core.LineBuilder.
func (b *Builder) AddForegroundSpan(r core.Range, c core.Color) {
	b.apply(r, func(s tcell.Style) tcell.Style {
		return s.Foreground(toTcell(c))
	})
}

// AddBackgroundSpan implements core.LineBuilder.
func (b *Builder) AddBackgroundSpan(r core.Range, c core.Color) {
	b.apply(r, func(s tcell.Style) tcell.Style {
		return s.Background(toTcell(c))
	})
}

// AddFontSpan implements core.LineBuilder.
func (b *Builder) AddFontSpan(r core.Range, f font.Font) {
	if b.backend == nil {
		return
	}
	bold := b.backend.WeightOf(f) >= boldWeight
	italic := b.backend.TraitsOf(f).Has(font.TraitItalic)
	b.apply(r, func(s tcell.Style) tcell.Style {
		return s.Bold(bold).Italic(italic)
	})
}

// AddSyntheticSlantSpan implements core.LineBuilder.
func (b *Builder) AddSyntheticSlantSpan(r core.Range) {
	b.apply(r, func(s tcell.Style) tcell.Style {
		return s.Italic(true)
	})
}

// AddUnderlineSpan implements core.LineBuilder.
func (b *Builder) AddUnderlineSpan(r core.Range, _ core.UnderlineStyle) {
	b.apply(r, func(s tcell.Style) tcell.Style {
		return s.Underline(true)
	})
}

// Measure implements core.LineBuilder. The advance width of a terminal
// line is its total cell count, independent of the styles applied.
func (b *Builder) Measure() float64 {
	total := 0
	for _, c := range b.cells {
		total += c.Width
	}
	return float64(total)
}

// toTcell converts an ARGB color to a tcell RGB color. Alpha carries
// no meaning for terminal cells and is dropped.
func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}
