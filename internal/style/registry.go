package style

import (
	"github.com/dshills/stylemap/internal/font"
	"github.com/dshills/stylemap/internal/logging"
	"github.com/dshills/stylemap/internal/offset"
	"github.com/dshills/stylemap/internal/style/core"
)

// slot is one entry of the registry's sparse backing slice. Absent is
// distinct from "present but empty style": identifiers between defined
// ones hold an absent slot, never a default-valued Style.
type slot struct {
	present bool
	def     Definition
	style   Style
}

// Options configures a registry.
type Options struct {
	// Reserved is the number of protocol-owned built-in identifiers.
	// Zero means core.DefaultReserved.
	Reserved int

	// DefaultForeground is the theme's default text color, used for
	// styles defined without an explicit foreground.
	DefaultForeground core.Color

	// BaseFont is the font all style variants derive from. May be nil;
	// styles then resolve without fonts until UpdateBaseFont.
	BaseFont font.Font

	// Resolver performs nearest-weight font lookups. Required.
	Resolver *font.Resolver

	// Factory builds measurement lines. Required for the width
	// operations.
	Factory core.LineFactory

	// Log receives diagnostics for malformed input. Nil discards them.
	Log *logging.Logger
}

// Registry stores resolved styles in a sparse slice keyed by
// identifier. It grows monotonically and never shrinks; redefinition
// replaces a slot in place.
//
// Registry itself is not safe for concurrent use. SharedRegistry owns
// the only production instances and serializes all access; the plain
// type is exported for single-goroutine use in tests and tools.
type Registry struct {
	reserved  int
	defaultFg core.Color
	baseFont  font.Font
	resolver  *font.Resolver
	factory   core.LineFactory
	slots     []slot
	log       *logging.Logger
}

// NewRegistry creates a registry from options.
func NewRegistry(opts Options) *Registry {
	reserved := opts.Reserved
	if reserved == 0 {
		reserved = core.DefaultReserved
	}
	return &Registry{
		reserved:  reserved,
		defaultFg: opts.DefaultForeground,
		baseFont:  opts.BaseFont,
		resolver:  opts.Resolver,
		factory:   opts.Factory,
		log:       logging.Or(opts.Log).WithComponent("registry"),
	}
}

// Len returns the current length of the backing slice, which is always
// at least one past the highest identifier ever defined.
func (reg *Registry) Len() int {
	return len(reg.slots)
}

// Reserved returns the configured reserved-identifier threshold.
func (reg *Registry) Reserved() int {
	return reg.reserved
}

// Define resolves a definition and stores it at its identifier, growing
// the backing slice with absent placeholders as needed. A definition
// without an identifier is ignored.
func (reg *Registry) Define(def Definition) {
	if def.ID < 0 {
		reg.log.Warn("style definition missing id; ignored")
		return
	}
	for len(reg.slots) <= int(def.ID) {
		reg.slots = append(reg.slots, slot{})
	}
	reg.slots[def.ID] = slot{
		present: true,
		def:     def,
		style:   Resolve(def, reg.baseFont, reg.resolver, reg.defaultFg),
	}
}

// ApplyStyle looks up the style at id and emits its attributes over r
// onto the builder. Out-of-bounds identifiers are logged and dropped;
// identifiers below the reserved threshold and absent slots produce no
// side effect.
//
// Emission order is fixed (foreground, background, font, synthetic
// slant, underline) because builders compose overlapping attributes
// with later-wins semantics and the visual layering depends on it.
func (reg *Registry) ApplyStyle(id core.ID, r core.Range, b core.LineBuilder) {
	if id < 0 || int(id) >= len(reg.slots) {
		reg.log.Warn("unresolvable style id %d (have %d)", id, len(reg.slots))
		return
	}
	if int(id) < reg.reserved {
		// Built-in identifiers are applied by the caller, not here.
		return
	}
	sl := reg.slots[id]
	if !sl.present {
		return
	}

	s := sl.style
	b.AddForegroundSpan(r, s.Foreground)
	if s.Background != nil {
		b.AddBackgroundSpan(r, *s.Background)
	}
	if s.Font != nil {
		b.AddFontSpan(r, s.Font)
	}
	if s.FakeItalic {
		b.AddSyntheticSlantSpan(r)
	}
	if s.Underline {
		b.AddUnderlineSpan(r, core.UnderlineSingle)
	}
}

// ApplySpans applies each span's style onto the builder in span order.
// Spans below the reserved threshold are skipped entirely here; the
// caller resolves built-in semantics itself.
func (reg *Registry) ApplySpans(spans []core.Span, b core.LineBuilder) {
	for _, sp := range spans {
		if int(sp.ID) < reg.reserved {
			continue
		}
		reg.ApplyStyle(sp.ID, sp.Range, b)
	}
}

// UpdateBaseFont replaces the base font and re-resolves every present
// style from its original definition. Font resolution is never assumed
// stable across a font change.
func (reg *Registry) UpdateBaseFont(f font.Font) {
	reg.baseFont = f
	reg.reresolve()
}

// SetDefaultForeground replaces the theme default foreground and
// re-resolves every present style, since styles without an explicit
// foreground captured the old default.
func (reg *Registry) SetDefaultForeground(c core.Color) {
	reg.defaultFg = c
	reg.reresolve()
}

func (reg *Registry) reresolve() {
	for i := range reg.slots {
		if !reg.slots[i].present {
			continue
		}
		reg.slots[i].style = Resolve(reg.slots[i].def, reg.baseFont, reg.resolver, reg.defaultFg)
	}
}

// MeasureWidth builds a single-line attribute run for text, applies the
// style at id, and returns the measured advance width. Read-only with
// respect to registry state.
func (reg *Registry) MeasureWidth(id core.ID, text string) float64 {
	b := reg.factory.NewLine(text)
	reg.ApplyStyle(id, core.Range{Start: 0, End: offset.UTF16Len(text)}, b)
	return b.Measure()
}

// MeasureRequest is one entry of a width-measurement batch. Valid is
// false when the protocol entry was malformed; such entries yield an
// empty width list.
type MeasureRequest struct {
	ID      core.ID
	Strings []string
	Valid   bool
}

// MeasureWidths measures every request in the batch and returns a
// same-shaped result. A malformed entry is logged and yields an empty
// list; it never aborts the batch.
func (reg *Registry) MeasureWidths(reqs []MeasureRequest) [][]float64 {
	out := make([][]float64, 0, len(reqs))
	for i, req := range reqs {
		if !req.Valid {
			reg.log.Warn("malformed width-measurement entry %d; skipped", i)
			out = append(out, []float64{})
			continue
		}
		widths := make([]float64, 0, len(req.Strings))
		for _, s := range req.Strings {
			widths = append(widths, reg.MeasureWidth(req.ID, s))
		}
		out = append(out, widths)
	}
	return out
}
