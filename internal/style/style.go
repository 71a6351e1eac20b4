package style

import (
	"github.com/dshills/stylemap/internal/font"
	"github.com/dshills/stylemap/internal/style/core"
)

// Definition holds the raw fields of one style record as received from
// the protocol. Optional fields are pointers; nil means the field was
// not supplied.
type Definition struct {
	// ID is the style identifier. Negative means the record was
	// missing its required id field; Registry.Define ignores such
	// definitions.
	ID core.ID

	// Foreground and Background are ARGB-packed colors.
	Foreground *core.Color
	Background *core.Color

	// Underline and Italic default to false.
	Underline bool
	Italic    bool

	// Weight is on the protocol's 100–900 scale.
	Weight *int
}

// Style is the resolved, immutable bundle of rendering attributes for
// one identifier. Styles are replaced wholesale on redefinition or base
// font change, never mutated in place.
type Style struct {
	// Font is the resolved font variant, or nil when no variant was
	// found or needed.
	Font font.Font

	// Foreground is always set; a definition without a foreground
	// resolves to the injected theme default.
	Foreground core.Color

	// Background is nil when absent. A definition background with zero
	// alpha resolves to absent.
	Background *core.Color

	// Underline and Italic carry the requested flags.
	Underline bool
	Italic    bool

	// Weight is the native-scale weight when one was requested.
	Weight *int

	// FakeItalic is set only when Italic was requested and no italic
	// variant exists; slant is then simulated by the rendering side.
	FakeItalic bool
}

// Resolve constructs a Style from a definition against the given base
// font. defaultFg is the theme's default foreground, supplied
// explicitly by the caller. Resolution is deterministic: identical
// inputs always produce an identical Style.
func Resolve(def Definition, base font.Font, res *font.Resolver, defaultFg core.Color) Style {
	s := Style{
		Foreground: defaultFg,
		Underline:  def.Underline,
		Italic:     def.Italic,
	}
	if def.Foreground != nil {
		s.Foreground = *def.Foreground
	}
	if def.Background != nil && def.Background.Alpha() != 0 {
		bg := *def.Background
		s.Background = &bg
	}
	if def.Weight != nil {
		w := font.NativeWeight(*def.Weight)
		s.Weight = &w
	}

	backend := res.Backend()
	var baseTraits font.TraitSet
	var baseWeight int
	if base != nil {
		baseTraits = backend.TraitsOf(base)
		baseWeight = backend.WeightOf(base)
	}

	switch {
	case def.Italic:
		weight := baseWeight
		if s.Weight != nil {
			weight = *s.Weight
		}
		if f, ok := res.ClosestMatch(base, baseTraits.With(font.TraitItalic), weight); ok {
			s.Font = f
		} else {
			// No italic variant anywhere near the requested weight;
			// the rendering side fakes the slant with a transform.
			s.FakeItalic = true
		}
	case s.Weight != nil:
		if f, ok := res.ClosestMatch(base, baseTraits, *s.Weight); ok {
			s.Font = f
		}
	}

	return s
}
