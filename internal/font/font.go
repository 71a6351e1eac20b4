// Package font abstracts the font backend and provides nearest-weight
// font resolution for style construction.
//
// The package does not depend on any concrete font system. Applications
// inject a Backend implementation; StaticBackend is an in-memory catalog
// suitable for tests and headless use.
package font

import "strings"

// TraitSet is a bitmask of font traits.
type TraitSet uint8

// Font traits.
const (
	TraitItalic TraitSet = 1 << iota
	TraitBold
	TraitCondensed
	TraitExpanded
)

// Has reports whether the set contains the given trait.
func (t TraitSet) Has(trait TraitSet) bool {
	return t&trait != 0
}

// With returns a new set with the given trait added.
func (t TraitSet) With(trait TraitSet) TraitSet {
	return t | trait
}

// String returns a + separated list of trait names.
func (t TraitSet) String() string {
	if t == 0 {
		return "regular"
	}
	var names []string
	if t.Has(TraitItalic) {
		names = append(names, "italic")
	}
	if t.Has(TraitBold) {
		names = append(names, "bold")
	}
	if t.Has(TraitCondensed) {
		names = append(names, "condensed")
	}
	if t.Has(TraitExpanded) {
		names = append(names, "expanded")
	}
	return strings.Join(names, "+")
}

// Font is an opaque handle to a concrete font face at a point size.
// Handles are created and interpreted by the Backend that issued them.
type Font interface {
	// Family returns the font family name.
	Family() string

	// PointSize returns the font's point size.
	PointSize() float64
}

// Backend resolves concrete fonts from family, traits, weight and size.
// Weight is on the backend's native scale; backends expose only discrete
// installed weights, so resolution at an uninstalled weight fails.
type Backend interface {
	// ResolveFont returns a concrete font matching the family, traits,
	// weight and size exactly, or reports that none is installed.
	ResolveFont(family string, traits TraitSet, weight int, size float64) (Font, bool)

	// TraitsOf returns the traits of a font issued by this backend.
	TraitsOf(f Font) TraitSet

	// WeightOf returns the native-scale weight of a font issued by
	// this backend.
	WeightOf(f Font) int
}
