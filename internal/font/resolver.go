package font

import "math"

// NativeWeight remaps a protocol weight (100–900 scale, 400 regular) to
// the backend's native weight scale (roughly 0–15). The nonlinear curve
// is empirically tuned against existing themes and must not be altered:
// NativeWeight(400) == 5 and NativeWeight(700) == 9.
func NativeWeight(w int) int {
	return int(math.Floor(1 + float64(w)*(0.01+0.000003*float64(w))))
}

// Resolver searches a Backend for the closest installed match to a
// requested trait/weight combination.
type Resolver struct {
	backend Backend
}

// NewResolver creates a resolver over the given backend.
func NewResolver(backend Backend) *Resolver {
	return &Resolver{backend: backend}
}

// Backend returns the backend the resolver queries.
func (r *Resolver) Backend() Backend {
	return r.backend
}

// ClosestMatch finds the installed font nearest to the requested weight
// with the given traits, keeping the base font's family and point size.
// The candidate weight starts at the base font's current weight and
// steps one native unit per iteration toward the requested weight; the
// first hit wins. Once the requested weight itself has been tried
// without a hit, the search reports absent.
//
// This is a deliberate bounded linear search: backends report only
// discrete installed weights and availability is not monotonic in
// weight, so a binary search over the range would be unsound.
func (r *Resolver) ClosestMatch(base Font, traits TraitSet, weight int) (Font, bool) {
	if base == nil {
		return nil, false
	}

	cur := r.backend.WeightOf(base)
	step := 1
	if weight < cur {
		step = -1
	}

	for w := cur; ; w += step {
		if f, ok := r.backend.ResolveFont(base.Family(), traits, w, base.PointSize()); ok {
			return f, true
		}
		if w == weight {
			return nil, false
		}
	}
}
