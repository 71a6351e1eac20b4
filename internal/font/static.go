package font

import "sync"

// Face is a concrete font handle issued by StaticBackend.
type Face struct {
	family string
	traits TraitSet
	weight int
	size   float64
}

// Family returns the face's family name.
func (f *Face) Family() string {
	return f.family
}

// PointSize returns the face's point size.
func (f *Face) PointSize() float64 {
	return f.size
}

// Traits returns the face's trait set.
func (f *Face) Traits() TraitSet {
	return f.traits
}

// Weight returns the face's native-scale weight.
func (f *Face) Weight() int {
	return f.weight
}

// installedFace identifies one installed family/traits/weight
// combination. Faces are size-independent; StaticBackend instantiates
// them at the requested point size.
type installedFace struct {
	family string
	traits TraitSet
	weight int
}

// StaticBackend is an in-memory font catalog. It serves tests and
// headless deployments where no system font backend is available.
// Safe for concurrent use.
type StaticBackend struct {
	mu        sync.RWMutex
	installed map[installedFace]bool
}

// NewStaticBackend creates an empty catalog.
func NewStaticBackend() *StaticBackend {
	return &StaticBackend{
		installed: make(map[installedFace]bool),
	}
}

// Install registers a family/traits/weight combination as installed.
func (b *StaticBackend) Install(family string, traits TraitSet, weight int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.installed[installedFace{family: family, traits: traits, weight: weight}] = true
}

// InstallRegular registers an upright face at the given weights.
func (b *StaticBackend) InstallRegular(family string, weights ...int) {
	for _, w := range weights {
		b.Install(family, 0, w)
	}
}

// Face returns a handle for an installed combination at the given size,
// without the nearest-weight search. It reports false when the exact
// combination is not installed.
func (b *StaticBackend) Face(family string, traits TraitSet, weight int, size float64) (*Face, bool) {
	b.mu.RLock()
	ok := b.installed[installedFace{family: family, traits: traits, weight: weight}]
	b.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return &Face{family: family, traits: traits, weight: weight, size: size}, true
}

// ResolveFont implements Backend.
func (b *StaticBackend) ResolveFont(family string, traits TraitSet, weight int, size float64) (Font, bool) {
	f, ok := b.Face(family, traits, weight, size)
	if !ok {
		return nil, false
	}
	return f, true
}

// TraitsOf implements Backend.
func (b *StaticBackend) TraitsOf(f Font) TraitSet {
	if face, ok := f.(*Face); ok {
		return face.traits
	}
	return 0
}

// WeightOf implements Backend.
func (b *StaticBackend) WeightOf(f Font) int {
	if face, ok := f.(*Face); ok {
		return face.weight
	}
	return 0
}
