package style

import (
	"sync"

	"github.com/dshills/stylemap/internal/font"
	"github.com/dshills/stylemap/internal/style/core"
)

// SharedRegistry serializes all registry access behind a single mutex.
//
// Style definitions arrive asynchronously from the protocol while
// rendering and width measurement run on other goroutines; one
// coarse-grained lock covers every operation for its full duration,
// with no reader/writer distinction. The wrapper owns the only
// reference to its inner Registry and never lets it escape, so lock
// discipline cannot be bypassed. Nothing under the lock suspends or
// performs I/O; a long re-resolution in UpdateBaseFont blocking other
// callers is an accepted tradeoff.
type SharedRegistry struct {
	mu  sync.Mutex
	reg *Registry
}

// NewShared creates a locked registry from options.
func NewShared(opts Options) *SharedRegistry {
	return &SharedRegistry{reg: NewRegistry(opts)}
}

// Define resolves and stores a style definition.
func (s *SharedRegistry) Define(def Definition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.Define(def)
}

// ApplyStyle applies the style at id over r onto the builder.
func (s *SharedRegistry) ApplyStyle(id core.ID, r core.Range, b core.LineBuilder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.ApplyStyle(id, r, b)
}

// ApplySpans applies each theme-style span onto the builder.
func (s *SharedRegistry) ApplySpans(spans []core.Span, b core.LineBuilder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.ApplySpans(spans, b)
}

// UpdateBaseFont replaces the base font and re-resolves every style.
func (s *SharedRegistry) UpdateBaseFont(f font.Font) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.UpdateBaseFont(f)
}

// SetDefaultForeground replaces the theme default foreground.
func (s *SharedRegistry) SetDefaultForeground(c core.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.SetDefaultForeground(c)
}

// MeasureWidth measures text rendered with the style at id.
func (s *SharedRegistry) MeasureWidth(id core.ID, text string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.MeasureWidth(id, text)
}

// MeasureWidths measures a batch of width requests.
func (s *SharedRegistry) MeasureWidths(reqs []MeasureRequest) [][]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.MeasureWidths(reqs)
}

// Len returns the current backing-slice length.
func (s *SharedRegistry) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Len()
}
