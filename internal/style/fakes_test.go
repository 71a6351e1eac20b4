package style

import (
	"fmt"
	"testing"

	"github.com/dshills/stylemap/internal/font"
	"github.com/dshills/stylemap/internal/offset"
	"github.com/dshills/stylemap/internal/style/core"
)

// recordingBuilder captures attribute spans in emission order and
// measures width as one unit per UTF-16 code unit, scaled up when a
// font span was applied so font changes are observable through
// Measure.
type recordingBuilder struct {
	text string
	ops  []string
	font font.Font
}

func (b *recordingBuilder) AddForegroundSpan(r core.Range, c core.Color) {
	b.ops = append(b.ops, fmt.Sprintf("fg %s %s", r, c))
}

func (b *recordingBuilder) AddBackgroundSpan(r core.Range, c core.Color) {
	b.ops = append(b.ops, fmt.Sprintf("bg %s %s", r, c))
}

func (b *recordingBuilder) AddFontSpan(r core.Range, f font.Font) {
	b.font = f
	b.ops = append(b.ops, fmt.Sprintf("font %s %s", r, f.Family()))
}

func (b *recordingBuilder) AddSyntheticSlantSpan(r core.Range) {
	b.ops = append(b.ops, fmt.Sprintf("slant %s", r))
}

func (b *recordingBuilder) AddUnderlineSpan(r core.Range, u core.UnderlineStyle) {
	b.ops = append(b.ops, fmt.Sprintf("underline %s %s", r, u))
}

func (b *recordingBuilder) Measure() float64 {
	w := float64(offset.UTF16Len(b.text))
	if face, ok := b.font.(*font.Face); ok {
		w *= 1 + float64(face.Weight())/10
	}
	return w
}

func (b *recordingBuilder) kinds() []string {
	kinds := make([]string, 0, len(b.ops))
	for _, op := range b.ops {
		var k string
		fmt.Sscanf(op, "%s", &k)
		kinds = append(kinds, k)
	}
	return kinds
}

// recordingFactory hands out recordingBuilders and remembers them.
type recordingFactory struct {
	built []*recordingBuilder
}

func (f *recordingFactory) NewLine(text string) core.LineBuilder {
	b := &recordingBuilder{text: text}
	f.built = append(f.built, b)
	return b
}

// newTestRegistry builds a registry over a StaticBackend with a base
// face installed at weight 5 plus bold weights, and returns the pieces
// tests poke at.
func newTestRegistry(t *testing.T) (*Registry, *font.StaticBackend, *recordingFactory) {
	t.Helper()
	backend := font.NewStaticBackend()
	backend.InstallRegular("Mono", 5, 9)
	base, ok := backend.ResolveFont("Mono", 0, 5, 12)
	if !ok {
		t.Fatal("base face missing")
	}

	factory := &recordingFactory{}
	reg := NewRegistry(Options{
		DefaultForeground: core.ARGB(0xff, 0xee, 0xee, 0xee),
		BaseFont:          base,
		Resolver:          font.NewResolver(backend),
		Factory:           factory,
	})
	return reg, backend, factory
}

func colorPtr(c core.Color) *core.Color { return &c }

func intPtr(i int) *int { return &i }
