package style

import (
	"reflect"
	"testing"

	"github.com/dshills/stylemap/internal/style/core"
)

func fullDef(id core.ID) Definition {
	return Definition{
		ID:         id,
		Foreground: colorPtr(core.ARGB(0xff, 0x11, 0x22, 0x33)),
		Background: colorPtr(core.ARGB(0xff, 0x44, 0x55, 0x66)),
		Underline:  true,
		Italic:     true, // no italic face installed: synthetic slant
		Weight:     intPtr(700),
	}
}

func TestDefineGrowsSparsely(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	reg.Define(Definition{ID: 12})

	if reg.Len() != 13 {
		t.Fatalf("expected backing length 13, got %d", reg.Len())
	}
	for id := 0; id < 12; id++ {
		if reg.slots[id].present {
			t.Errorf("slot %d should be absent, not default-styled", id)
		}
	}
	if !reg.slots[12].present {
		t.Error("slot 12 should be present")
	}
}

func TestDefineRedefinesInPlace(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	reg.Define(Definition{ID: 9})
	reg.Define(Definition{ID: 9, Underline: true})

	if reg.Len() != 10 {
		t.Errorf("redefinition should not grow the registry, length %d", reg.Len())
	}
	if !reg.slots[9].style.Underline {
		t.Error("redefinition should replace the stored style")
	}
}

func TestDefineMissingIDIgnored(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	reg.Define(Definition{ID: -1, Underline: true})

	if reg.Len() != 0 {
		t.Errorf("definition without id must be ignored, length %d", reg.Len())
	}
}

func TestApplyStyleEmissionOrder(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	reg.Define(fullDef(9))

	b := &recordingBuilder{text: "hello"}
	reg.ApplyStyle(9, core.Range{Start: 0, End: 5}, b)

	// Fixed layering: foreground, background, synthetic slant,
	// underline. The italic lookup failed, so no font span.
	want := []string{"fg", "bg", "slant", "underline"}
	if got := b.kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("emission order %v, want %v", got, want)
	}
}

func TestApplyStyleEmitsFontBeforeSlantAndUnderline(t *testing.T) {
	reg, backend, _ := newTestRegistry(t)
	backend.Install("Mono", 0, 9)

	reg.Define(Definition{ID: 9, Underline: true, Weight: intPtr(700)})

	b := &recordingBuilder{text: "hello"}
	reg.ApplyStyle(9, core.Range{Start: 0, End: 5}, b)

	want := []string{"fg", "font", "underline"}
	if got := b.kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("emission order %v, want %v", got, want)
	}
}

func TestApplyStyleOutOfBounds(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	reg.Define(Definition{ID: 9})

	b := &recordingBuilder{text: "x"}
	reg.ApplyStyle(40, core.Range{Start: 0, End: 1}, b)
	reg.ApplyStyle(-2, core.Range{Start: 0, End: 1}, b)

	if len(b.ops) != 0 {
		t.Errorf("out-of-bounds ids must be no-ops, got %v", b.ops)
	}
}

func TestApplyStyleReservedNoEffect(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	reg.Define(Definition{ID: 9}) // grows bounds past the built-ins

	b := &recordingBuilder{text: "x"}
	for id := core.ID(0); int(id) < reg.Reserved(); id++ {
		reg.ApplyStyle(id, core.Range{Start: 0, End: 1}, b)
	}

	if len(b.ops) != 0 {
		t.Errorf("reserved ids must never emit attributes, got %v", b.ops)
	}
}

func TestApplyStyleAbsentSlot(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	reg.Define(Definition{ID: 12}) // 8..11 absent

	b := &recordingBuilder{text: "x"}
	reg.ApplyStyle(10, core.Range{Start: 0, End: 1}, b)

	if len(b.ops) != 0 {
		t.Errorf("absent slot must be a no-op, got %v", b.ops)
	}
}

func TestApplySpansSkipsReserved(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	reg.Define(Definition{ID: 9})

	spans := []core.Span{
		{Range: core.Range{Start: 0, End: 2}, ID: 0}, // selection built-in
		{Range: core.Range{Start: 0, End: 2}, ID: 7},
		{Range: core.Range{Start: 2, End: 4}, ID: 9},
	}

	b := &recordingBuilder{text: "abcd"}
	reg.ApplySpans(spans, b)

	if len(b.ops) != 1 {
		t.Fatalf("expected one emission for the theme span, got %v", b.ops)
	}
	if b.ops[0] != "fg 2..4 "+testFg.String() {
		t.Errorf("unexpected emission %q", b.ops[0])
	}
}

func TestUpdateBaseFontReresolves(t *testing.T) {
	reg, backend, _ := newTestRegistry(t)
	reg.Define(Definition{ID: 9, Weight: intPtr(700)})

	before := reg.MeasureWidth(9, "hello")

	// Switch to a family whose only installed weight is the bold 9.
	backend.InstallRegular("Wide", 9)
	wide, ok := backend.ResolveFont("Wide", 0, 9, 12)
	if !ok {
		t.Fatal("wide face missing")
	}
	reg.UpdateBaseFont(wide)

	after := reg.MeasureWidth(9, "hello")
	if before == after {
		t.Errorf("measurement should reflect the new base font: %g == %g", before, after)
	}
}

func TestMeasureWidthIdempotent(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	reg.Define(fullDef(9))

	a := reg.MeasureWidth(9, "hello")
	b := reg.MeasureWidth(9, "hello")
	if a != b {
		t.Errorf("repeated measurement mutated state: %g != %g", a, b)
	}

	// Reading back must not have touched the stored style.
	c := &recordingBuilder{text: "hello"}
	reg.ApplyStyle(9, core.Range{Start: 0, End: 5}, c)
	want := []string{"fg", "bg", "slant", "underline"}
	if got := c.kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("stored style changed after measurement: %v", got)
	}
}

func TestMeasureWidthUsesUTF16Range(t *testing.T) {
	reg, _, factory := newTestRegistry(t)
	reg.Define(Definition{ID: 9})

	reg.MeasureWidth(9, "a𝄞b") // 4 UTF-16 units

	last := factory.built[len(factory.built)-1]
	if len(last.ops) != 1 || last.ops[0] != "fg 0..4 "+testFg.String() {
		t.Errorf("expected one foreground span over 0..4, got %v", last.ops)
	}
}

func TestMeasureWidthsBatch(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	reg.Define(Definition{ID: 9})

	reqs := []MeasureRequest{
		{ID: 9, Strings: []string{"ab", "wide"}, Valid: true},
		{Valid: false}, // malformed protocol entry
		{ID: 9, Strings: nil, Valid: true},
	}

	out := reg.MeasureWidths(reqs)

	if len(out) != 3 {
		t.Fatalf("expected same-shaped output, got %d entries", len(out))
	}
	if len(out[0]) != 2 {
		t.Errorf("expected two widths, got %v", out[0])
	}
	if out[0][0] != 2 || out[0][1] != 4 {
		t.Errorf("unexpected widths %v", out[0])
	}
	if out[1] == nil || len(out[1]) != 0 {
		t.Errorf("malformed entry should yield an empty list, got %v", out[1])
	}
	if len(out[2]) != 0 {
		t.Errorf("empty string list should yield no widths, got %v", out[2])
	}
}

func TestCustomReservedThreshold(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	reg.reserved = 2

	reg.Define(Definition{ID: 3})

	b := &recordingBuilder{text: "abc"}
	reg.ApplySpans([]core.Span{
		{Range: core.Range{Start: 0, End: 1}, ID: 1},
		{Range: core.Range{Start: 1, End: 2}, ID: 3},
	}, b)

	if len(b.ops) != 1 {
		t.Errorf("id 3 is a theme style under threshold 2, got %v", b.ops)
	}
}
