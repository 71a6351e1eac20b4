package offset

import (
	"errors"
	"testing"
)

func TestToUTF16ASCII(t *testing.T) {
	// Single-byte code points convert one-to-one.
	text := "hello world"
	for off := 0; off <= len(text); off++ {
		got, err := ToUTF16(text, off)
		if err != nil {
			t.Fatalf("ToUTF16(%q, %d) unexpected error: %v", text, off, err)
		}
		if got != off {
			t.Errorf("ToUTF16(%q, %d) = %d, want %d", text, off, got, off)
		}
	}
}

func TestToUTF16MultiByte(t *testing.T) {
	// "é" is 2 bytes / 1 unit, "世" is 3 bytes / 1 unit,
	// "𝄞" is 4 bytes / 2 units (surrogate pair).
	tests := []struct {
		text    string
		byteOff int
		want    int
	}{
		{"éa", 0, 0},
		{"éa", 2, 1},
		{"éa", 3, 2},
		{"世界x", 3, 1},
		{"世界x", 6, 2},
		{"世界x", 7, 3},
		{"𝄞ab", 4, 2},
		{"𝄞ab", 5, 3},
		{"a𝄞b", 1, 1},
		{"a𝄞b", 5, 3},
	}

	for _, tt := range tests {
		got, err := ToUTF16(tt.text, tt.byteOff)
		if err != nil {
			t.Errorf("ToUTF16(%q, %d) unexpected error: %v", tt.text, tt.byteOff, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ToUTF16(%q, %d) = %d, want %d", tt.text, tt.byteOff, got, tt.want)
		}
	}
}

func TestToUTF16InvalidOffset(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		byteOff int
	}{
		{"negative", "abc", -1},
		{"past end", "abc", 4},
		{"mid code point", "éa", 1},
		{"mid wide code point", "世界", 2},
	}

	for _, tt := range tests {
		_, err := ToUTF16(tt.text, tt.byteOff)
		if err == nil {
			t.Errorf("%s: ToUTF16(%q, %d) expected error, got nil", tt.name, tt.text, tt.byteOff)
			continue
		}
		if !errors.Is(err, ErrInvalidOffset) {
			t.Errorf("%s: error %v is not ErrInvalidOffset", tt.name, err)
		}
	}
}

func TestToUTF16EndOfText(t *testing.T) {
	got, err := ToUTF16("世界", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("expected 2 units at end of text, got %d", got)
	}
}

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"世界", 2},
		{"𝄞", 2},
		{"a𝄞é", 4},
	}

	for _, tt := range tests {
		if got := UTF16Len(tt.text); got != tt.want {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
