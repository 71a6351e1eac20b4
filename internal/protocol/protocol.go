// Package protocol parses the wire records that feed the style
// registry: style definitions, per-line style arrays, and
// width-measurement batches.
//
// Parsing is tolerant in the same way the registry is: a malformed
// record degrades to an error or an invalid entry for that record
// only, and never fails a batch.
package protocol

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/stylemap/internal/style"
	"github.com/dshills/stylemap/internal/style/core"
)

// ErrMissingID reports a style definition without its required id.
var ErrMissingID = errors.New("style definition missing id")

// ParseStyleDef parses a style-definition record:
//
//	{"id": 9, "fg_color": 4294901760, "bg_color": 0,
//	 "underline": true, "italic": false, "weight": 700}
//
// Only id is required; absent optional fields stay nil/false in the
// returned definition.
func ParseStyleDef(data []byte) (style.Definition, error) {
	if !gjson.ValidBytes(data) {
		return style.Definition{}, fmt.Errorf("style definition is not valid JSON")
	}
	doc := gjson.ParseBytes(data)

	id := doc.Get("id")
	if !id.Exists() {
		return style.Definition{}, ErrMissingID
	}

	def := style.Definition{
		ID:        core.ID(id.Int()),
		Underline: doc.Get("underline").Bool(),
		Italic:    doc.Get("italic").Bool(),
	}
	if fg := doc.Get("fg_color"); fg.Exists() {
		c := core.Color(uint32(fg.Uint()))
		def.Foreground = &c
	}
	if bg := doc.Get("bg_color"); bg.Exists() {
		c := core.Color(uint32(bg.Uint()))
		def.Background = &c
	}
	if w := doc.Get("weight"); w.Exists() {
		weight := int(w.Int())
		def.Weight = &weight
	}
	return def, nil
}

// ParseStyleArray parses the flat integer style array for one line:
//
//	[0, 5, 9, 2, 3, 10]
//
// Non-integer elements fail the whole array; the triples inside are
// validated later by the span decoder.
func ParseStyleArray(data []byte) ([]int, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("style array is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("style array is not an array")
	}

	var (
		out  []int
		bad  error
		next int
	)
	doc.ForEach(func(_, v gjson.Result) bool {
		if v.Type != gjson.Number {
			bad = fmt.Errorf("style array element %d is not a number", next)
			return false
		}
		out = append(out, int(v.Int()))
		next++
		return true
	})
	if bad != nil {
		return nil, bad
	}
	return out, nil
}

// ParseMeasureRequest parses a width-measurement batch:
//
//	[{"id": 9, "strings": ["abc", "def"]}, ...]
//
// A malformed entry (missing id or strings) is returned as an invalid
// request so the registry can log it and emit an empty result list in
// its place; it never fails the batch.
func ParseMeasureRequest(data []byte) ([]style.MeasureRequest, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("measurement request is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("measurement request is not an array")
	}

	var reqs []style.MeasureRequest
	doc.ForEach(func(_, entry gjson.Result) bool {
		id := entry.Get("id")
		strs := entry.Get("strings")
		if !id.Exists() || !strs.IsArray() {
			reqs = append(reqs, style.MeasureRequest{})
			return true
		}

		req := style.MeasureRequest{ID: core.ID(id.Int()), Valid: true}
		strs.ForEach(func(_, s gjson.Result) bool {
			req.Strings = append(req.Strings, s.String())
			return true
		})
		reqs = append(reqs, req)
		return true
	})
	return reqs, nil
}

// EncodeWidths builds the response body for a measurement batch in the
// same shape as the request.
func EncodeWidths(widths [][]float64) ([]byte, error) {
	out := []byte("[]")
	var err error
	for i, ws := range widths {
		if ws == nil {
			// A nil list must still encode as [], not null.
			out, err = sjson.SetRawBytes(out, "-1", []byte("[]"))
		} else {
			out, err = sjson.SetBytes(out, "-1", ws)
		}
		if err != nil {
			return nil, fmt.Errorf("encoding widths entry %d: %w", i, err)
		}
	}
	return out, nil
}
