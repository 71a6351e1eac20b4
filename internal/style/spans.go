package style

import (
	"github.com/dshills/stylemap/internal/logging"
	"github.com/dshills/stylemap/internal/offset"
	"github.com/dshills/stylemap/internal/style/core"
)

// DecodeSpans decodes the flat style array delivered with one line of
// text into spans addressed in UTF-16 code units.
//
// The array is read in triples of (deltaStart, length, styleID), all in
// UTF-8 bytes. A running cursor starts at 0; each group's start is
// cursor+deltaStart, its end start+length, and the cursor advances to
// end before the next group. Both boundaries are converted to UTF-16
// offsets against text; a group whose conversion fails or whose
// converted end precedes its start is logged and skipped without
// aborting the rest of the line.
func DecodeSpans(raw []int, text string, log *logging.Logger) []core.Span {
	log = logging.Or(log).WithComponent("spans")

	spans := make([]core.Span, 0, len(raw)/3)
	cursor := 0
	for i := 0; i+2 < len(raw); i += 3 {
		delta, length, id := raw[i], raw[i+1], raw[i+2]
		start := cursor + delta
		end := start + length
		cursor = end

		s16, err := offset.ToUTF16(text, start)
		if err != nil {
			log.Warn("span group %d: bad start: %v", i/3, err)
			continue
		}
		e16, err := offset.ToUTF16(text, end)
		if err != nil {
			log.Warn("span group %d: bad end: %v", i/3, err)
			continue
		}
		if e16 < s16 {
			log.Warn("span group %d: end %d before start %d", i/3, e16, s16)
			continue
		}

		spans = append(spans, core.Span{
			Range: core.Range{Start: s16, End: e16},
			ID:    core.ID(id),
		})
	}

	if len(raw)%3 != 0 {
		log.Warn("style array length %d is not a multiple of 3; trailing group ignored", len(raw))
	}
	return spans
}
