// Package style maintains the registry of text-rendering styles keyed
// by small integer identifiers and resolves style spans into concrete
// rendering attributes.
//
// The package follows a layered design:
//
//   - Definition holds the raw fields of one style record as received
//     from the protocol.
//   - Resolve turns a Definition plus the current base font into an
//     immutable Style, searching the font backend for the nearest
//     italic/weight variant and falling back to synthetic slant when no
//     italic face exists.
//   - Registry stores resolved Styles in a sparse, grow-on-demand slice
//     and applies them to line builders. It is not safe for concurrent
//     use on its own.
//   - SharedRegistry wraps a Registry behind a single mutex; it is the
//     only type callers hold, and every operation is serialized for its
//     full duration.
//   - DecodeSpans turns the flat delta-encoded integer triples that
//     arrive with each line of text into spans addressed in UTF-16
//     code units.
//
// All malformed input (missing identifiers, out-of-range identifiers,
// bad span groups) is logged and contained to the offending unit; no
// condition here is fatal and the registry stays usable after any
// individual failure.
package style
