// Package render serializes segment sequences into finished strings.
//
// Serialize is a stateless transform: given an ordered slice of
// segments and a color flag it produces either the plain concatenation
// of the segment texts or an ANSI-escaped string in which every colored
// segment is wrapped in SGR set/reset sequences.
//
// In color mode each segment opens its escape codes in a fixed order,
// foreground then background, and closes them in reverse: the most
// recently opened channel is reset first, stack style. Segments without
// colors contribute their text and nothing else, so a sequence with no
// colors renders byte-identically in both modes. Adjacent segments with
// identical colors are not coalesced, and no SGR attributes beyond the
// nine base colors are emitted.
//
// Serialization goes through a pooled bytes.Buffer, mirroring how the
// rest of the library avoids per-call allocations; AppendSegments is
// the pool-free entry point for callers that already own a buffer.
package render
