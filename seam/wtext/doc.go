// Package wtext handles the wide and legacy single-byte text found in
// memory-mapped binary formats: UTF-16LE with an optional NUL terminator,
// and Windows-1252 bytes.
//
// # Overview
//
// Units gives a zero-copy []uint16 view of a byte region so wide text can
// be carved and rejoined like any other spans, with adjacency scaled to
// the code unit size. Decode and DecodeLatin1 turn stored bytes into Go
// strings, taking a fast path for plain ASCII and falling back to the
// golang.org/x/text decoders otherwise. Encode and EncodeZ produce the
// stored forms for the write side and for test fixtures.
//
// # Conventions
//
//   - Decode expects little-endian code units and drops one trailing NUL
//     unit when present, the stored form of NUL-terminated formats.
//     EncodeZ appends that terminator, Encode does not.
//   - Units requires even length and 2-byte aligned data; the view carries
//     host byte order. Adjacency checks and merging are order-agnostic.
//   - Invalid surrogates decode to the Unicode replacement character.
//
// # Thread Safety
//
// All functions are pure. Safe for concurrent use on shared buffers.
//
// # Related Packages
//
//   - github.com/joshuapare/seamkit/seam: merging the views Units returns
//   - github.com/joshuapare/seamkit/seam/region: the mappings such text usually lives in
package wtext
