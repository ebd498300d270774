// Package splice merges byte-adjacent slices and strings without copying.
//
// # Overview
//
// Slicing cuts one header into two; splice goes the other way. When two
// regions sit back to back in memory, a single header can describe both,
// so Strings and Slice verify exact adjacency and return that combined
// view. Nothing is allocated and nothing is copied; the result aliases the
// operands.
//
// # Contract
//
// Callers must already know that both operands come from the same
// allocation. This package can verify that two addresses touch, but
// regions from different allocations may touch by coincidence, and a view
// spanning an allocation boundary is undefined behavior. Use seam.Proof to
// establish same-allocation provenance before calling in; these functions
// are the primitive it gates.
//
// Zero-length operands carry no position (Go normalizes the data pointer
// of empty headers) and merge with anything: the result is the other
// operand, unchanged.
//
// # Thread Safety
//
// All functions are pure and read only their operands' headers. Safe for
// concurrent use on shared operands.
//
// # Related Packages
//
//   - github.com/joshuapare/seamkit/seam: allocation proofs gating these primitives
//   - github.com/joshuapare/seamkit/seam/arena: a producer of adjacent spans
package splice
