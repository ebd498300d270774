// Package seam proves that byte regions share one contiguous allocation
// and rejoins adjacent regions without copying.
//
// # Overview
//
// Slicing splits a buffer into views; seam goes the other way. A Proof
// records the address range of one allocation. Its merge operations accept
// two regions, check that both lie inside that range and touch end to
// start, and return a single slice or string spanning both. The result
// aliases the original memory: no bytes move, nothing is allocated.
//
// The proof is what makes the merge sound. Two regions from different
// allocations can sit at touching addresses by coincidence, and a view
// spanning an allocation boundary is undefined behavior. A Proof pins both
// operands to the same allocation before any span is built.
//
// Typical producers hand out sub-regions of a block they own and keep a
// Proof for it: a parser cutting fields out of one buffer, an arena
// carving spans from one block (seam/arena), a mapped file (seam/region).
// Consumers holding two of those pieces can then reassemble the original
// bytes for free.
//
// # Key Types
//
//   - Proof: the address range of one allocation, built by New or NewString.
//     Two plain words; copy it, compare it, print it.
//   - ErrNotAdjacent: the single failure mode of every merge. An operand
//     outside the witnessed allocation and operands that do not touch are
//     deliberately not distinguished.
//
// # Merge Rules
//
// Concat and ConcatSlice require a then b in address order, touching
// exactly. The Unordered variants accept either orientation. Zero-length
// operands merge with anything and the result is the other operand: Go
// normalizes the data pointer of empty slice and string headers, so an
// empty region carries no position to check. Overlapping regions are never
// adjacent.
//
// # Address Caveats
//
// A Proof stores plain addresses, not references. The runtime does not
// know the witnessed memory is still in use through a Proof, and the Proof
// cannot tell when that memory is freed, reused or moved:
//
//   - Keep the witnessed allocation reachable for as long as its Proof is
//     used. A Proof over freed memory can approve merges of unrelated data
//     that got placed at the same addresses.
//   - Witness heap or mapped memory. Goroutine stacks move as they grow;
//     an address recorded for a stack-resident array goes stale silently.
//     Blocks from make, mapped files and package-level arrays are fine.
//
// This is a best-effort address check, not provenance tracking. It turns
// "merge whatever touches" into "merge only what I handed out", which is
// the guarantee producers need.
//
// # Usage Example
//
//	block := make([]byte, 1024)
//	p := seam.New(block)
//
//	head := block[:512]
//	tail := block[512:]
//
//	whole, err := seam.ConcatSlice(p, head, tail)
//	if err != nil {
//	    return err
//	}
//	// whole aliases block; len(whole) == 1024
//
// # Thread Safety
//
// Proof is an immutable value; share it freely. Merges only read operand
// headers. Synchronization of the underlying memory remains the caller's
// concern, as it was before merging.
//
// # Related Packages
//
//   - github.com/joshuapare/seamkit/seam/splice: the merge primitives a Proof gates
//   - github.com/joshuapare/seamkit/seam/arena: bump arena producing provably rejoinable spans
//   - github.com/joshuapare/seamkit/seam/region: memory-mapped files as witnessed allocations
//   - github.com/joshuapare/seamkit/seam/wtext: wide-text views over witnessed regions
package seam
