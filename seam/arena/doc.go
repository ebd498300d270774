// Package arena provides a bump allocator whose spans are provably
// rejoinable through a seam.Proof.
//
// # Overview
//
// An Arena owns one contiguous block and hands out sequential sub-slices
// of it. Because every allocation directly follows the previous one with
// no padding, consecutive spans touch, and the arena's Proof can coalesce
// them back into a single view without copying. That makes the arena a
// natural producer for seam: carve a block into pieces, hand the pieces
// out, and later reassemble any run of neighbors for free.
//
// AllocString interns string data into the block, so even strings built at
// different times can be rejoined when their bytes ended up adjacent.
//
// # Usage Example
//
//	a := arena.New(1 << 16)
//
//	hdr, _ := a.Alloc(16)
//	body, _ := a.Alloc(480)
//
//	// ... fill hdr and body ...
//
//	frame, err := a.Rejoin(hdr, body)
//	if err != nil {
//	    return err
//	}
//	// frame aliases the block and spans both pieces
//
// # Rewinding
//
// Mark and Reset rewind the bump offset. Spans handed out after the mark
// become dangling views over bytes that future Allocs will reuse; neither
// the arena nor its Proof can detect them. Rewind only when those spans
// are out of use.
//
// # Thread Safety
//
// Arenas are not thread-safe. Callers must synchronize access externally.
//
// # Related Packages
//
//   - github.com/joshuapare/seamkit/seam: the proof type gating Rejoin
//   - github.com/joshuapare/seamkit/seam/region: mapped files as ready-made blocks
package arena
