// Package region maps files into memory as single contiguous allocations.
//
// # Overview
//
// A mapped file is the canonical real-world source of provably rejoinable
// sub-regions: the kernel hands back one contiguous range, views into it
// are cheap, and a seam.Proof over the mapping lets any two neighboring
// views be merged back without copying. On Linux and macOS the bytes are
// memory mapped read-only; elsewhere the whole file is read into one
// block, which preserves every contiguity guarantee at the cost of a copy
// up front.
//
// # Usage Example
//
//	r, err := region.Map("payload.bin")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	hdr, _ := r.View(0, 16)
//	body, _ := r.View(16, r.Size()-16)
//
//	whole, err := seam.ConcatSlice(r.Proof(), hdr, body)
//	// whole aliases the mapping and equals r.Bytes()
//
// # Lifetime
//
// Close unmaps the region. Views and proofs taken before Close dangle
// afterwards and must not be used; nothing can detect that for plain
// addresses. The mapping is read-only and mutating a view faults.
//
// # Thread Safety
//
// A Region is safe for concurrent readers once mapped. Close must not race
// with readers.
//
// # Related Packages
//
//   - github.com/joshuapare/seamkit/seam: proofs over the mapped range
//   - github.com/joshuapare/seamkit/seam/wtext: decoding wide text stored in mapped regions
package region
