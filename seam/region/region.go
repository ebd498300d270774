package region

import (
	"errors"
	"fmt"

	"github.com/joshuapare/seamkit/internal/bound"
	"github.com/joshuapare/seamkit/seam"
)

// ErrOutOfRange indicates a view that does not fit inside the mapping.
var ErrOutOfRange = errors.New("region: view out of range")

// Advice hints the kernel about the expected access pattern of a mapping.
type Advice int

const (
	// AdviseNormal restores the default readahead behavior.
	AdviseNormal Advice = iota
	// AdviseSequential requests aggressive readahead for front-to-back scans.
	AdviseSequential
	// AdviseRandom disables readahead for scattered access.
	AdviseRandom
	// AdviseWillNeed asks the kernel to start faulting pages in now.
	AdviseWillNeed
)

// Region is a read-only file mapping that behaves as one contiguous
// allocation. Views carved from it are rejoinable through its Proof until
// Close.
type Region struct {
	data    []byte
	cleanup func() error
}

// Map opens path and maps its contents. An empty file yields a valid
// zero-length region.
func Map(path string) (*Region, error) {
	data, cleanup, err := mapFile(path)
	if err != nil {
		return nil, err
	}
	return &Region{data: data, cleanup: cleanup}, nil
}

// Bytes returns the whole mapped contents. Nil after Close.
func (r *Region) Bytes() []byte {
	return r.data
}

// Size returns the mapped length in bytes.
func (r *Region) Size() int {
	return len(r.data)
}

// View returns the n bytes at off as a window into the mapping, without
// copying. Capacity is clipped to the window, so appending through a view
// reallocates instead of reaching into the rest of the mapping.
func (r *Region) View(off, n int) ([]byte, error) {
	if err := bound.CheckRange(len(r.data), off, n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}
	return r.data[off : off+n : off+n], nil
}

// Proof witnesses the whole mapping.
func (r *Region) Proof() seam.Proof {
	return seam.New(r.data)
}

// Close releases the mapping. Outstanding views and proofs dangle
// afterwards; closing again is a no-op.
func (r *Region) Close() error {
	if r.cleanup == nil {
		return nil
	}
	err := r.cleanup()
	r.cleanup = nil
	r.data = nil
	return err
}
