package arena

import (
	"github.com/joshuapare/seamkit/internal/bound"
	"github.com/joshuapare/seamkit/internal/unsafecast"
	"github.com/joshuapare/seamkit/seam"
)

// Arena hands out sequential spans of one contiguous block. Consecutive
// allocations touch with no padding between them, so the arena's Proof can
// rejoin them without copying.
type Arena struct {
	block []byte
	off   int
}

// New returns an arena over a fresh block of size bytes.
func New(size int) *Arena {
	return &Arena{block: make([]byte, size)}
}

// NewBuffer returns an arena carving spans out of buf. The caller keeps
// ownership of buf's memory; Reset rewinds the offset but never zeroes
// bytes.
func NewBuffer(buf []byte) *Arena {
	return &Arena{block: buf}
}

// Alloc returns the next n bytes of the block. The span directly follows
// the previous allocation and its capacity is clipped to n, so growing it
// cannot scribble over a neighbor.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	span, ok := bound.Slice(a.block, a.off, n)
	if !ok {
		return nil, ErrNoSpace
	}
	a.off += n
	return span[:n:n], nil
}

// AllocString copies s into the block and returns the arena-backed copy.
// Strings allocated back to back can be rejoined through the arena's
// Proof like any other neighboring spans.
func (a *Arena) AllocString(s string) (string, error) {
	span, err := a.Alloc(len(s))
	if err != nil {
		return "", err
	}
	copy(span, s)
	return unsafecast.String(span), nil
}

// Proof witnesses the arena's whole block, the unallocated tail included.
func (a *Arena) Proof() seam.Proof {
	return seam.New(a.block)
}

// Owns reports whether b lies inside the arena's block. Empty slices carry
// no position and are never owned.
func (a *Arena) Owns(b []byte) bool {
	if len(b) == 0 || len(a.block) == 0 {
		return false
	}
	addr := unsafecast.SliceAddr(b)
	end, ok := bound.AddUintptr(addr, uintptr(len(b)))
	if !ok {
		return false
	}
	begin := unsafecast.SliceAddr(a.block)
	return begin <= addr && end <= begin+uintptr(len(a.block))
}

// Rejoin coalesces two spans previously handed out by this arena into one
// view, in either operand order. Both must lie inside the block and touch.
func (a *Arena) Rejoin(x, y []byte) ([]byte, error) {
	return seam.ConcatSliceUnordered(a.Proof(), x, y)
}

// Mark returns the current allocation offset for a later Reset.
func (a *Arena) Mark() int {
	return a.off
}

// Reset rewinds the arena to a previous Mark. Spans handed out after that
// mark become dangling; see the package documentation.
func (a *Arena) Reset(mark int) error {
	if mark < 0 || mark > a.off {
		return ErrBadMark
	}
	a.off = mark
	return nil
}

// Len returns the number of bytes handed out so far.
func (a *Arena) Len() int {
	return a.off
}

// Cap returns the block size.
func (a *Arena) Cap() int {
	return len(a.block)
}
