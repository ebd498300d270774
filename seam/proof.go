package seam

import (
	"fmt"

	"github.com/joshuapare/seamkit/internal/bound"
	"github.com/joshuapare/seamkit/internal/unsafecast"
	"github.com/joshuapare/seamkit/seam/splice"
)

// Proof witnesses that the half-open address range [begin, end) lies
// inside one contiguous allocation. It is evidence, not ownership: the
// allocation must stay reachable and unmoved for as long as the Proof is
// used. See the package documentation for the address caveats.
//
// The zero Proof witnesses an empty range; merges through it succeed only
// between zero-length operands. Proofs are comparable: proofs of the same
// allocation extent are equal.
type Proof struct {
	begin uintptr
	end   uintptr
}

var _ fmt.Stringer = Proof{}

// New returns a Proof witnessing the memory occupied by the elements of s.
// The witnessed range covers len(s) elements; spare capacity beyond the
// length is not included.
func New[T any](s []T) Proof {
	if len(s) == 0 {
		return Proof{}
	}
	begin := unsafecast.SliceAddr(s)
	size, ok := bound.MulUintptr(uintptr(len(s)), unsafecast.Sizeof[T]())
	if !ok {
		return Proof{}
	}
	end, ok := bound.AddUintptr(begin, size)
	if !ok {
		return Proof{}
	}
	return Proof{begin: begin, end: end}
}

// NewString returns a Proof witnessing the bytes of s.
func NewString(s string) Proof {
	if len(s) == 0 {
		return Proof{}
	}
	begin := unsafecast.StringAddr(s)
	end, ok := bound.AddUintptr(begin, uintptr(len(s)))
	if !ok {
		return Proof{}
	}
	return Proof{begin: begin, end: end}
}

// String formats the witnessed range for debugging.
func (p Proof) String() string {
	return fmt.Sprintf("seam.Proof[%#x,%#x)", p.begin, p.end)
}

// within reports whether size bytes at addr lie inside the witnessed
// range. A zero-size candidate at either boundary is inside.
func (p Proof) within(addr, size uintptr) bool {
	end, ok := bound.AddUintptr(addr, size)
	if !ok {
		return false
	}
	return p.begin <= addr && end <= p.end
}

// holdsString reports whether s's bytes lie inside the witnessed range.
// Empty strings carry no position and are trivially held.
func (p Proof) holdsString(s string) bool {
	if len(s) == 0 {
		return true
	}
	return p.within(unsafecast.StringAddr(s), uintptr(len(s)))
}

// holdsSlice is holdsString for element slices, scaled by element size.
func holdsSlice[T any](p Proof, s []T) bool {
	if len(s) == 0 {
		return true
	}
	size, ok := bound.MulUintptr(uintptr(len(s)), unsafecast.Sizeof[T]())
	if !ok {
		return false
	}
	return p.within(unsafecast.SliceAddr(s), size)
}

// Concat merges a followed by b into one string without copying. Both
// operands must lie inside the witnessed allocation and b must start at
// the byte where a ends; anything else is ErrNotAdjacent. A zero-length
// operand merges with anything and the result is the other operand.
func (p Proof) Concat(a, b string) (string, error) {
	if !p.holdsString(a) || !p.holdsString(b) {
		return "", ErrNotAdjacent
	}
	return splice.Strings(a, b)
}

// ConcatUnordered is Concat without the ordering requirement: the operands
// may touch in either order and come back merged in address order.
func (p Proof) ConcatUnordered(a, b string) (string, error) {
	if !p.holdsString(a) || !p.holdsString(b) {
		return "", ErrNotAdjacent
	}
	return splice.StringsUnordered(a, b)
}

// ConcatSlice merges a followed by b into one slice without copying,
// under the rules of Proof.Concat with positions scaled by the element
// size. Go methods cannot be generic, so the slice forms are free
// functions taking the Proof first.
func ConcatSlice[T any](p Proof, a, b []T) ([]T, error) {
	if !holdsSlice(p, a) || !holdsSlice(p, b) {
		return nil, ErrNotAdjacent
	}
	return splice.Slice(a, b)
}

// ConcatSliceUnordered is ConcatSlice without the ordering requirement.
func ConcatSliceUnordered[T any](p Proof, a, b []T) ([]T, error) {
	if !holdsSlice(p, a) || !holdsSlice(p, b) {
		return nil, ErrNotAdjacent
	}
	return splice.SliceUnordered(a, b)
}
