package splice

import (
	"errors"

	"github.com/joshuapare/seamkit/internal/bound"
	"github.com/joshuapare/seamkit/internal/unsafecast"
)

// ErrNotAdjacent indicates that two regions do not touch end to start in
// the order the operation requires. It is the single failure mode of every
// merge in this module. seam re-exports this value and is the surface most
// callers meet it through, so the message carries that package's name.
var ErrNotAdjacent = errors.New("seam: regions not adjacent within witnessed allocation")

// Strings returns a string spanning a then b when b starts at the byte
// where a ends. The result aliases the operands' bytes. A zero-length
// operand merges with anything; the result is the other operand.
func Strings(a, b string) (string, error) {
	if len(a) == 0 {
		return b, nil
	}
	if len(b) == 0 {
		return a, nil
	}
	end, ok := bound.AddUintptr(unsafecast.StringAddr(a), uintptr(len(a)))
	if !ok || end != unsafecast.StringAddr(b) {
		return "", ErrNotAdjacent
	}
	n, ok := bound.Add(len(a), len(b))
	if !ok {
		return "", ErrNotAdjacent
	}
	return unsafecast.ExtendString(a, n), nil
}

// StringsUnordered merges a and b in whichever order makes them adjacent.
func StringsUnordered(a, b string) (string, error) {
	if len(a) == 0 {
		return b, nil
	}
	if len(b) == 0 {
		return a, nil
	}
	if unsafecast.StringAddr(b) < unsafecast.StringAddr(a) {
		a, b = b, a
	}
	return Strings(a, b)
}

// Slice returns a slice spanning a then b when b's first element starts at
// the address where a's last element ends. The result aliases the
// operands' elements and has capacity len(a)+len(b). A zero-length operand
// merges with anything; the result is the other operand.
func Slice[T any](a, b []T) ([]T, error) {
	if len(a) == 0 {
		return b, nil
	}
	if len(b) == 0 {
		return a, nil
	}
	size, ok := bound.MulUintptr(uintptr(len(a)), unsafecast.Sizeof[T]())
	if !ok {
		return nil, ErrNotAdjacent
	}
	end, ok := bound.AddUintptr(unsafecast.SliceAddr(a), size)
	if !ok || end != unsafecast.SliceAddr(b) {
		return nil, ErrNotAdjacent
	}
	n, ok := bound.Add(len(a), len(b))
	if !ok {
		return nil, ErrNotAdjacent
	}
	return unsafecast.Extend(a, n), nil
}

// SliceUnordered merges a and b in whichever order makes them adjacent.
func SliceUnordered[T any](a, b []T) ([]T, error) {
	if len(a) == 0 {
		return b, nil
	}
	if len(b) == 0 {
		return a, nil
	}
	if unsafecast.SliceAddr(b) < unsafecast.SliceAddr(a) {
		a, b = b, a
	}
	return Slice(a, b)
}
