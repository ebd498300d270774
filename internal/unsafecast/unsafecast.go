// Package unsafecast is the module's only importer of unsafe. It extracts
// element addresses from slice and string headers and rebuilds wider headers
// over memory that callers have proven contiguous.
//
// Nothing here validates anything. Lengths, bounds and adjacency must be
// established before a span is constructed; code outside internal reaches
// these primitives only through seam and seam/splice, which perform those
// checks first.
package unsafecast

import "unsafe"

// Sizeof returns the size in bytes of T.
func Sizeof[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// SliceAddr returns the starting address of s's element data.
//
// The result is meaningful only when len(s) > 0. Go normalizes the data
// pointer of zero-length headers: an empty re-slice may keep the base
// address of the slice it was cut from, or be nil, so the address of an
// empty slice carries no position.
func SliceAddr[T any](s []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}

// StringAddr returns the starting address of s's bytes. Meaningful only
// when len(s) > 0, as with SliceAddr.
func StringAddr(s string) uintptr {
	return uintptr(unsafe.Pointer(unsafe.StringData(s)))
}

// Extend returns a slice of n elements starting at s's data pointer,
// aliasing s's backing memory. The caller must have proven that n
// contiguous elements live at that address and that s is non-empty.
// The result has capacity n.
func Extend[T any](s []T, n int) []T {
	return unsafe.Slice(unsafe.SliceData(s), n)
}

// ExtendString returns a string of n bytes starting at s's data pointer.
// Same contract as Extend.
func ExtendString(s string, n int) string {
	return unsafe.String(unsafe.StringData(s), n)
}

// String returns b's bytes as a string without copying. The caller must not
// mutate b while the string is live.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Slice reinterprets a slice of one element type as a slice of another,
// sharing the backing memory. Length and capacity scale by element size,
// truncating when the sizes do not divide evenly. Alignment is the
// caller's problem.
func Slice[From, To any](in []From) []To {
	var (
		fromSize = int(Sizeof[From]())
		toSize   = int(Sizeof[To]())

		toLen = len(in) * fromSize / toSize
		toCap = cap(in) * fromSize / toSize
	)
	out := (*To)(unsafe.Pointer(unsafe.SliceData(in)))
	return unsafe.Slice(out, toCap)[:toLen]
}
