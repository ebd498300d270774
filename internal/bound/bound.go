// Package bound provides overflow-safe arithmetic and bounds checks for the
// address and length calculations behind region merging.
package bound

import "fmt"

// Add adds two lengths, returning ok = false when the result would overflow int.
func Add(a, b int) (int, bool) {
	sum := a + b
	if b > 0 && sum < a {
		return 0, false
	}
	if b < 0 && sum > a {
		return 0, false
	}
	return sum, true
}

// AddUintptr adds an address and a size, returning ok = false on wraparound.
func AddUintptr(a, b uintptr) (uintptr, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// MulUintptr multiplies a count by an element size, returning ok = false on
// wraparound.
func MulUintptr(a, b uintptr) (uintptr, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := Add(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// CheckRange validates that [off, off+n) lies within a buffer of bufLen
// bytes, returning an error naming the specific failure.
func CheckRange(bufLen, off, n int) error {
	if off < 0 {
		return fmt.Errorf("negative offset: %d", off)
	}
	if n < 0 {
		return fmt.Errorf("negative length: %d", n)
	}
	end, ok := Add(off, n)
	if !ok {
		return fmt.Errorf("overflow: offset=%d + length=%d", off, n)
	}
	if end > bufLen {
		return fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return nil
}
