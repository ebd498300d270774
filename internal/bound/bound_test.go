package bound

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	if sum, ok := Add(10, 5); !ok || sum != 15 {
		t.Fatalf("Add(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := Add(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := Add(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
	if sum, ok := Add(math.MaxInt, 0); !ok || sum != math.MaxInt {
		t.Fatalf("Add(MaxInt,0)=%d,%v want MaxInt,true", sum, ok)
	}
}

func TestAddUintptr(t *testing.T) {
	if sum, ok := AddUintptr(40, 2); !ok || sum != 42 {
		t.Fatalf("AddUintptr(40,2)=%d,%v want 42,true", sum, ok)
	}
	if _, ok := AddUintptr(^uintptr(0), 1); ok {
		t.Fatalf("expected wraparound at the top of the address space")
	}
	if sum, ok := AddUintptr(^uintptr(0), 0); !ok || sum != ^uintptr(0) {
		t.Fatalf("AddUintptr(max,0) must stay in range")
	}
}

func TestMulUintptr(t *testing.T) {
	if p, ok := MulUintptr(6, 7); !ok || p != 42 {
		t.Fatalf("MulUintptr(6,7)=%d,%v want 42,true", p, ok)
	}
	if p, ok := MulUintptr(0, ^uintptr(0)); !ok || p != 0 {
		t.Fatalf("MulUintptr(0,max)=%d,%v want 0,true", p, ok)
	}
	if _, ok := MulUintptr(^uintptr(0), 2); ok {
		t.Fatalf("expected wraparound for max*2")
	}
}

func TestSlice(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if got, ok := Slice(data, 5, 0); !ok || len(got) != 0 {
		t.Fatalf("Slice at end should yield empty: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
	if _, ok := Slice(data, 2, math.MaxInt); ok {
		t.Fatalf("Slice should reject overflowing range")
	}
}

func TestCheckRange(t *testing.T) {
	if err := CheckRange(10, 2, 8); err != nil {
		t.Fatalf("CheckRange(10,2,8) unexpected error: %v", err)
	}
	if err := CheckRange(10, 10, 0); err != nil {
		t.Fatalf("zero-length range at end must be valid: %v", err)
	}
	if err := CheckRange(10, -1, 2); err == nil {
		t.Fatalf("expected error for negative offset")
	}
	if err := CheckRange(10, 2, -2); err == nil {
		t.Fatalf("expected error for negative length")
	}
	if err := CheckRange(10, 4, 7); err == nil {
		t.Fatalf("expected error for out-of-bounds end")
	}
	if err := CheckRange(10, 1, math.MaxInt); err == nil {
		t.Fatalf("expected error for overflowing range")
	}
}
