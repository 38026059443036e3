package wire

import (
	"math"
	"testing"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		in, want uint32
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{24, 24},
		{25, 32},
	}
	for _, tc := range tests {
		if got := Align(tc.in); got != tc.want {
			t.Errorf("Align(%d): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNaturalStride(t *testing.T) {
	tests := []struct {
		in, want uint32
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{6, 8},
		{8, 8},
		{9, 16},
		{24, 24},
	}
	for _, tc := range tests {
		if got := NaturalStride(tc.in); got != tc.want {
			t.Errorf("NaturalStride(%d): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSafeAdd(t *testing.T) {
	if v, ok := SafeAdd(40, 8); !ok || v != 48 {
		t.Errorf("SafeAdd(40, 8): got %d, %v", v, ok)
	}
	if _, ok := SafeAdd(math.MaxUint32, 1); ok {
		t.Error("SafeAdd overflow not detected")
	}
	if v, ok := SafeAdd(math.MaxUint32, 0); !ok || v != math.MaxUint32 {
		t.Errorf("SafeAdd(max, 0): got %d, %v", v, ok)
	}
}

func TestSafeMul(t *testing.T) {
	if v, ok := SafeMul(21, 4); !ok || v != 84 {
		t.Errorf("SafeMul(21, 4): got %d, %v", v, ok)
	}
	if _, ok := SafeMul(math.MaxUint32/2+1, 2); ok {
		t.Error("SafeMul overflow not detected")
	}
	if v, ok := SafeMul(math.MaxUint32, 0); !ok || v != 0 {
		t.Errorf("SafeMul(max, 0): got %d, %v", v, ok)
	}
}
