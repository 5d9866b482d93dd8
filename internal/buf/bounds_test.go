package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	cases := []struct {
		name   string
		a, b   int
		want   int
		wantOk bool
	}{
		{"normal add", 10, 5, 15, true},
		{"overflow past MaxInt", math.MaxInt, 1, 0, false},
		{"underflow past MinInt", math.MinInt, -1, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sum, ok := AddOverflowSafe(c.a, c.b)
			if ok != c.wantOk {
				t.Fatalf("AddOverflowSafe(%d,%d) ok = %v, want %v", c.a, c.b, ok, c.wantOk)
			}
			if ok && sum != c.want {
				t.Fatalf("AddOverflowSafe(%d,%d) = %d, want %d", c.a, c.b, sum, c.want)
			}
		})
	}
}

func TestMulOverflowSafe(t *testing.T) {
	cases := []struct {
		name   string
		a, b   int
		want   int
		wantOk bool
	}{
		{"normal multiply", 4, 16, 64, true},
		{"zero operand never overflows", 0, 5, 0, true},
		{"doubling MaxInt overflows", math.MaxInt, 2, 0, false},
		{"negating MinInt overflows", math.MinInt, -1, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			prod, ok := MulOverflowSafe(c.a, c.b)
			if ok != c.wantOk {
				t.Fatalf("MulOverflowSafe(%d,%d) ok = %v, want %v", c.a, c.b, ok, c.wantOk)
			}
			if ok && prod != c.want {
				t.Fatalf("MulOverflowSafe(%d,%d) = %d, want %d", c.a, c.b, prod, c.want)
			}
		})
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}

	t.Run("in-bounds slice", func(t *testing.T) {
		got, ok := Slice(data, 1, 3)
		if !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
			t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
		}
	})

	t.Run("extends past len", func(t *testing.T) {
		if _, ok := Slice(data, 4, 2); ok {
			t.Fatalf("Slice should fail when extending beyond len")
		}
	})

	t.Run("negative offset rejected", func(t *testing.T) {
		if _, ok := Slice(data, -1, 1); ok {
			t.Fatalf("Slice should reject negative offset")
		}
	})

	t.Run("negative length rejected", func(t *testing.T) {
		if _, ok := Slice(data, 1, -1); ok {
			t.Fatalf("Slice should reject negative length")
		}
	})

	t.Run("Has false for out-of-bounds range", func(t *testing.T) {
		if Has(data, 2, 4) {
			t.Fatalf("Has should be false for out-of-bounds range")
		}
	})

	t.Run("Has true for valid range", func(t *testing.T) {
		if !Has(data, 2, 1) {
			t.Fatalf("Has should be true for valid range")
		}
	})
}
