package lang

import (
	"math/big"
	"strconv"
	"testing"
)

func TestMatchNumberBases(t *testing.T) {
	cases := []struct {
		src  string
		base int
	}{
		{"42", 10},
		{"052", 8},
		{"0x2a", 16},
		{"16r2a", 16},
	}
	for _, c := range cases {
		v, ok := matchNumber(c.src)
		if !ok {
			t.Fatalf("matchNumber(%q) failed to parse", c.src)
		}
		n, ok := v.(int64)
		if !ok {
			t.Fatalf("matchNumber(%q) = %v (%T), want int64", c.src, v, v)
		}
		if n != 42 {
			t.Errorf("matchNumber(%q) = %d, want 42", c.src, n)
		}
	}
}

func TestMatchNumberRoundTripAcrossBases(t *testing.T) {
	for base := 2; base <= 36; base++ {
		s := strconv.FormatInt(123, base)
		literal := strconv.Itoa(base) + "r" + s
		v, ok := matchNumber(literal)
		if !ok {
			t.Fatalf("matchNumber(%q) failed to parse", literal)
		}
		if v.(int64) != 123 {
			t.Errorf("matchNumber(%q) = %v, want 123", literal, v)
		}
	}
}

func TestMatchNumberFloatAndRatio(t *testing.T) {
	v, ok := matchNumber("3.14")
	if !ok || v.(float64) != 3.14 {
		t.Errorf("matchNumber(\"3.14\") = %v", v)
	}

	v, ok = matchNumber("1/2")
	if !ok {
		t.Fatalf("matchNumber(\"1/2\") failed")
	}
	r, ok := v.(*big.Rat)
	if !ok || r.Cmp(big.NewRat(1, 2)) != 0 {
		t.Errorf("matchNumber(\"1/2\") = %v, want 1/2", v)
	}
}

func TestMatchNumberRejectsGarbage(t *testing.T) {
	if _, ok := matchNumber("not-a-number"); ok {
		t.Errorf("matchNumber should reject non-numeric tokens")
	}
}
