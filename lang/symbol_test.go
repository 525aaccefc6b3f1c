package lang

import "testing"

func TestInternSymbolIdempotent(t *testing.T) {
	a := InternSymbol("foo")
	b := InternSymbol("foo")
	if a != b {
		t.Errorf("InternSymbol(\"foo\") returned distinct pointers: %p != %p", a, b)
	}

	c := InternSymbol("ns", "bar")
	d := InternSymbol("ns/bar")
	if c != d {
		t.Errorf("InternSymbol(\"ns\",\"bar\") != InternSymbol(\"ns/bar\")")
	}
}

func TestInternSymbolLoneSlash(t *testing.T) {
	s := InternSymbol("/")
	if s.Ns() != "" || s.Name() != "/" {
		t.Errorf("InternSymbol(\"/\") = (%q, %q), want (\"\", \"/\")", s.Ns(), s.Name())
	}
}

func TestParseSymbolRejectsInvalid(t *testing.T) {
	cases := []string{"foo:", "ns:/name", "a::b"}
	for _, s := range cases {
		if ParseSymbol(s) != nil {
			t.Errorf("ParseSymbol(%q) should be rejected", s)
		}
	}
}

func TestParseSymbolAcceptsValid(t *testing.T) {
	sym := ParseSymbol("ns/name")
	if sym == nil || sym.Ns() != "ns" || sym.Name() != "name" {
		t.Fatalf("ParseSymbol(\"ns/name\") = %v", sym)
	}
	if sym.String() != "ns/name" {
		t.Errorf("String() = %q, want ns/name", sym.String())
	}
}

func TestInternKeywordIdempotent(t *testing.T) {
	a := InternKeyword(InternSymbol("a"))
	b := InternKeyword(InternSymbol("a"))
	if a != b {
		t.Errorf("InternKeyword not idempotent")
	}
	if a.String() != ":a" {
		t.Errorf("String() = %q, want :a", a.String())
	}
}
