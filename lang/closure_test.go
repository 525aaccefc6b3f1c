package lang

import "testing"

func TestClosureInternCreatesOncePerSymbol(t *testing.T) {
	c := NewClosure(InternSymbol("scope"), nil)
	sym := InternSymbol("x")

	v1, err := c.Intern(sym)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := c.Intern(sym)
	if err != nil {
		t.Fatal(err)
	}
	if v1 != v2 {
		t.Errorf("Closure.Intern should return the same Var on a second intern")
	}
}

func TestClosureLookupDelegatesOutward(t *testing.T) {
	ResetNamespaceRegistry()
	ns := FindOrCreateNamespace(InternSymbol("user"))
	outerVar, err := ns.Intern(InternSymbol("outer"))
	if err != nil {
		t.Fatal(err)
	}
	outerVar.SetRoot(int64(7))

	inner := NewClosure(InternSymbol("scope"), ns)
	v := inner.FindInternedVar(InternSymbol("outer"))
	if v == nil || v.Deref() != int64(7) {
		t.Errorf("Closure should resolve unbound-locally symbols through outer")
	}
}

func TestClosureNeverWritesThroughToOuter(t *testing.T) {
	ResetNamespaceRegistry()
	ns := FindOrCreateNamespace(InternSymbol("user"))
	inner := NewClosure(InternSymbol("scope"), ns)

	sym := InternSymbol("x")
	v, err := inner.Intern(sym)
	if err != nil {
		t.Fatal(err)
	}
	v.SetRoot(int64(1))

	if ns.FindInternedVar(sym) != nil {
		t.Errorf("interning in a closure should not leak into its outer namespace")
	}
}
