package lang

import "testing"

func TestFindOrCreateNamespaceIdempotent(t *testing.T) {
	ResetNamespaceRegistry()
	a := FindOrCreateNamespace(InternSymbol("user"))
	b := FindOrCreateNamespace(InternSymbol("user"))
	if a != b {
		t.Errorf("FindOrCreateNamespace not idempotent")
	}
}

func TestNamespaceInternIdempotent(t *testing.T) {
	ResetNamespaceRegistry()
	ns := FindOrCreateNamespace(InternSymbol("user"))
	sym := InternSymbol("x")

	v1, err := ns.Intern(sym)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := ns.Intern(sym)
	if err != nil {
		t.Fatal(err)
	}
	if v1 != v2 {
		t.Errorf("Intern(x) twice returned distinct Vars")
	}
}

func TestNamespaceInternRejectsQualifiedSymbol(t *testing.T) {
	ResetNamespaceRegistry()
	ns := FindOrCreateNamespace(InternSymbol("user"))
	_, err := ns.Intern(InternSymbol("other", "x"))
	if err == nil {
		t.Errorf("Intern of a qualified symbol should fail")
	}
}

func TestNamespaceSeededWithBuiltins(t *testing.T) {
	ResetNamespaceRegistry()
	ns := FindOrCreateNamespace(InternSymbol("user"))
	v := ns.FindInternedVar(InternSymbol("+"))
	if v == nil {
		t.Fatalf("namespace should be seeded with + built-in")
	}
	if _, ok := v.Deref().(NativeFn); !ok {
		t.Errorf("+ should resolve to a NativeFn")
	}
}

func TestNamespaceAliasAndRefer(t *testing.T) {
	ResetNamespaceRegistry()
	a := FindOrCreateNamespace(InternSymbol("alpha"))
	b := FindOrCreateNamespace(InternSymbol("beta"))

	a.AddAlias(InternSymbol("b"), b)
	if a.LookupAlias(InternSymbol("b")) != b {
		t.Errorf("AddAlias/LookupAlias round trip failed")
	}

	v, err := b.Intern(InternSymbol("thing"))
	if err != nil {
		t.Fatal(err)
	}
	v.SetRoot(int64(99))
	a.Refer(InternSymbol("thing"), v)
	if a.FindInternedVar(InternSymbol("thing")).Deref() != int64(99) {
		t.Errorf("Refer did not install the target var")
	}
}
