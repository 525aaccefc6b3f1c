package lang

import "testing"

func TestVarSetRootRebinds(t *testing.T) {
	ResetNamespaceRegistry()
	ns := FindOrCreateNamespace(InternSymbol("user"))
	v, err := ns.Intern(InternSymbol("x"))
	if err != nil {
		t.Fatal(err)
	}
	if v.IsBound() {
		t.Errorf("freshly interned var should not be bound yet")
	}

	v.SetRoot(int64(1))
	if v.Deref() != int64(1) {
		t.Errorf("Deref() = %v, want 1", v.Deref())
	}
	v.SetRoot(int64(2))
	if v.Deref() != int64(2) {
		t.Errorf("Deref() = %v, want 2", v.Deref())
	}
}

func TestVarWatchNotifiedOnRebind(t *testing.T) {
	ResetNamespaceRegistry()
	ns := FindOrCreateNamespace(InternSymbol("user"))
	v, err := ns.Intern(InternSymbol("x"))
	if err != nil {
		t.Fatal(err)
	}

	var seenOld, seenNew interface{}
	v.AddWatch("test", func(key interface{}, vr *Var, oldVal, newVal interface{}) {
		seenOld, seenNew = oldVal, newVal
	})
	v.SetRoot(int64(1))
	v.SetRoot(int64(2))

	if seenOld != int64(1) || seenNew != int64(2) {
		t.Errorf("watch saw (%v, %v), want (1, 2)", seenOld, seenNew)
	}
}

func TestVarString(t *testing.T) {
	ResetNamespaceRegistry()
	ns := FindOrCreateNamespace(InternSymbol("user"))
	v, err := ns.Intern(InternSymbol("x"))
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "#'user/x" {
		t.Errorf("String() = %q, want #'user/x", v.String())
	}
}
