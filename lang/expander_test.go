package lang

import (
	"strings"
	"testing"
)

func expandSrc(t *testing.T, src string) interface{} {
	t.Helper()
	ResetNamespaceRegistry()
	ns := FindOrCreateNamespace(InternSymbol("user"))
	macros := NewMacroTable()
	rd := NewReader(strings.NewReader(src))
	form, err := rd.Read()
	if err != nil {
		t.Fatalf("Read(%q): %v", src, err)
	}
	expanded, err := Expand(form, ns, macros)
	if err != nil {
		t.Fatalf("Expand(%q): %v", src, err)
	}
	return expanded
}

func TestExpandLetRewritesToNestedFn(t *testing.T) {
	got := expandSrc(t, "(let [x 1 y 2] (+ x y))")
	printed := PrintString(got)
	want := "((fn [x] ((fn [y] (+ x y)) 2)) 1)"
	if printed != want {
		t.Errorf("expandLet = %s, want %s", printed, want)
	}
}

func TestExpandFnWrapsMultiFormBodyInDo(t *testing.T) {
	got := expandSrc(t, "(fn [x] 1 2 x)")
	printed := PrintString(got)
	want := "(fn [x] (do 1 2 x))"
	if printed != want {
		t.Errorf("expandFn = %s, want %s", printed, want)
	}
}

func TestExpandQuoteReturnsUnchanged(t *testing.T) {
	got := expandSrc(t, "(quote (a b c))")
	if PrintString(got) != "(quote (a b c))" {
		t.Errorf("quote should not be expanded, got %s", PrintString(got))
	}
}

func TestExpandEmptyDoElides(t *testing.T) {
	got := expandSrc(t, "(do)")
	if got != nil {
		t.Errorf("(do) should expand to nil, got %v", got)
	}
}

func TestExpandSyntaxQuoteRejected(t *testing.T) {
	ResetNamespaceRegistry()
	ns := FindOrCreateNamespace(InternSymbol("user"))
	macros := NewMacroTable()
	form := NewList(InternSymbol("`"), InternSymbol("x"))
	_, err := Expand(form, ns, macros)
	le, ok := err.(*LangError)
	if !ok || le.Kind != SyntaxError {
		t.Errorf("syntax-quote should raise SyntaxError, got %v", err)
	}
}
