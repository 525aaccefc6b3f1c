package lang

import "testing"

func TestArithmeticPromotion(t *testing.T) {
	if got := evalAll(t, "(+ 1/2 1/2)"); got != int64(1) {
		t.Errorf("(+ 1/2 1/2) = %v, want 1 (ratio collapses to int)", got)
	}
	if got := evalAll(t, "(/ 1 3)"); PrintString(got) != "1/3" {
		t.Errorf("(/ 1 3) = %v, want 1/3", PrintString(got))
	}
	if got := evalAll(t, "(/ 6 3)"); got != int64(2) {
		t.Errorf("(/ 6 3) = %v, want 2", got)
	}
	if got := evalAll(t, "(+ 1 2.0)"); got != float64(3) {
		t.Errorf("(+ 1 2.0) = %v, want 3.0", got)
	}
}

func TestComparisonChaining(t *testing.T) {
	if got := evalAll(t, "(< 1 2 3)"); got != true {
		t.Errorf("(< 1 2 3) = %v, want true", got)
	}
	if got := evalAll(t, "(< 1 3 2)"); got != false {
		t.Errorf("(< 1 3 2) = %v, want false", got)
	}
	if got := evalAll(t, "(= 1 1 1)"); got != true {
		t.Errorf("(= 1 1 1) = %v, want true", got)
	}
	if got := evalAll(t, "(not= 1 1 2)"); got != true {
		t.Errorf("(not= 1 1 2) = %v, want true", got)
	}
}

func TestModFloored(t *testing.T) {
	if got := evalAll(t, "(mod 7 3)"); got != int64(1) {
		t.Errorf("(mod 7 3) = %v, want 1", got)
	}
	if got := evalAll(t, "(mod -7 3)"); got != int64(2) {
		t.Errorf("(mod -7 3) = %v, want 2 (floored)", got)
	}
}

func TestCollectionBuiltins(t *testing.T) {
	if got := evalAll(t, "(count [1 2 3])"); got != int64(3) {
		t.Errorf("(count [1 2 3]) = %v, want 3", got)
	}
	if got := evalAll(t, "(first (list 1 2 3))"); got != int64(1) {
		t.Errorf("(first (list 1 2 3)) = %v, want 1", got)
	}
	if got := PrintString(evalAll(t, "(rest (list 1 2 3))")); got != "(2 3)" {
		t.Errorf("(rest (list 1 2 3)) = %s, want (2 3)", got)
	}
	if got := PrintString(evalAll(t, "(cons 1 (list 2 3))")); got != "(1 2 3)" {
		t.Errorf("(cons 1 (list 2 3)) = %s, want (1 2 3)", got)
	}
	if got := evalAll(t, "(empty? (list))"); got != true {
		t.Errorf("(empty? (list)) = %v, want true", got)
	}
	if got := evalAll(t, `(str "a" "b" 1)`); got != "ab1" {
		t.Errorf(`(str "a" "b" 1) = %v, want ab1`, got)
	}
	if got := evalAll(t, "(get {:a 1} :a)"); got != int64(1) {
		t.Errorf("(get {:a 1} :a) = %v, want 1", got)
	}
	if got := evalAll(t, "(get {:a 1} :b 0)"); got != int64(0) {
		t.Errorf("(get {:a 1} :b 0) = %v, want 0", got)
	}
}

func TestMapFilterReduce(t *testing.T) {
	got := PrintString(evalAll(t, "(map (fn [x] (* x x)) (list 1 2 3))"))
	if got != "(1 4 9)" {
		t.Errorf("map = %s, want (1 4 9)", got)
	}
	got = PrintString(evalAll(t, "(filter (fn [x] (< 1 x)) (list 1 2 3))"))
	if got != "(2 3)" {
		t.Errorf("filter = %s, want (2 3)", got)
	}
	if v := evalAll(t, "(reduce + 0 (list 1 2 3 4))"); v != int64(10) {
		t.Errorf("reduce = %v, want 10", v)
	}
}

func TestRange(t *testing.T) {
	if got := PrintString(evalAll(t, "(range 5)")); got != "(0 1 2 3 4)" {
		t.Errorf("(range 5) = %s", got)
	}
	if got := PrintString(evalAll(t, "(range 1 4)")); got != "(1 2 3)" {
		t.Errorf("(range 1 4) = %s", got)
	}
}

func TestApplyBuiltin(t *testing.T) {
	if got := evalAll(t, "(apply + (list 1 2 3))"); got != int64(6) {
		t.Errorf("(apply + (list 1 2 3)) = %v, want 6", got)
	}
}
