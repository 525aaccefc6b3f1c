package lang

import (
	"fmt"
	"math/big"
)

// installBuiltins seeds ns with the initial bindings spec.md §6 names,
// plus the collection primitives SPEC_FULL.md's supplemented-features
// section adds. Grounded on original_source/mage/namespace.py's BUILTINS
// dict and successive_comp helper.
func installBuiltins(ns *Namespace) {
	def := func(name string, fn NativeFn) {
		v, _ := ns.Intern(InternSymbol(name))
		v.SetRoot(fn)
	}

	def("+", foldArith(addValues))
	def("-", foldArith(subValues))
	def("*", foldArith(mulValues))
	def("/", foldArith(divValues))

	def("mod", builtinMod)
	def("=", builtinEq)
	def("not=", builtinNeq)
	def("<", chainCompare(func(c int) bool { return c < 0 }))
	def(">", chainCompare(func(c int) bool { return c > 0 }))
	def("<=", chainCompare(func(c int) bool { return c <= 0 }))
	def(">=", chainCompare(func(c int) bool { return c >= 0 }))
	def("zero?", builtinZeroQ)

	def("list", builtinList)
	def("list?", builtinListQ)
	def("map", builtinMap)
	def("filter", builtinFilter)
	def("reduce", builtinReduce)
	def("range", builtinRange)
	def("print", builtinPrint)

	def("count", builtinCount)
	def("first", builtinFirst)
	def("rest", builtinRest)
	def("cons", builtinCons)
	def("conj", builtinConj)
	def("nth", builtinNth)
	def("empty?", builtinEmptyQ)
	def("str", builtinStr)
	def("symbol", builtinSymbol)
	def("keyword", builtinKeyword)
	def("vector", builtinVector)
	def("hash-map", builtinHashMap)
	def("hash-set", builtinHashSet)
	def("get", builtinGet)
	def("assoc", builtinAssoc)
	def("dissoc", builtinDissoc)
	def("apply", builtinApply)
}

// --- numeric tower -------------------------------------------------------

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case *big.Rat:
		f, _ := n.Float64()
		return f, true
	}
	return 0, false
}

func asRat(v interface{}) (*big.Rat, bool) {
	switch n := v.(type) {
	case int64:
		return big.NewRat(n, 1), true
	case *big.Rat:
		return n, true
	}
	return nil, false
}

// collapseRatio demotes an exact-integer Ratio back to Int, matching
// spec.md §3's "ratios are reduced to lowest terms" invariant extended to
// its natural conclusion (Clojure collapses n/1 to an integer).
func collapseRatio(r *big.Rat) interface{} {
	if r.IsInt() {
		return r.Num().Int64()
	}
	return r
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int64, float64, *big.Rat:
		return true
	}
	return false
}

func numericBinOp(name string, a, b interface{}, iop func(int64, int64) int64, rop func(*big.Rat, *big.Rat) *big.Rat, fop func(float64, float64) float64) (interface{}, error) {
	if !isNumeric(a) || !isNumeric(b) {
		return nil, typeErrorf("%s requires numeric operands, got %s and %s", name, PrintString(a), PrintString(b))
	}
	if _, ok := a.(float64); ok {
		x, _ := asFloat(a)
		y, _ := asFloat(b)
		return fop(x, y), nil
	}
	if _, ok := b.(float64); ok {
		x, _ := asFloat(a)
		y, _ := asFloat(b)
		return fop(x, y), nil
	}
	if _, ok := a.(*big.Rat); ok {
		x, _ := asRat(a)
		y, _ := asRat(b)
		return collapseRatio(rop(x, y)), nil
	}
	if _, ok := b.(*big.Rat); ok {
		x, _ := asRat(a)
		y, _ := asRat(b)
		return collapseRatio(rop(x, y)), nil
	}
	ai := a.(int64)
	bi := b.(int64)
	return iop(ai, bi), nil
}

func addValues(a, b interface{}) (interface{}, error) {
	return numericBinOp("+", a, b,
		func(x, y int64) int64 { return x + y },
		func(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) },
		func(x, y float64) float64 { return x + y })
}

func subValues(a, b interface{}) (interface{}, error) {
	return numericBinOp("-", a, b,
		func(x, y int64) int64 { return x - y },
		func(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) },
		func(x, y float64) float64 { return x - y })
}

func mulValues(a, b interface{}) (interface{}, error) {
	return numericBinOp("*", a, b,
		func(x, y int64) int64 { return x * y },
		func(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) },
		func(x, y float64) float64 { return x * y })
}

// divValues implements spec.md §9's Open Question (c): generic numeric
// division, producing a Ratio when both operands are Int and the result
// isn't exact, a Float whenever either operand is a Float.
func divValues(a, b interface{}) (interface{}, error) {
	if !isNumeric(a) || !isNumeric(b) {
		return nil, typeErrorf("/ requires numeric operands, got %s and %s", PrintString(a), PrintString(b))
	}
	if _, ok := a.(float64); ok {
		x, _ := asFloat(a)
		y, _ := asFloat(b)
		if y == 0 {
			return nil, typeErrorf("Divide by zero")
		}
		return x / y, nil
	}
	if _, ok := b.(float64); ok {
		x, _ := asFloat(a)
		y, _ := asFloat(b)
		if y == 0 {
			return nil, typeErrorf("Divide by zero")
		}
		return x / y, nil
	}
	x, _ := asRat(a)
	y, _ := asRat(b)
	if y.Sign() == 0 {
		return nil, typeErrorf("Divide by zero")
	}
	return collapseRatio(new(big.Rat).Quo(x, y)), nil
}

func foldArith(op func(a, b interface{}) (interface{}, error)) NativeFn {
	return func(args []interface{}) (interface{}, error) {
		if len(args) == 0 {
			return nil, arityErrorf("requires at least 1 argument")
		}
		acc := args[0]
		for _, a := range args[1:] {
			var err error
			acc, err = op(acc, a)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}
}

func compareNum(a, b interface{}) (int, error) {
	if !isNumeric(a) || !isNumeric(b) {
		return 0, typeErrorf("comparison requires numeric operands, got %s and %s", PrintString(a), PrintString(b))
	}
	if _, ok := a.(float64); ok {
		x, _ := asFloat(a)
		y, _ := asFloat(b)
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if _, ok := b.(float64); ok {
		x, _ := asFloat(a)
		y, _ := asFloat(b)
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	}
	x, _ := asRat(a)
	y, _ := asRat(b)
	return x.Cmp(y), nil
}

// chainCompare builds <, >, <=, >= as "successive" (adjacent-pair) checks,
// matching original_source/mage/namespace.py's successive_comp exactly
// (see SPEC_FULL.md's supplemented-features section).
func chainCompare(ok func(cmp int) bool) NativeFn {
	return func(args []interface{}) (interface{}, error) {
		if len(args) < 1 {
			return nil, arityErrorf("requires at least 1 argument")
		}
		if len(args) == 1 {
			return true, nil
		}
		for i := 0; i+1 < len(args); i++ {
			c, err := compareNum(args[i], args[i+1])
			if err != nil {
				return nil, err
			}
			if !ok(c) {
				return false, nil
			}
		}
		return true, nil
	}
}

func builtinMod(args []interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, arityErrorf("mod takes exactly 2 arguments (%d given)", len(args))
	}
	a, aok := args[0].(int64)
	b, bok := args[1].(int64)
	if !aok || !bok {
		return nil, typeErrorf("mod requires integer operands, got %s and %s", PrintString(args[0]), PrintString(args[1]))
	}
	if b == 0 {
		return nil, typeErrorf("Divide by zero")
	}
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m, nil
}

func builtinEq(args []interface{}) (interface{}, error) {
	if len(args) == 0 {
		return nil, arityErrorf("= requires at least 1 argument")
	}
	for _, a := range args[1:] {
		if !valueEqual(args[0], a) {
			return false, nil
		}
	}
	return true, nil
}

func builtinNeq(args []interface{}) (interface{}, error) {
	v, err := builtinEq(args)
	if err != nil {
		return nil, err
	}
	return !v.(bool), nil
}

func builtinZeroQ(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, arityErrorf("zero? takes exactly 1 argument (%d given)", len(args))
	}
	c, err := compareNum(args[0], int64(0))
	if err != nil {
		return nil, err
	}
	return c == 0, nil
}

func builtinList(args []interface{}) (interface{}, error) {
	return NewList(args...), nil
}

func builtinListQ(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, arityErrorf("list? takes exactly 1 argument (%d given)", len(args))
	}
	_, ok := args[0].(*List)
	return ok, nil
}

func seqItems(coll interface{}) ([]interface{}, error) {
	switch c := coll.(type) {
	case *List:
		return c.Items(), nil
	case *Vector:
		return c.Items(), nil
	case *Set:
		return c.Items(), nil
	case nil:
		return nil, nil
	default:
		return nil, typeErrorf("%s is not a sequence", PrintString(coll))
	}
}

func builtinMap(args []interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, arityErrorf("map takes exactly 2 arguments (%d given)", len(args))
	}
	items, err := seqItems(args[1])
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, len(items))
	for i, it := range items {
		v, err := Apply(args[0], []interface{}{it})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewList(out...), nil
}

func builtinFilter(args []interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, arityErrorf("filter takes exactly 2 arguments (%d given)", len(args))
	}
	items, err := seqItems(args[1])
	if err != nil {
		return nil, err
	}
	out := make([]interface{}, 0, len(items))
	for _, it := range items {
		v, err := Apply(args[0], []interface{}{it})
		if err != nil {
			return nil, err
		}
		if IsTruthy(v) {
			out = append(out, it)
		}
	}
	return NewList(out...), nil
}

func builtinReduce(args []interface{}) (interface{}, error) {
	var fn, init interface{}
	var items []interface{}
	var err error
	switch len(args) {
	case 2:
		fn = args[0]
		items, err = seqItems(args[1])
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, arityErrorf("reduce of empty sequence with no initial value")
		}
		init, items = items[0], items[1:]
	case 3:
		fn = args[0]
		init = args[1]
		items, err = seqItems(args[2])
		if err != nil {
			return nil, err
		}
	default:
		return nil, arityErrorf("reduce takes 2 or 3 arguments (%d given)", len(args))
	}

	acc := init
	for _, it := range items {
		acc, err = Apply(fn, []interface{}{acc, it})
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func builtinRange(args []interface{}) (interface{}, error) {
	var start, end, step int64 = 0, 0, 1
	switch len(args) {
	case 1:
		n, ok := args[0].(int64)
		if !ok {
			return nil, typeErrorf("range requires integer arguments")
		}
		end = n
	case 2:
		s, ok1 := args[0].(int64)
		e, ok2 := args[1].(int64)
		if !ok1 || !ok2 {
			return nil, typeErrorf("range requires integer arguments")
		}
		start, end = s, e
	case 3:
		s, ok1 := args[0].(int64)
		e, ok2 := args[1].(int64)
		st, ok3 := args[2].(int64)
		if !ok1 || !ok2 || !ok3 {
			return nil, typeErrorf("range requires integer arguments")
		}
		start, end, step = s, e, st
	default:
		return nil, arityErrorf("range takes 1 to 3 arguments (%d given)", len(args))
	}
	if step == 0 {
		return nil, typeErrorf("range step cannot be zero")
	}
	var out []interface{}
	if step > 0 {
		for i := start; i < end; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > end; i += step {
			out = append(out, i)
		}
	}
	return NewList(out...), nil
}

func builtinPrint(args []interface{}) (interface{}, error) {
	for _, a := range args {
		fmt.Println(DisplayString(a))
	}
	return nil, nil
}

func builtinCount(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, arityErrorf("count takes exactly 1 argument (%d given)", len(args))
	}
	switch c := args[0].(type) {
	case *List:
		return int64(c.Len()), nil
	case *Vector:
		return int64(c.Len()), nil
	case *Set:
		return int64(c.Len()), nil
	case *Map:
		return int64(c.Len()), nil
	case string:
		return int64(len([]rune(c))), nil
	case nil:
		return int64(0), nil
	default:
		return nil, typeErrorf("%s has no count", PrintString(args[0]))
	}
}

func builtinFirst(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, arityErrorf("first takes exactly 1 argument (%d given)", len(args))
	}
	items, err := seqItems(args[0])
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func builtinRest(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, arityErrorf("rest takes exactly 1 argument (%d given)", len(args))
	}
	items, err := seqItems(args[0])
	if err != nil {
		return nil, err
	}
	if len(items) <= 1 {
		return NewList(), nil
	}
	return NewList(items[1:]...), nil
}

func builtinCons(args []interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, arityErrorf("cons takes exactly 2 arguments (%d given)", len(args))
	}
	items, err := seqItems(args[1])
	if err != nil {
		return nil, err
	}
	out := append([]interface{}{args[0]}, items...)
	return NewList(out...), nil
}

func builtinConj(args []interface{}) (interface{}, error) {
	if len(args) < 2 {
		return nil, arityErrorf("conj takes at least 2 arguments (%d given)", len(args))
	}
	switch c := args[0].(type) {
	case *List:
		out := c
		for _, x := range args[1:] {
			out = out.Cons(x)
		}
		return out, nil
	case *Vector:
		items := append(append([]interface{}{}, c.Items()...), args[1:]...)
		return NewVector(items...), nil
	case *Set:
		items := append(append([]interface{}{}, c.Items()...), args[1:]...)
		return NewSet(items...), nil
	default:
		return nil, typeErrorf("%s does not support conj", PrintString(args[0]))
	}
}

func builtinNth(args []interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, arityErrorf("nth takes exactly 2 arguments (%d given)", len(args))
	}
	n, ok := args[1].(int64)
	if !ok {
		return nil, typeErrorf("nth requires an integer index")
	}
	items, err := seqItems(args[0])
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) >= len(items) {
		return nil, typeErrorf("index %d out of range", n)
	}
	return items[n], nil
}

func builtinEmptyQ(args []interface{}) (interface{}, error) {
	c, err := builtinCount(args)
	if err != nil {
		return nil, err
	}
	return c.(int64) == 0, nil
}

// DisplayString renders a value for str/print purposes: like PrintString,
// except strings and chars are unwrapped rather than re-quoted (Clojure's
// str/print-str distinction).
func DisplayString(v interface{}) string {
	switch tv := v.(type) {
	case string:
		return tv
	case Char:
		return string(rune(tv))
	default:
		return PrintString(v)
	}
}

func builtinStr(args []interface{}) (interface{}, error) {
	out := ""
	for _, a := range args {
		if a == nil {
			continue
		}
		out += DisplayString(a)
	}
	return out, nil
}

func symNameParts(args []interface{}, who string) (string, string, error) {
	switch len(args) {
	case 1:
		s, ok := args[0].(string)
		if !ok {
			return "", "", typeErrorf("%s requires string arguments", who)
		}
		return "", s, nil
	case 2:
		ns, ok1 := args[0].(string)
		name, ok2 := args[1].(string)
		if !ok1 || !ok2 {
			return "", "", typeErrorf("%s requires string arguments", who)
		}
		return ns, name, nil
	default:
		return "", "", arityErrorf("%s takes 1 or 2 arguments (%d given)", who, len(args))
	}
}

func builtinSymbol(args []interface{}) (interface{}, error) {
	ns, name, err := symNameParts(args, "symbol")
	if err != nil {
		return nil, err
	}
	return InternSymbol(ns, name), nil
}

func builtinKeyword(args []interface{}) (interface{}, error) {
	ns, name, err := symNameParts(args, "keyword")
	if err != nil {
		return nil, err
	}
	return InternKeyword(InternSymbol(ns, name)), nil
}

func builtinVector(args []interface{}) (interface{}, error) {
	return NewVector(args...), nil
}

func builtinHashMap(args []interface{}) (interface{}, error) {
	if len(args)%2 != 0 {
		return nil, arityErrorf("hash-map requires an even number of arguments")
	}
	return NewMap(args...), nil
}

func builtinHashSet(args []interface{}) (interface{}, error) {
	return NewSet(args...), nil
}

func builtinGet(args []interface{}) (interface{}, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, arityErrorf("get takes 2 or 3 arguments (%d given)", len(args))
	}
	var dflt interface{}
	if len(args) == 3 {
		dflt = args[2]
	}
	switch c := args[0].(type) {
	case *Map:
		if v, ok := c.Get(args[1]); ok {
			return v, nil
		}
		return dflt, nil
	case *Set:
		if c.Contains(args[1]) {
			return args[1], nil
		}
		return dflt, nil
	case *Vector:
		n, ok := args[1].(int64)
		if !ok || n < 0 || int(n) >= c.Len() {
			return dflt, nil
		}
		return c.At(int(n)), nil
	case nil:
		return dflt, nil
	default:
		return nil, typeErrorf("%s does not support get", PrintString(args[0]))
	}
}

func builtinAssoc(args []interface{}) (interface{}, error) {
	if len(args) < 3 || len(args)%2 != 1 {
		return nil, arityErrorf("assoc requires a collection and key/value pairs")
	}
	switch c := args[0].(type) {
	case *Map:
		out := NewMap()
		for i, k := range c.Keys() {
			out.Assoc(k, c.Vals()[i])
		}
		for i := 1; i+1 < len(args); i += 2 {
			out.Assoc(args[i], args[i+1])
		}
		return out, nil
	case *Vector:
		items := append([]interface{}{}, c.Items()...)
		for i := 1; i+1 < len(args); i += 2 {
			n, ok := args[i].(int64)
			if !ok || n < 0 || int(n) > len(items) {
				return nil, typeErrorf("assoc index out of range")
			}
			if int(n) == len(items) {
				items = append(items, args[i+1])
			} else {
				items[n] = args[i+1]
			}
		}
		return NewVector(items...), nil
	default:
		return nil, typeErrorf("%s does not support assoc", PrintString(args[0]))
	}
}

func builtinDissoc(args []interface{}) (interface{}, error) {
	if len(args) < 1 {
		return nil, arityErrorf("dissoc requires a collection")
	}
	m, ok := args[0].(*Map)
	if !ok {
		return nil, typeErrorf("%s does not support dissoc", PrintString(args[0]))
	}
	out := NewMap()
	for i, k := range m.Keys() {
		out.Assoc(k, m.Vals()[i])
	}
	for _, k := range args[1:] {
		out.Dissoc(k)
	}
	return out, nil
}

func builtinApply(args []interface{}) (interface{}, error) {
	if len(args) < 2 {
		return nil, arityErrorf("apply requires a function and at least one argument")
	}
	fn := args[0]
	fixed := args[1 : len(args)-1]
	tail, err := seqItems(args[len(args)-1])
	if err != nil {
		return nil, err
	}
	callArgs := append(append([]interface{}{}, fixed...), tail...)
	return Apply(fn, callArgs)
}
