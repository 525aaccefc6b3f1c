package lang

import (
	"math/big"
	"strings"
)

// Char is a single Unicode code point (spec.md §3's Char).
type Char rune

// List is an ordered sequence value (spec.md §3). Lists are used both as
// program text (forms) and as a first-class collection value.
type List struct {
	items []interface{}
}

// NewList builds a List from its elements.
func NewList(items ...interface{}) *List {
	cp := make([]interface{}, len(items))
	copy(cp, items)
	return &List{items: cp}
}

func (l *List) Len() int                { return len(l.items) }
func (l *List) At(i int) interface{}    { return l.items[i] }
func (l *List) Items() []interface{}    { return l.items }
func (l *List) IsEmpty() bool           { return len(l.items) == 0 }
func (l *List) Rest() *List             { return NewList(l.items[1:]...) }
func (l *List) Cons(x interface{}) *List {
	items := make([]interface{}, 0, len(l.items)+1)
	items = append(items, x)
	items = append(items, l.items...)
	return &List{items: items}
}

// Vector is an indexed sequence value (spec.md §3).
type Vector struct {
	items []interface{}
}

func NewVector(items ...interface{}) *Vector {
	cp := make([]interface{}, len(items))
	copy(cp, items)
	return &Vector{items: cp}
}

func (v *Vector) Len() int             { return len(v.items) }
func (v *Vector) At(i int) interface{} { return v.items[i] }
func (v *Vector) Items() []interface{} { return v.items }

// Set is an unordered collection of distinct values (spec.md §3). Kept as
// a linear-scan association since Value (any) is not Go-comparable once it
// contains nested Lists/Vectors/Maps; spec.md §9 explicitly accepts eager,
// non-performance-optimized collection semantics.
type Set struct {
	items []interface{}
}

func NewSet(items ...interface{}) *Set {
	s := &Set{}
	for _, it := range items {
		s.add(it)
	}
	return s
}

func (s *Set) add(x interface{}) {
	for _, it := range s.items {
		if valueEqual(it, x) {
			return
		}
	}
	s.items = append(s.items, x)
}

func (s *Set) Len() int             { return len(s.items) }
func (s *Set) Items() []interface{} { return s.items }
func (s *Set) Contains(x interface{}) bool {
	for _, it := range s.items {
		if valueEqual(it, x) {
			return true
		}
	}
	return false
}

// Map is a value-to-value association (spec.md §3), kept as parallel
// key/value slices for the same reason Set is linear-scan.
type Map struct {
	keys []interface{}
	vals []interface{}
}

// NewMap builds a Map from alternating key, value, key, value... arguments
// (the shape produced by the reader's map/hash-map literal reader).
func NewMap(kvs ...interface{}) *Map {
	m := &Map{}
	for i := 0; i+1 < len(kvs); i += 2 {
		m.Assoc(kvs[i], kvs[i+1])
	}
	return m
}

// Assoc binds key to val in place and returns the receiver (spec.md's Map
// is not required to be persistent). The assoc and dissoc built-ins copy a
// Map before changing it, so a Map value seen by user code is never
// modified.
func (m *Map) Assoc(key, val interface{}) *Map {
	for i, k := range m.keys {
		if valueEqual(k, key) {
			m.vals[i] = val
			return m
		}
	}
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
	return m
}

func (m *Map) Dissoc(key interface{}) *Map {
	for i, k := range m.keys {
		if valueEqual(k, key) {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			m.vals = append(m.vals[:i], m.vals[i+1:]...)
			return m
		}
	}
	return m
}

func (m *Map) Get(key interface{}) (interface{}, bool) {
	for i, k := range m.keys {
		if valueEqual(k, key) {
			return m.vals[i], true
		}
	}
	return nil, false
}

func (m *Map) Len() int            { return len(m.keys) }
func (m *Map) Keys() []interface{} { return m.keys }
func (m *Map) Vals() []interface{} { return m.vals }

// IsTruthy implements spec.md §4.H's truthiness rule: only false and nil
// are false, everything else (0, "", empty collections included) is true.
func IsTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// valueEqual is structural equality over the full value model, used by the
// `=`/`not=` built-ins and by Set/Map membership.
func valueEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case int64:
		switch bv := b.(type) {
		case int64:
			return av == bv
		case float64:
			return float64(av) == bv
		}
		return false
	case float64:
		switch bv := b.(type) {
		case int64:
			return av == float64(bv)
		case float64:
			return av == bv
		}
		return false
	case *big.Rat:
		bv, ok := b.(*big.Rat)
		return ok && av.Cmp(bv) == 0
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case Char:
		bv, ok := b.(Char)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av.Equal(bv)
	case *Keyword:
		bv, ok := b.(*Keyword)
		return ok && av.Equal(bv)
	case *List:
		bv, ok := b.(*List)
		return ok && sliceEqual(av.items, bv.items)
	case *Vector:
		bv, ok := b.(*Vector)
		return ok && sliceEqual(av.items, bv.items)
	case *Set:
		bv, ok := b.(*Set)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, it := range av.items {
			if !bv.Contains(it) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for i, k := range av.keys {
			bval, found := bv.Get(k)
			if !found || !valueEqual(av.vals[i], bval) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func sliceEqual(a, b []interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !valueEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// PrintString renders a value the way the REPL prints it (spec.md §8's
// reader/printer round-trip property for literal atoms).
func PrintString(v interface{}) string {
	switch tv := v.(type) {
	case nil:
		return "nil"
	case bool:
		if tv {
			return "true"
		}
		return "false"
	case int64:
		return bigIntString(tv)
	case float64:
		return floatString(tv)
	case *big.Rat:
		return tv.RatString()
	case Char:
		return charString(rune(tv))
	case string:
		return "\"" + escapeString(string(tv)) + "\""
	case *Symbol:
		return tv.String()
	case *Keyword:
		return tv.String()
	case *List:
		parts := make([]string, len(tv.items))
		for i, it := range tv.items {
			parts[i] = PrintString(it)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *Vector:
		parts := make([]string, len(tv.items))
		for i, it := range tv.items {
			parts[i] = PrintString(it)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case *Set:
		parts := make([]string, len(tv.items))
		for i, it := range tv.items {
			parts[i] = PrintString(it)
		}
		return "#{" + strings.Join(parts, " ") + "}"
	case *Map:
		parts := make([]string, 0, tv.Len())
		for i, k := range tv.keys {
			parts = append(parts, PrintString(k)+" "+PrintString(tv.vals[i]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Fn:
		return "#<fn>"
	case *Var:
		return tv.String()
	case NativeFn:
		return "#<native-fn>"
	default:
		return "#<unknown>"
	}
}
