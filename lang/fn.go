package lang

import (
	"fmt"
	"sync/atomic"
)

// NativeFn is a built-in callable (spec.md §3).
type NativeFn func(args []interface{}) (interface{}, error)

// Fn is a user-defined function value, capturing its defining environment
// at creation (spec.md §3).
type Fn struct {
	params []*Symbol
	body   interface{}
	outer  Env
}

// NewFn builds an Fn closing over outer.
func NewFn(params []*Symbol, body interface{}, outer Env) *Fn {
	return &Fn{params: params, body: body, outer: outer}
}

func (f *Fn) Params() []*Symbol  { return f.params }
func (f *Fn) Body() interface{}  { return f.body }
func (f *Fn) Outer() Env         { return f.outer }
func (f *Fn) Arity() int         { return len(f.params) }

var fnScopeCounter int64

// newFnScope allocates the synthetic Closure a call to fn creates,
// matching original_source/mage/fn.py's Fn.__call__ ("fn__" + str(id(self))
// used as the scope's synthetic name). Go has no id(), so an atomic
// counter stands in — see DESIGN.md.
func newFnScope(f *Fn) *Closure {
	n := atomic.AddInt64(&fnScopeCounter, 1)
	name := InternSymbol(fmt.Sprintf("fn__%d", n))
	return NewClosure(name, f.outer)
}

// bindArgs interns each parameter in closure and binds it to the
// corresponding argument, raising ArityError on mismatch (spec.md §4.H).
func bindArgs(f *Fn, closure *Closure, args []interface{}) error {
	if len(args) != len(f.params) {
		return arityErrorf("fn takes exactly %d arguments (%d given)", len(f.params), len(args))
	}
	for i, param := range f.params {
		v, err := closure.Intern(param)
		if err != nil {
			return err
		}
		v.SetRoot(args[i])
	}
	return nil
}

// Apply calls fn (a *Fn or NativeFn) with args and runs it to completion.
// Used by built-ins (apply, map, filter, reduce) that need a generic call
// rather than the evaluator's tail-position-reusing dispatch loop.
func Apply(fn interface{}, args []interface{}) (interface{}, error) {
	switch callee := fn.(type) {
	case *Fn:
		closure := newFnScope(callee)
		if err := bindArgs(callee, closure, args); err != nil {
			return nil, err
		}
		return Eval(callee.body, closure)
	case NativeFn:
		return callee(args)
	default:
		return nil, typeErrorf("%s is not callable", PrintString(fn))
	}
}
