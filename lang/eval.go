package lang

// Eval walks an already-expanded form against env, resolving symbols and
// applying functions (spec.md §4.H). It rebinds its own (form, env) and
// loops rather than recursing for do, if, and direct Fn calls, so that
// those three shapes reuse this dispatch frame instead of growing the host
// call stack (spec.md §9's tail-position design note).
func Eval(form interface{}, env Env) (interface{}, error) {
	for {
		switch f := form.(type) {
		case *Symbol:
			v, err := resolveSymbol(f, env)
			if err != nil {
				return nil, err
			}
			return v.Deref(), nil

		case *List:
			if f.IsEmpty() {
				return f, nil
			}

			if head, ok := f.At(0).(*Symbol); ok {
				switch head {
				case symDef:
					return evalDef(f, env)

				case symDo:
					items := f.Items()
					if len(items) == 1 {
						return nil, nil
					}
					for _, sub := range items[1 : len(items)-1] {
						if _, err := Eval(sub, env); err != nil {
							return nil, err
						}
					}
					form = items[len(items)-1]
					continue

				case symIf:
					next, err := evalIfBranch(f, env)
					if err != nil {
						return nil, err
					}
					form = next
					continue

				case symQuote:
					if f.Len() != 2 {
						return nil, syntaxErrorf("quote takes exactly one form")
					}
					return f.At(1), nil

				case symFn:
					if f.Len() != 3 {
						return nil, syntaxErrorf("malformed fn")
					}
					params, ok := f.At(1).(*Vector)
					if !ok {
						return nil, syntaxErrorf("Parameter declaration should be a vector")
					}
					syms, err := symbolsFromVector(params)
					if err != nil {
						return nil, err
					}
					return NewFn(syms, f.At(2), env), nil
				}
			}

			// Generic application: evaluate every sub-form, then apply.
			items := f.Items()
			funcVal, err := Eval(items[0], env)
			if err != nil {
				return nil, err
			}
			args := make([]interface{}, len(items)-1)
			for i, a := range items[1:] {
				av, err := Eval(a, env)
				if err != nil {
					return nil, err
				}
				args[i] = av
			}

			switch callee := funcVal.(type) {
			case *Fn:
				closure := newFnScope(callee)
				if err := bindArgs(callee, closure, args); err != nil {
					return nil, err
				}
				form, env = callee.body, Env(closure)
				continue
			case NativeFn:
				return callee(args)
			default:
				return nil, typeErrorf("%s is not a function", PrintString(funcVal))
			}

		default:
			// Self-evaluating: numbers, strings, chars, bools, vectors,
			// maps, sets, keywords, Fns, Vars, nil.
			return form, nil
		}
	}
}

func evalDef(f *List, env Env) (interface{}, error) {
	if f.Len() != 3 {
		return nil, syntaxErrorf("def requires exactly a symbol and a value")
	}
	sym, ok := f.At(1).(*Symbol)
	if !ok {
		return nil, syntaxErrorf("First argument to def must be a Symbol")
	}
	v, err := env.Intern(sym)
	if err != nil {
		return nil, err
	}
	val, err := Eval(f.At(2), env)
	if err != nil {
		return nil, err
	}
	v.SetRoot(val)
	return v, nil
}

// evalIfBranch evaluates the question and returns the (not-yet-evaluated)
// branch Eval's trampoline should continue with.
func evalIfBranch(f *List, env Env) (interface{}, error) {
	items := f.Items()
	switch len(items) {
	case 3:
		q, err := Eval(items[1], env)
		if err != nil {
			return nil, err
		}
		if IsTruthy(q) {
			return items[2], nil
		}
		return nil, nil
	case 4:
		q, err := Eval(items[1], env)
		if err != nil {
			return nil, err
		}
		if IsTruthy(q) {
			return items[2], nil
		}
		return items[3], nil
	default:
		return nil, syntaxErrorf("Wrong number of forms given to if")
	}
}

func symbolsFromVector(v *Vector) ([]*Symbol, error) {
	syms := make([]*Symbol, v.Len())
	for i, item := range v.Items() {
		sym, ok := item.(*Symbol)
		if !ok {
			return nil, syntaxErrorf("Unsupported binding form: %s", PrintString(item))
		}
		syms[i] = sym
	}
	return syms, nil
}

// currentNamespace walks a possibly-Closure env outward to the Namespace
// it is ultimately chained to, for resolving namespace-qualified symbols
// (spec.md §4.H).
func currentNamespace(env Env) *Namespace {
	switch e := env.(type) {
	case *Namespace:
		return e
	case *Closure:
		return currentNamespace(e.outer)
	default:
		return nil
	}
}

func resolveSymbol(sym *Symbol, env Env) (*Var, error) {
	if sym.ns != "" {
		here := currentNamespace(env)
		if here == nil {
			return nil, resolutionErrorf("Unable to resolve symbol: %s in this context", sym)
		}
		target := namespaceFor(sym, here)
		if target == nil {
			return nil, resolutionErrorf("No such namespace: %s", sym.ns)
		}
		v := target.FindInternedVar(InternSymbol(sym.name))
		if v == nil {
			return nil, resolutionErrorf("Unable to resolve symbol: %s in this context", sym)
		}
		return v, nil
	}

	v := env.FindInternedVar(sym)
	if v == nil {
		return nil, resolutionErrorf("Unable to resolve symbol: %s in this context", sym)
	}
	return v, nil
}
