package lang

// WatchFn is called after a Var's root is rebound, in the style of
// tlamr-glojure's ARef.NotifyWatches (go/lang/ARef.go), adapted from a
// generic IRef onto the one mutable cell spec.md actually defines: a Var's
// root. Nothing in this repository installs a watch by default.
type WatchFn func(key interface{}, v *Var, oldVal, newVal interface{})

// Var is a named mutable cell (spec.md §3). Its identity is stable; only
// its root may be rebound, by def or by parameter binding.
type Var struct {
	sym     *Symbol
	root    interface{}
	ns      *Namespace
	bound   bool
	watches map[interface{}]WatchFn
}

// newVar constructs a var with no root bound yet (interning it does not
// imply a value, matching original_source/mage/var.py's Var.__init__
// defaulting root to None and this implementation's mapping of "no value
// yet" to bound=false rather than conflating it with Nil).
func newVar(sym *Symbol, ns *Namespace) *Var {
	return &Var{sym: sym, ns: ns}
}

// Sym returns the symbol this var is interned under.
func (v *Var) Sym() *Symbol { return v.sym }

// Ns returns the var's home namespace, or nil for a closure-local var.
func (v *Var) Ns() *Namespace { return v.ns }

// Deref returns the var's current root value.
func (v *Var) Deref() interface{} { return v.root }

// IsBound reports whether SetRoot has ever been called.
func (v *Var) IsBound() bool { return v.bound }

// SetRoot rebinds the var's root, notifying any watches.
func (v *Var) SetRoot(val interface{}) {
	old := v.root
	v.root = val
	v.bound = true
	for key, fn := range v.watches {
		fn(key, v, old, val)
	}
}

// AddWatch installs a watch callback, returning the var for chaining.
func (v *Var) AddWatch(key interface{}, fn WatchFn) *Var {
	if v.watches == nil {
		v.watches = make(map[interface{}]WatchFn)
	}
	v.watches[key] = fn
	return v
}

// RemoveWatch removes a previously installed watch.
func (v *Var) RemoveWatch(key interface{}) *Var {
	delete(v.watches, key)
	return v
}

func (v *Var) String() string {
	if v.ns != nil {
		return "#'" + v.ns.name.String() + "/" + v.sym.String()
	}
	return "#'" + v.sym.String()
}
