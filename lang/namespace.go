package lang

// Env is the lookup interface shared by Namespace and Closure (spec.md
// §4.H's "current environment"): resolve an unqualified symbol to the Var
// it is bound to, walking outward if necessary.
type Env interface {
	FindInternedVar(sym *Symbol) *Var
	Intern(sym *Symbol) (*Var, error)
}

// Namespace owns a process-wide symbol→var mapping plus an alias table
// (spec.md §3). Namespaces are never destroyed once created.
type Namespace struct {
	name     *Symbol
	mappings map[*Symbol]interface{} // *Var, or a raw value installed via Reference
	aliases  map[*Symbol]*Namespace
}

// Name returns the namespace's (unqualified) name symbol.
func (ns *Namespace) Name() *Symbol { return ns.name }

func (ns *Namespace) String() string { return ns.name.String() }

var namespaceRegistry = map[*Symbol]*Namespace{}

// newNamespace allocates a namespace seeded with the built-in environment
// (spec.md §3: "every newly created namespace is seeded with the built-in
// mappings of §6").
func newNamespace(name *Symbol) *Namespace {
	ns := &Namespace{
		name:     name,
		mappings: make(map[*Symbol]interface{}),
		aliases:  make(map[*Symbol]*Namespace),
	}
	installBuiltins(ns)
	return ns
}

// FindNamespace looks up an existing namespace by name, or nil.
func FindNamespace(name *Symbol) *Namespace {
	return namespaceRegistry[name]
}

// FindOrCreateNamespace is namespace creation's idempotent constructor
// (spec.md §4.A-E: "Namespace creation is idempotent through
// find_or_create").
func FindOrCreateNamespace(name *Symbol) *Namespace {
	if ns, ok := namespaceRegistry[name]; ok {
		return ns
	}
	ns := newNamespace(name)
	namespaceRegistry[name] = ns
	return ns
}

// ResetNamespaceRegistry clears every namespace. Exists for test isolation
// only: production use never destroys namespaces (spec.md §3).
func ResetNamespaceRegistry() {
	namespaceRegistry = map[*Symbol]*Namespace{}
}

// Intern interns sym as a Var owned by ns, creating it on first intern and
// returning the existing Var on later interns (spec.md §3's intern
// idempotence invariant). A namespace-qualified symbol cannot be interned
// (spec.md §3).
func (ns *Namespace) Intern(sym *Symbol) (*Var, error) {
	if sym.ns != "" {
		return nil, syntaxErrorf("can't intern namespace-qualified symbol: %s", sym)
	}
	if existing, ok := ns.mappings[sym]; ok {
		if v, ok := existing.(*Var); ok && v.ns == ns {
			return v, nil
		}
	}
	v := newVar(sym, ns)
	ns.mappings[sym] = v
	return v, nil
}

// FindInternedVar returns the Var sym is bound to in ns, or nil.
func (ns *Namespace) FindInternedVar(sym *Symbol) *Var {
	if v, ok := ns.mappings[sym].(*Var); ok {
		return v
	}
	return nil
}

// Reference installs an arbitrary value (not necessarily a Var) under sym,
// the way original_source/mage/namespace.py's Namespace.reference does —
// used to shadow a symbol with a raw value without creating a full Var.
func (ns *Namespace) Reference(sym *Symbol, val interface{}) (interface{}, error) {
	if sym.ns != "" {
		return nil, syntaxErrorf("can't intern namespace-qualified symbol: %s", sym)
	}
	ns.mappings[sym] = val
	return val, nil
}

// Refer installs an existing Var from another namespace under a local
// alias symbol (Clojure's :refer), per original_source/mage/namespace.py's
// Namespace.refer.
func (ns *Namespace) Refer(sym *Symbol, v *Var) *Var {
	ns.mappings[sym] = v
	return v
}

// LookupAlias resolves a namespace alias installed by AddAlias.
func (ns *Namespace) LookupAlias(alias *Symbol) *Namespace {
	return ns.aliases[alias]
}

// AddAlias installs alias -> target, first-write-wins (matching
// original_source/mage/namespace.py's add_alias, which only sets an alias
// when it isn't already present).
func (ns *Namespace) AddAlias(alias *Symbol, target *Namespace) {
	if _, ok := ns.aliases[alias]; !ok {
		ns.aliases[alias] = target
	}
}

// namespaceFor resolves the namespace a qualified symbol's "ns" part
// refers to: first through in's alias table, then the global registry
// (spec.md §4.H).
func namespaceFor(sym *Symbol, in *Namespace) *Namespace {
	nsSym := InternSymbol(sym.ns)
	if aliased := in.LookupAlias(nsSym); aliased != nil {
		return aliased
	}
	return FindNamespace(nsSym)
}
