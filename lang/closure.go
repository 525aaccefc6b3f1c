package lang

// Closure is a lexical scope frame (spec.md §3): a local symbol→var map
// chained to an outer Namespace or Closure. Lookup consults the local map
// first, then delegates outward; it never writes through to outer.
type Closure struct {
	name     *Symbol
	outer    Env
	mappings map[*Symbol]*Var
}

// NewClosure allocates an empty frame chained to outer.
func NewClosure(name *Symbol, outer Env) *Closure {
	return &Closure{name: name, outer: outer, mappings: make(map[*Symbol]*Var)}
}

// Intern creates a fresh Var for sym on first intern into this frame, and
// returns the existing one on later interns (spec.md §4.A-E). It never
// errors: unlike Namespace.Intern, a Closure accepts any symbol.
func (c *Closure) Intern(sym *Symbol) (*Var, error) {
	if v, ok := c.mappings[sym]; ok {
		return v, nil
	}
	v := newVar(sym, nil)
	c.mappings[sym] = v
	return v, nil
}

// FindInternedVar looks the symbol up locally, then walks outward.
func (c *Closure) FindInternedVar(sym *Symbol) *Var {
	if v, ok := c.mappings[sym]; ok {
		return v
	}
	if c.outer != nil {
		return c.outer.FindInternedVar(sym)
	}
	return nil
}
