package lang

// Special-form head symbols recognized by the expander and evaluator
// (spec.md §6).
var (
	symQuote      = InternSymbol("quote")
	symIf         = InternSymbol("if")
	symFn         = InternSymbol("fn")
	symDef        = InternSymbol("def")
	symDefmacro   = InternSymbol("defmacro")
	symLet        = InternSymbol("let")
	symDo         = InternSymbol("do")
	symSyntaxQuote = InternSymbol("`")
)

// Macro is a callable installed by defmacro: it receives the raw,
// unexpanded argument forms of a macro call and returns a replacement form
// to be expanded in turn (spec.md §4.G).
type Macro func(args []interface{}) (interface{}, error)

// MacroTable is the process-wide (but explicitly threaded, per spec.md
// §9's "Cyclic reference risk" design note) table of installed macros,
// keyed by the symbol defmacro bound them to.
type MacroTable struct {
	macros map[*Symbol]Macro
}

// NewMacroTable allocates an empty table.
func NewMacroTable() *MacroTable {
	return &MacroTable{macros: make(map[*Symbol]Macro)}
}

func (t *MacroTable) install(sym *Symbol, m Macro) {
	t.macros[sym] = m
}

// Lookup returns the macro installed under sym, if any.
func (t *MacroTable) Lookup(sym *Symbol) (Macro, bool) {
	m, ok := t.macros[sym]
	return m, ok
}

func asList(form interface{}) (*List, bool) {
	l, ok := form.(*List)
	return l, ok
}

func headSymbol(l *List) (*Symbol, bool) {
	if l.Len() == 0 {
		return nil, false
	}
	sym, ok := l.At(0).(*Symbol)
	return sym, ok
}

// Expand rewrites form per spec.md §4.G: let → nested fn applications,
// defmacro installation, user-macro expansion, and syntactic validation.
func Expand(form interface{}, ns *Namespace, macros *MacroTable) (interface{}, error) {
	l, ok := asList(form)
	if !ok {
		return form, nil
	}
	if l.IsEmpty() {
		return form, nil
	}

	head, headIsSym := headSymbol(l)
	if headIsSym {
		switch head {
		case symQuote:
			return form, nil
		case symIf:
			return expandEach(l, ns, macros)
		case symFn:
			return expandFn(l, ns, macros)
		case symDef:
			return expandDef(l, ns, macros)
		case symDefmacro:
			return expandDefmacro(l, ns, macros)
		case symLet:
			return expandLet(l, ns, macros)
		case symDo:
			return expandDo(l, ns, macros)
		case symSyntaxQuote:
			return nil, syntaxErrorf("syntax-quote is not supported")
		}
		if macro, ok := macros.Lookup(head); ok {
			expanded, err := macro(l.Items()[1:])
			if err != nil {
				return nil, err
			}
			return Expand(expanded, ns, macros)
		}
	}

	return expandEach(l, ns, macros)
}

func expandEach(l *List, ns *Namespace, macros *MacroTable) (interface{}, error) {
	out := make([]interface{}, l.Len())
	for i, f := range l.Items() {
		ef, err := Expand(f, ns, macros)
		if err != nil {
			return nil, err
		}
		out[i] = ef
	}
	return NewList(out...), nil
}

// expandFn validates and rewrites (fn PARAMS BODY...).
func expandFn(l *List, ns *Namespace, macros *MacroTable) (interface{}, error) {
	if l.Len() < 2 {
		return nil, syntaxErrorf("fn requires a parameter vector")
	}
	paramsForm := l.At(1)
	params, ok := paramsForm.(*Vector)
	if !ok {
		return nil, syntaxErrorf("Parameter declaration should be a vector")
	}
	for _, p := range params.Items() {
		if _, ok := p.(*Symbol); !ok {
			return nil, syntaxErrorf("Unsupported binding form: %s", PrintString(p))
		}
	}

	rest := l.Items()[2:]
	var body interface{}
	switch len(rest) {
	case 0:
		body = nil
	case 1:
		body = rest[0]
	default:
		body = NewList(append([]interface{}{symDo}, rest...)...)
	}

	expandedBody, err := Expand(body, ns, macros)
	if err != nil {
		return nil, err
	}
	return NewList(symFn, params, expandedBody), nil
}

// expandDef validates and rewrites (def SYMBOL VALUE).
func expandDef(l *List, ns *Namespace, macros *MacroTable) (interface{}, error) {
	if l.Len() != 3 {
		return nil, syntaxErrorf("def requires exactly a symbol and a value")
	}
	sym, ok := l.At(1).(*Symbol)
	if !ok {
		return nil, syntaxErrorf("First argument to def must be a Symbol")
	}
	val, err := Expand(l.At(2), ns, macros)
	if err != nil {
		return nil, err
	}
	return NewList(symDef, sym, val), nil
}

// expandDefmacro validates (defmacro NAME PARAMS BODY?), constructs the
// implicit (fn PARAMS BODY) the spec's worked example requires params be
// bound against (see DESIGN.md: original_source's defmacro evaluates BODY
// bare, discarding PARAMS entirely, which cannot produce the spec's
// `(defmacro unless [c b] (list 'if c nil b))` result), evaluates it now in
// ns, and installs the resulting Fn as a macro. It returns nil: defmacro
// emits no residual form.
func expandDefmacro(l *List, ns *Namespace, macros *MacroTable) (interface{}, error) {
	if l.Len() < 3 || l.Len() > 4 {
		return nil, syntaxErrorf("Bad macro form")
	}
	name, ok := l.At(1).(*Symbol)
	if !ok {
		return nil, syntaxErrorf("defmacro name must be a Symbol")
	}
	params, ok := l.At(2).(*Vector)
	if !ok {
		return nil, syntaxErrorf("Parameter declaration should be a vector")
	}
	for _, p := range params.Items() {
		if _, ok := p.(*Symbol); !ok {
			return nil, syntaxErrorf("Unsupported binding form: %s", PrintString(p))
		}
	}

	var body interface{}
	if l.Len() == 4 {
		body = l.At(3)
	}

	fnForm := NewList(symFn, params, body)
	expandedFn, err := Expand(fnForm, ns, macros)
	if err != nil {
		return nil, err
	}
	callable, err := Eval(expandedFn, ns)
	if err != nil {
		return nil, err
	}
	fn, ok := callable.(*Fn)
	if !ok {
		return nil, syntaxErrorf("defmacro body did not evaluate to a callable")
	}
	macros.install(name, func(args []interface{}) (interface{}, error) {
		return Apply(fn, args)
	})
	return nil, nil
}

// expandLet rewrites (let BINDINGS BODY?) right-to-left into nested
// immediately-invoked fns, per spec.md §4.G:
// (let [x e1 y e2] body) -> ((fn [x] ((fn [y] body) e2)) e1)
func expandLet(l *List, ns *Namespace, macros *MacroTable) (interface{}, error) {
	if l.Len() < 2 || l.Len() > 3 {
		return nil, syntaxErrorf("Bad let form")
	}
	bindingsForm := l.At(1)
	bindings, ok := bindingsForm.(*Vector)
	if !ok {
		return nil, syntaxErrorf("let requires a vector for its bindings in %s", ns)
	}
	if bindings.Len()%2 != 0 {
		return nil, syntaxErrorf("let requires an even number of forms in binding vector in %s", ns)
	}
	for i := 0; i < bindings.Len(); i += 2 {
		if _, ok := bindings.At(i).(*Symbol); !ok {
			return nil, syntaxErrorf("Unsupported binding form: %s", PrintString(bindings.At(i)))
		}
	}

	var body interface{}
	if l.Len() == 3 {
		body = l.At(2)
	}

	n := bindings.Len() / 2
	expr := body
	for i := n - 1; i >= 0; i-- {
		param := bindings.At(2 * i).(*Symbol)
		val := bindings.At(2*i + 1)
		fnForm := NewList(symFn, NewVector(param), expr)
		expr = NewList(fnForm, val)
	}

	return Expand(expr, ns, macros)
}

// expandDo expands (do F1 ... Fn); an empty do elides to nil.
func expandDo(l *List, ns *Namespace, macros *MacroTable) (interface{}, error) {
	if l.Len() == 1 {
		return nil, nil
	}
	return expandEach(l, ns, macros)
}
