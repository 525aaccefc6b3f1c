package lang

// Keyword is a self-evaluating tag, in the Clojure tradition named by
// spec.md §1. spec.md's Value sum (§3) does not enumerate it explicitly,
// but spec.md §8's truthiness examples (`(if 0 :a :b)`) need a
// self-evaluating `:a`/`:b` token, and the teacher (tlamr-glojure) already
// carries a full Keyword/InternKeyword machinery mirroring Symbol's — see
// DESIGN.md. A Keyword wraps the Symbol with the same name, so `:foo` and
// `:ns/foo` share the validation and interning rules of §3.
type Keyword struct {
	sym *Symbol
}

func (k *Keyword) Ns() string   { return k.sym.ns }
func (k *Keyword) Name() string { return k.sym.name }

func (k *Keyword) Equal(other *Keyword) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.sym == other.sym
}

func (k *Keyword) String() string {
	return ":" + k.sym.String()
}

var keywordTable = map[*Symbol]*Keyword{}

// InternKeyword returns the canonical *Keyword for the given symbol.
func InternKeyword(sym *Symbol) *Keyword {
	if kw, ok := keywordTable[sym]; ok {
		return kw
	}
	kw := &Keyword{sym: sym}
	keywordTable[sym] = kw
	return kw
}

// ParseKeyword validates and interns ":name" or ":ns/name" (the leading
// colon already stripped by the caller) as a Keyword, applying the same
// validation rules ParseSymbol does.
func ParseKeyword(s string) *Keyword {
	sym := ParseSymbol(s)
	if sym == nil {
		return nil
	}
	return InternKeyword(sym)
}
