package lang

import (
	"regexp"
	"strings"
)

// Symbol is an interned identifier, optionally namespace-qualified.
// Equality is structural on both fields (spec.md §3); interning through
// InternSymbol is an optimization, not a correctness requirement, since two
// Symbols built any other way still compare equal.
type Symbol struct {
	ns   string
	name string
}

// Ns returns the symbol's namespace qualifier, or "" if unqualified.
func (s *Symbol) Ns() string { return s.ns }

// Name returns the symbol's bare name.
func (s *Symbol) Name() string { return s.name }

// Equal reports structural equality, per spec.md §3.
func (s *Symbol) Equal(other *Symbol) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.ns == other.ns && s.name == other.name
}

func (s *Symbol) String() string {
	if s.ns == "" {
		return s.name
	}
	return s.ns + "/" + s.name
}

var symbolTable = map[string]*Symbol{}

func internKey(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + "/" + name
}

// InternSymbol returns the canonical *Symbol for (ns, name). Called with a
// single argument it accepts "name", "ns/name", and the special lone
// symbol "/".
func InternSymbol(parts ...string) *Symbol {
	var ns, name string
	switch len(parts) {
	case 1:
		s := parts[0]
		if s == "/" {
			ns, name = "", "/"
		} else if idx := strings.Index(s, "/"); idx >= 0 {
			ns, name = s[:idx], s[idx+1:]
		} else {
			ns, name = "", s
		}
	case 2:
		ns, name = parts[0], parts[1]
	default:
		panic("InternSymbol takes 1 or 2 arguments")
	}

	key := internKey(ns, name)
	if sym, ok := symbolTable[key]; ok {
		return sym
	}
	sym := &Symbol{ns: ns, name: name}
	symbolTable[key] = sym
	return sym
}

// symbolPattern recognizes "name", "ns/name", and the lone symbol "/".
// Transliterated from original_source/mage/reader.py's symbol_pattern,
// widened to anchor the whole token (Go's regexp.FindString does not
// anchor by default the way Python's re.match does).
var symbolPattern = regexp.MustCompile(`^(?:([^/\d][^/]*)/)?(/|[^\d/][^/]*)$`)

// ParseSymbol validates and interns a bare token as a Symbol, applying the
// invalidation rules from spec.md §3: a qualifier ending in ":", a name
// ending in ":", or any "::" after position 0 reject the token. Returns
// nil if s does not look like a symbol at all.
func ParseSymbol(s string) *Symbol {
	m := symbolPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	ns, name := m[1], m[2]

	if ns != "" && strings.HasSuffix(ns, ":") {
		return nil
	}
	if strings.HasSuffix(name, ":") {
		return nil
	}
	if len(s) > 1 && strings.Contains(s[1:], "::") {
		return nil
	}

	return InternSymbol(ns, name)
}
