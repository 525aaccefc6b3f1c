package lang

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Numeric literal grammar, transliterated from spec.md §4.F /
// original_source/mage/reader.py's int_pattern/float_pattern/ratio_pattern.
var (
	radixPattern   = regexp.MustCompile(`^([+-]?)([1-9][0-9]?)[rR]([0-9A-Za-z]+)$`)
	decimalPattern = regexp.MustCompile(`^([+-]?)(0|[1-9][0-9]*)$`)
	octalPattern   = regexp.MustCompile(`^([+-]?)0([0-7]+)$`)
	hexPattern     = regexp.MustCompile(`^([+-]?)0[xX]([0-9A-Fa-f]+)$`)
	floatPattern   = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]*([eE][+-]?[0-9]+)?|[eE][+-]?[0-9]+)$`)
	ratioPattern   = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*)/(0|[1-9][0-9]*)$`)
)

// matchNumber implements the ordered dispatch spec.md §4.F specifies:
// radix, decimal, octal, hex, then float, then ratio. Returns (value, true)
// on success.
func matchNumber(s string) (interface{}, bool) {
	if m := radixPattern.FindStringSubmatch(s); m != nil {
		sign, base, digits := m[1], m[2], m[3]
		b, err := strconv.Atoi(base)
		if err != nil || b < 2 || b > 36 {
			return nil, false
		}
		n, err := strconv.ParseInt(sign+digits, b, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	}
	if m := decimalPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseInt(m[1]+m[2], 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	}
	if m := octalPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseInt(m[1]+m[2], 8, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	}
	if m := hexPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseInt(m[1]+m[2], 16, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	}
	if floatPattern.MatchString(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	}
	if ratioPattern.MatchString(s) {
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return nil, false
		}
		if r.Denom().Sign() == 0 {
			return nil, false
		}
		return r, true
	}
	return nil, false
}

func bigIntString(n int64) string {
	return strconv.FormatInt(n, 10)
}

func floatString(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}
	return s
}

var namedChars = map[rune]string{
	'\n': "newline",
	' ':  "space",
	'\t': "tab",
	'\b': "backspace",
	'\f': "formfeed",
	'\r': "return",
}

// charString renders a Char the way the reader's \name syntax expects it,
// satisfying spec.md §8's reader/printer round-trip property.
func charString(r rune) string {
	if name, ok := namedChars[r]; ok {
		return "\\" + name
	}
	return "\\" + string(r)
}

var stringEscapes = map[rune]string{
	'\t': `\t`,
	'\r': `\r`,
	'\n': `\n`,
	'\b': `\b`,
	'\f': `\f`,
	'\\': `\\`,
	'"':  `\"`,
}

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		if esc, ok := stringEscapes[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
