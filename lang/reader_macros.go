package lang

import (
	"io"
	"strconv"
	"strings"
)

// readerMacros is the reader-macro dispatch table, restricted to exactly
// the characters spec.md §4.F names: none of tlamr-glojure's larger
// Clojure-style table (deref, meta, syntax-quote, dispatch, arg-reader)
// is in scope here.
var readerMacros = map[rune]func(rd *Reader, ch rune) (interface{}, error){
	'\\': readCharLiteral,
	'"':  readStringLiteral,
	'\'': readQuote,
	'(':  readList,
	')':  readUnmatchedDelimiter,
	'[':  readVector,
	']':  readUnmatchedDelimiter,
	'{':  readMap,
	'}':  readUnmatchedDelimiter,
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch rune) bool {
	return ch >= '0' && ch <= '7'
}

var namedCharLiterals = map[string]rune{
	"newline":   '\n',
	"space":     ' ',
	"tab":       '\t',
	"backspace": '\b',
	"formfeed":  '\f',
	"return":    '\r',
}

// readCharLiteral implements spec.md §4.F's `\` reader macro: a bare
// one-character token, a named char, \uHHHH (hex codepoint), or \oNNN
// (octal codepoint, length <= 4, value <= 0xFF).
func readCharLiteral(rd *Reader, _ rune) (interface{}, error) {
	first, err := rd.next()
	if err != nil {
		return nil, readerErrorf(rd.line, rd.column, "EOF while reading character")
	}

	next, nerr := rd.next()
	if nerr != nil || isWhitespace(next) || rd.isMacroChar(next) {
		if nerr == nil {
			rd.unread(next)
		}
		return Char(first), nil
	}
	rd.unread(next)

	token := rd.readToken(first)
	if len(token) == 1 {
		return Char(first), nil
	}
	if r, ok := namedCharLiterals[token]; ok {
		return Char(r), nil
	}

	lower := strings.ToLower(token)
	if strings.HasPrefix(lower, "u") {
		n, err := strconv.ParseInt(token[1:], 16, 32)
		if err != nil {
			return nil, readerErrorf(rd.line, rd.column, "Invalid unicode character: \\%s", token)
		}
		return Char(rune(n)), nil
	}
	if strings.HasPrefix(lower, "o") {
		digits := token[1:]
		if len(digits) > 4 {
			return nil, readerErrorf(rd.line, rd.column, "Invalid octal escape sequence length in literal string: %s", token)
		}
		n, err := strconv.ParseInt(digits, 8, 32)
		if err != nil {
			return nil, readerErrorf(rd.line, rd.column, "Invalid octal character: \\%s", token)
		}
		if n > 0xFF {
			return nil, readerErrorf(rd.line, rd.column, "Octal escape sequence in literal string must be in range [0, 377], got: (%d)", n)
		}
		return Char(rune(n)), nil
	}

	return nil, readerErrorf(rd.line, rd.column, "Unsupported character: \\%s", token)
}

// readStringLiteral implements spec.md §4.F's `"` reader macro.
func readStringLiteral(rd *Reader, _ rune) (interface{}, error) {
	var b strings.Builder
	for {
		ch, err := rd.next()
		if err != nil {
			return nil, readerErrorf(rd.line, rd.column, "EOF while reading string")
		}
		if ch == '"' {
			return b.String(), nil
		}
		if ch != '\\' {
			b.WriteRune(ch)
			continue
		}

		esc, eerr := rd.next()
		if eerr != nil {
			return nil, readerErrorf(rd.line, rd.column, "EOF while reading string")
		}
		switch esc {
		case 't':
			b.WriteRune('\t')
		case 'r':
			b.WriteRune('\r')
		case 'n':
			b.WriteRune('\n')
		case 'b':
			b.WriteRune('\b')
		case 'f':
			b.WriteRune('\f')
		case '\\':
			b.WriteRune('\\')
		case '"':
			b.WriteRune('"')
		case 'u':
			digit, derr := rd.next()
			if derr != nil || !isHexDigit(digit) {
				return nil, readerErrorf(rd.line, rd.column, "Hexidecimal digit expected after \\u in literal string")
			}
			digits := []rune{digit}
			for len(digits) < 4 {
				d, derr := rd.next()
				if derr != nil || !isHexDigit(d) {
					if derr == nil {
						rd.unread(d)
					}
					break
				}
				digits = append(digits, d)
			}
			n, _ := strconv.ParseInt(string(digits), 16, 32)
			b.WriteRune(rune(n))
		default:
			if !isOctalDigit(esc) {
				return nil, readerErrorf(rd.line, rd.column, "Unsupported escape character in literal string: %c", esc)
			}
			digits := []rune{esc}
			for len(digits) < 3 {
				d, derr := rd.next()
				if derr != nil || !isOctalDigit(d) {
					if derr == nil {
						rd.unread(d)
					}
					break
				}
				digits = append(digits, d)
			}
			n, _ := strconv.ParseInt(string(digits), 8, 32)
			if n > 0xFF {
				return nil, readerErrorf(rd.line, rd.column, "Octal escape sequence in literal string must be in range [0, 377], got: (%d)", n)
			}
			b.WriteRune(rune(n))
		}
	}
}

// readQuote reads the next whole form (recursively, not just a raw token —
// a deliberate deviation from original_source/mage/reader.py's quote_reader,
// which pastes the raw token string into `(quote token)` unevaluated and so
// could never quote a list or return a true Symbol; see DESIGN.md) and
// returns it wrapped in (quote form).
func readQuote(rd *Reader, _ rune) (interface{}, error) {
	form, err := rd.Read()
	if err != nil {
		if err == io.EOF {
			return nil, readerErrorf(rd.line, rd.column, "EOF while reading")
		}
		return nil, err
	}
	return NewList(symQuote, form), nil
}

func readList(rd *Reader, _ rune) (interface{}, error) {
	items, err := rd.readDelimitedList(')')
	if err != nil {
		return nil, err
	}
	return NewList(items...), nil
}

func readVector(rd *Reader, _ rune) (interface{}, error) {
	items, err := rd.readDelimitedList(']')
	if err != nil {
		return nil, err
	}
	return NewVector(items...), nil
}

// readMap implements spec.md §4.F's disambiguation: `{...}` is always a
// Map (pairs of adjacent elements); Set has no literal syntax here.
func readMap(rd *Reader, _ rune) (interface{}, error) {
	items, err := rd.readDelimitedList('}')
	if err != nil {
		return nil, err
	}
	if len(items)%2 != 0 {
		return nil, readerErrorf(rd.line, rd.column, "Map literal must contain an even number of forms")
	}
	return NewMap(items...), nil
}

func readUnmatchedDelimiter(rd *Reader, ch rune) (interface{}, error) {
	return nil, readerErrorf(rd.line, rd.column, "Unmatched delimiter: %c", ch)
}
