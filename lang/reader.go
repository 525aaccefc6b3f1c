package lang

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Reader turns a character stream into S-expression values (spec.md §4.F).
// It tracks (line, column) for error reporting and supports one rune of
// pushback, backed directly by bufio.Reader's own pushback buffer.
type Reader struct {
	src    *bufio.Reader
	line   int
	column int
}

// NewReader wraps r for reading forms. Line numbering starts at 1.
func NewReader(r io.Reader) *Reader {
	return &Reader{src: bufio.NewReader(r), line: 1, column: 0}
}

func (rd *Reader) next() (rune, error) {
	ch, _, err := rd.src.ReadRune()
	if err != nil {
		return 0, err
	}
	if ch == '\n' {
		rd.line++
		rd.column = 0
	} else {
		rd.column++
	}
	return ch, nil
}

func (rd *Reader) unread(ch rune) {
	rd.src.UnreadRune()
	if ch == '\n' {
		rd.line--
	} else {
		rd.column--
	}
}

func isWhitespace(ch rune) bool {
	switch ch {
	case ' ', ',', '\n', '\t', '\r', '\b', '\f':
		return true
	}
	return false
}

func (rd *Reader) isMacroChar(ch rune) bool {
	_, ok := readerMacros[ch]
	return ok
}

func (rd *Reader) skipWhitespace() {
	for {
		ch, err := rd.next()
		if err != nil {
			return
		}
		if !isWhitespace(ch) {
			rd.unread(ch)
			return
		}
	}
}

// Read reads and returns the next top-level form. It returns io.EOF (not a
// *LangError) when the stream is exhausted between forms, so callers (the
// REPL) can tell "no more input" from a genuine read failure.
func (rd *Reader) Read() (interface{}, error) {
	rd.skipWhitespace()
	ch, err := rd.next()
	if err != nil {
		return nil, io.EOF
	}

	if unicode.IsDigit(ch) {
		return rd.readNumber(ch)
	}

	if ch == '+' || ch == '-' {
		nxt, nerr := rd.next()
		if nerr == nil {
			if unicode.IsDigit(nxt) {
				rd.unread(nxt)
				return rd.readNumber(ch)
			}
			rd.unread(nxt)
		}
	}

	if handler, ok := readerMacros[ch]; ok {
		return handler(rd, ch)
	}

	token := rd.readToken(ch)
	return interpretToken(token, rd.line, rd.column)
}

// readToken accumulates characters starting with initch until whitespace,
// a registered reader-macro character, or EOF (spec.md §4.F).
func (rd *Reader) readToken(initch rune) string {
	var b strings.Builder
	b.WriteRune(initch)
	for {
		ch, err := rd.next()
		if err != nil {
			return b.String()
		}
		if isWhitespace(ch) || rd.isMacroChar(ch) {
			rd.unread(ch)
			return b.String()
		}
		b.WriteRune(ch)
	}
}

func (rd *Reader) readNumber(initch rune) (interface{}, error) {
	token := rd.readToken(initch)
	v, ok := matchNumber(token)
	if !ok {
		return nil, readerErrorf(rd.line, rd.column, "Invalid number: %s", token)
	}
	return v, nil
}

// readDelimitedList reads forms until closeCh, used by the list/vector/map
// reader macros (spec.md §4.F).
func (rd *Reader) readDelimitedList(closeCh rune) ([]interface{}, error) {
	startLine := rd.line
	var items []interface{}
	for {
		rd.skipWhitespace()
		ch, err := rd.next()
		if err != nil {
			return nil, readerErrorf(rd.line, rd.column, "EOF while reading, starting at line %d", startLine)
		}
		if ch == closeCh {
			return items, nil
		}
		rd.unread(ch)

		form, err := rd.Read()
		if err != nil {
			if err == io.EOF {
				return nil, readerErrorf(rd.line, rd.column, "EOF while reading, starting at line %d", startLine)
			}
			return nil, err
		}
		items = append(items, form)
	}
}

// interpretToken classifies a bare token as nil/true/false, a keyword (a
// leading ":" — spec.md §8's worked examples require self-evaluating
// `:a`/`:b` tokens though §4.F's literal grammar does not spell the rule
// out; see DESIGN.md), or a Symbol (spec.md §3's validation rules).
func interpretToken(s string, line, column int) (interface{}, error) {
	switch s {
	case "nil":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	if strings.HasPrefix(s, ":") && s != ":" {
		sym := ParseSymbol(s[1:])
		if sym == nil {
			return nil, readerErrorf(line, column, "Invalid token: %s", s)
		}
		return InternKeyword(sym), nil
	}

	sym := ParseSymbol(s)
	if sym == nil {
		return nil, readerErrorf(line, column, "Invalid token: %s", s)
	}
	return sym, nil
}
