package lang

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the error taxonomy described in spec.md §7.
type Kind int

const (
	// ReaderError is a malformed token, unterminated string/char, unmatched
	// delimiter, invalid escape, or invalid number literal.
	ReaderError Kind = iota
	// SyntaxError is an expander-detected structural problem: a non-Vector
	// binding form, odd-length let bindings, a non-Symbol parameter, a
	// malformed def/defmacro/let/fn.
	SyntaxError
	// ResolutionError is an unresolvable symbol or namespace.
	ResolutionError
	// ArityError is a Fn invoked with the wrong number of arguments.
	ArityError
	// TypeError is a native callable given incompatible operands.
	TypeError
	// UserError bubbles up from a native callable or a macro body.
	UserError
)

func (k Kind) String() string {
	switch k {
	case ReaderError:
		return "ReaderError"
	case SyntaxError:
		return "SyntaxError"
	case ResolutionError:
		return "ResolutionError"
	case ArityError:
		return "ArityError"
	case TypeError:
		return "TypeError"
	case UserError:
		return "UserError"
	default:
		return "Error"
	}
}

// LangError is the error type every Mage-visible failure is reported as.
// Line and Column are only meaningful for ReaderError; they are -1
// everywhere else (set by the non-reader constructors below), since the expander and
// evaluator do not track source position per spec.md §4.G/§4.H.
type LangError struct {
	Kind   Kind
	Line   int
	Column int
	Err    error
}

func (e *LangError) Error() string {
	if e.Line >= 0 {
		return fmt.Sprintf("%s at (%d, %d): %v", e.Kind, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *LangError) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors.Cause unwrap a LangError.
func (e *LangError) Cause() error { return e.Err }

func newError(kind Kind, line, column int, err error) *LangError {
	return &LangError{Kind: kind, Line: line, Column: column, Err: err}
}

func readerErrorf(line, column int, format string, args ...interface{}) *LangError {
	return newError(ReaderError, line, column, errors.Errorf(format, args...))
}

func wrapReaderError(line, column int, err error, msg string) *LangError {
	return newError(ReaderError, line, column, errors.Wrap(err, msg))
}

func syntaxErrorf(format string, args ...interface{}) *LangError {
	return newError(SyntaxError, -1, -1, errors.Errorf(format, args...))
}

func resolutionErrorf(format string, args ...interface{}) *LangError {
	return newError(ResolutionError, -1, -1, errors.Errorf(format, args...))
}

func arityErrorf(format string, args ...interface{}) *LangError {
	return newError(ArityError, -1, -1, errors.Errorf(format, args...))
}

func typeErrorf(format string, args ...interface{}) *LangError {
	return newError(TypeError, -1, -1, errors.Errorf(format, args...))
}

// WrapUserError wraps an error returned by a native callable or raised
// from within a macro body so it surfaces through the same taxonomy.
func WrapUserError(err error) *LangError {
	if le, ok := err.(*LangError); ok {
		return le
	}
	return newError(UserError, -1, -1, err)
}
