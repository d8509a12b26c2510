package logo

import (
	"fmt"
	"strings"
)

// Each pipeline stage has its own error type; a failure in any stage is
// terminal for the fragment being processed.

// LexError reports a character that matched no token definition.
type LexError struct {
	Char rune
	Line int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d: unrecognized token %q", e.Line, e.Char)
}

// ParseError reports a failure while building the statement list.
type ParseError struct {
	// Tok is the offending token; meaningless when EOF is set.
	Tok Token
	// Wanted lists the token types that would have been accepted, if known.
	Wanted []TokenType
	// EOF marks end-of-input reached while more tokens were expected.
	EOF bool
	// Unbalanced marks a parenthesis mismatch in an arithmetic expression.
	Unbalanced bool
	// BadNumber holds a numeric literal that failed integer conversion.
	BadNumber string
}

func (e *ParseError) Error() string {
	switch {
	case e.EOF:
		return "unexpected end of input"
	case e.Unbalanced:
		return fmt.Sprintf("line %d: unbalanced parentheses", e.Tok.Line)
	case e.BadNumber != "":
		return fmt.Sprintf("line %d: invalid number %q", e.Tok.Line, e.BadNumber)
	case len(e.Wanted) > 0:
		names := make([]string, len(e.Wanted))
		for i, tt := range e.Wanted {
			names[i] = tt.String()
		}
		return fmt.Sprintf("line %d: unexpected token %s, expected one of: %s",
			e.Tok.Line, e.Tok, strings.Join(names, ", "))
	default:
		return fmt.Sprintf("line %d: unexpected token %s", e.Tok.Line, e.Tok)
	}
}

// RuntimeErrorKind enumerates the evaluation failure categories.
type RuntimeErrorKind int

const (
	// ErrRedeclaredProcedure is a "to" declaration for a name that already
	// has a procedure.
	ErrRedeclaredProcedure RuntimeErrorKind = iota
	// ErrProcedureNotFound is a call to a name that is neither a built-in
	// command nor a declared procedure.
	ErrProcedureNotFound
	// ErrVariableNotFound is a :name reference absent from every local
	// frame and the globals.
	ErrVariableNotFound
	// ErrArgCount is a call whose argument count differs from the
	// command's arity or the procedure's parameter count.
	ErrArgCount
	// ErrDivisionByZero is a division whose right operand evaluated to 0.
	ErrDivisionByZero
	// ErrCallDepth is a procedure call nested deeper than MaxCallDepth.
	ErrCallDepth
	// ErrTypeMismatch is a value of the wrong kind where a number is
	// required.
	ErrTypeMismatch
	// ErrInternal is an invariant violation (e.g. a malformed postfix
	// sequence): an implementation defect, not user error.
	ErrInternal
)

// RuntimeError reports a failure during evaluation. Name carries the
// offending procedure/variable name where relevant; Expected/Got carry
// argument counts for ErrArgCount.
type RuntimeError struct {
	Kind     RuntimeErrorKind
	Name     string
	Expected int
	Got      int
	Detail   string
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case ErrRedeclaredProcedure:
		return fmt.Sprintf("procedure %q is already declared", e.Name)
	case ErrProcedureNotFound:
		return fmt.Sprintf("no command or procedure named %q", e.Name)
	case ErrVariableNotFound:
		return fmt.Sprintf("variable :%s is not defined", e.Name)
	case ErrArgCount:
		return fmt.Sprintf("%s expects %d arguments, got %d", e.Name, e.Expected, e.Got)
	case ErrDivisionByZero:
		return "division by zero"
	case ErrCallDepth:
		return fmt.Sprintf("call depth limit (%d) exceeded in %q", MaxCallDepth, e.Name)
	case ErrTypeMismatch:
		return fmt.Sprintf("expected a number, got %s", e.Detail)
	default:
		return fmt.Sprintf("internal error: %s", e.Detail)
	}
}
