package logo

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	NUMBER   // signed integer literal, e.g. 10 or -60
	WORD     // quoted word, e.g. "size (leading " stripped)
	VARIABLE // variable reference, e.g. :size (leading : stripped)
	IDENT    // bare identifier: command or procedure name

	// Keywords
	REPEAT // "repeat"
	MAKE   // "make"
	TO     // "to"
	END    // "end"

	// Paired delimiters
	LBRACKET // [
	RBRACKET // ]
	LPAREN   // (
	RPAREN   // )

	// Arithmetic operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /
)

// keywords maps source text to its keyword TokenType. An identifier whose
// lexeme matches one of these spellings is reclassified during lexing.
var keywords = map[string]TokenType{
	"repeat": REPEAT,
	"make":   MAKE,
	"to":     TO,
	"end":    END,
}

var tokenNames = [...]string{
	EOF:      "EOF",
	NUMBER:   "NUMBER",
	WORD:     "WORD",
	VARIABLE: "VARIABLE",
	IDENT:    "IDENT",
	REPEAT:   "repeat",
	MAKE:     "make",
	TO:       "to",
	END:      "end",
	LBRACKET: "[",
	RBRACKET: "]",
	LPAREN:   "(",
	RPAREN:   ")",
	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
}

// String renders the type as a short canonical label: an operator as its
// symbol, a keyword as its literal spelling.
func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsOperator reports whether the type is one of the four arithmetic
// operators.
func (tt TokenType) IsOperator() bool {
	return tt == PLUS || tt == MINUS || tt == STAR || tt == SLASH
}

// Precedence returns the binding strength of an operator token type.
// Multiplication and division bind tighter than addition and subtraction.
// Non-operators have precedence 0.
func (tt TokenType) Precedence() int {
	switch tt {
	case STAR, SLASH:
		return 2
	case PLUS, MINUS:
		return 1
	default:
		return 0
	}
}

// Token is a single lexical unit produced by the Lexer. Tokens are
// immutable and produced in source order.
type Token struct {
	Type   TokenType
	Lexeme string // literal text; markers (" and :) already stripped
	Line   int    // 1-based source line
}

// String renders the token for diagnostics: typed literals show their
// text, everything else shows its canonical label.
func (t Token) String() string {
	switch t.Type {
	case NUMBER, IDENT:
		return t.Lexeme
	case WORD:
		return `"` + t.Lexeme
	case VARIABLE:
		return ":" + t.Lexeme
	default:
		return t.Type.String()
	}
}
