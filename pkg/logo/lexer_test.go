package logo

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
		wantErr  bool
	}{
		{
			name:  "Empty",
			input: "",
			expected: []Token{
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Command With Number",
			input: "forward 10",
			expected: []Token{
				{Type: IDENT, Lexeme: "forward", Line: 1},
				{Type: NUMBER, Lexeme: "10", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Keywords And Identifiers",
			input: "repeat make to end forward my_square",
			expected: []Token{
				{Type: REPEAT, Lexeme: "repeat", Line: 1},
				{Type: MAKE, Lexeme: "make", Line: 1},
				{Type: TO, Lexeme: "to", Line: 1},
				{Type: END, Lexeme: "end", Line: 1},
				{Type: IDENT, Lexeme: "forward", Line: 1},
				{Type: IDENT, Lexeme: "my_square", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Negative Number",
			input: "setxy -60 60",
			expected: []Token{
				{Type: IDENT, Lexeme: "setxy", Line: 1},
				{Type: NUMBER, Lexeme: "-60", Line: 1},
				{Type: NUMBER, Lexeme: "60", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Minus Is An Operator When Not Followed By Digit",
			input: "10 - 2",
			expected: []Token{
				{Type: NUMBER, Lexeme: "10", Line: 1},
				{Type: MINUS, Lexeme: "-", Line: 1},
				{Type: NUMBER, Lexeme: "2", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Quoted Word Strips Marker",
			input: `make "size 50`,
			expected: []Token{
				{Type: MAKE, Lexeme: "make", Line: 1},
				{Type: WORD, Lexeme: "size", Line: 1},
				{Type: NUMBER, Lexeme: "50", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Variable Strips Marker",
			input: "forward :size",
			expected: []Token{
				{Type: IDENT, Lexeme: "forward", Line: 1},
				{Type: VARIABLE, Lexeme: "size", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Operators And Delimiters",
			input: "+ - * / [ ] ( )",
			expected: []Token{
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: MINUS, Lexeme: "-", Line: 1},
				{Type: STAR, Lexeme: "*", Line: 1},
				{Type: SLASH, Lexeme: "/", Line: 1},
				{Type: LBRACKET, Lexeme: "[", Line: 1},
				{Type: RBRACKET, Lexeme: "]", Line: 1},
				{Type: LPAREN, Lexeme: "(", Line: 1},
				{Type: RPAREN, Lexeme: ")", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Lines Tracked Across Newlines",
			input: "to sq\nforward 10\nend",
			expected: []Token{
				{Type: TO, Lexeme: "to", Line: 1},
				{Type: IDENT, Lexeme: "sq", Line: 1},
				{Type: IDENT, Lexeme: "forward", Line: 2},
				{Type: NUMBER, Lexeme: "10", Line: 2},
				{Type: END, Lexeme: "end", Line: 3},
				{Type: EOF, Lexeme: "", Line: 3},
			},
		},
		{
			name:  "Whitespace Only",
			input: " \t\n ",
			expected: []Token{
				{Type: EOF, Lexeme: "", Line: 2},
			},
		},
		{
			name:    "Unrecognized Character",
			input:   "forward @10",
			wantErr: true,
		},
		{
			name:    "Quote Marker Without Name",
			input:   `make " 5`,
			wantErr: true,
		},
		{
			name:    "Variable Marker Without Name",
			input:   "forward :",
			wantErr: true,
		},
		{
			name:    "Unrecognized Character Mid Input Stops Immediately",
			input:   "fd 10 ; fd 20",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Lex(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lex(%q) failed: %v", tt.input, err)
			}
			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Lex(%q)\n got  %v\n want %v", tt.input, tokens, tt.expected)
			}
		})
	}
}

func TestLexErrorNamesOffendingCharacter(t *testing.T) {
	_, err := Lex("forward\n&")
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("got %T (%v), want *LexError", err, err)
	}
	if lexErr.Char != '&' || lexErr.Line != 2 {
		t.Errorf("got char %q line %d, want '&' line 2", lexErr.Char, lexErr.Line)
	}
}

func TestLexErrorOnBareMarkerNamesTheMarker(t *testing.T) {
	_, err := Lex("forward\n:")
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("got %T (%v), want *LexError", err, err)
	}
	if lexErr.Char != ':' || lexErr.Line != 2 {
		t.Errorf("got char %q line %d, want ':' line 2", lexErr.Char, lexErr.Line)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok      Token
		expected string
	}{
		{Token{Type: PLUS, Lexeme: "+"}, "+"},
		{Token{Type: REPEAT, Lexeme: "repeat"}, "repeat"},
		{Token{Type: NUMBER, Lexeme: "-60"}, "-60"},
		{Token{Type: WORD, Lexeme: "size"}, `"size`},
		{Token{Type: VARIABLE, Lexeme: "size"}, ":size"},
		{Token{Type: IDENT, Lexeme: "forward"}, "forward"},
		{Token{Type: LBRACKET, Lexeme: "["}, "["},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.expected {
			t.Errorf("Token{%v}.String() = %q, want %q", tt.tok.Type, got, tt.expected)
		}
	}
}
