package logo

import "strconv"

// Parser consumes the flat token slice produced by the Lexer and builds
// an ordered statement list.
//
// Grammar:
//
//	program    = statement* EOF
//	statement  = repeat | make | procDecl | call
//	repeat     = "repeat" expression "[" statement* "]"
//	make       = "make" WORD expression
//	procDecl   = "to" IDENT VARIABLE* statement* "end"
//	call       = IDENT expression*          ; args taken greedily
//	expression = NUMBER | VARIABLE | arith
//	arith      = infix over NUMBER/VARIABLE with + - * / and ( ),
//	             flattened to postfix by shunting-yard
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser wraps a token list for parsing. The list is expected to end
// with the EOF sentinel that Lex appends.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns
// a ParseError naming the acceptable type.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type == EOF {
		return tok, &ParseError{EOF: true}
	}
	if tok.Type != tt {
		return tok, &ParseError{Tok: tok, Wanted: []TokenType{tt}}
	}
	return tok, nil
}

// Parse builds the statement list for a whole program fragment.
func Parse(tokens []Token) ([]Stmt, error) {
	p := NewParser(tokens)
	var program []Stmt
	for p.peek().Type != EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}
	return program, nil
}

// parseStatement dispatches on the leading token of a statement.
func (p *Parser) parseStatement() (Stmt, error) {
	tok := p.advance()
	switch tok.Type {
	case REPEAT:
		return p.parseRepeat()
	case MAKE:
		return p.parseMake()
	case TO:
		return p.parseProcedureDecl()
	case IDENT:
		return p.parseCall(tok.Lexeme)
	case EOF:
		return nil, &ParseError{EOF: true}
	default:
		return nil, &ParseError{Tok: tok, Wanted: []TokenType{REPEAT, MAKE, TO, IDENT}}
	}
}

// parseRepeat parses  repeat <expr> [ <statements> ] . An unclosed body
// is an end-of-input failure, not a silent success.
func (p *Parser) parseRepeat() (Stmt, error) {
	count, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LBRACKET); err != nil {
		return nil, err
	}

	var body []Stmt
	for {
		switch p.peek().Type {
		case RBRACKET:
			p.advance()
			return &RepeatStmt{Count: count, Body: body}, nil
		case EOF:
			return nil, &ParseError{EOF: true}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
}

// parseMake parses  make "<name> <expr> .
func (p *Parser) parseMake() (Stmt, error) {
	name, err := p.expect(WORD)
	if err != nil {
		return nil, err
	}
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &MakeStmt{Name: name.Lexeme, Value: val}, nil
}

// parseProcedureDecl parses  to <name> <params...> <statements> end .
// Parameters are consumed greedily while the next token is a variable.
// Redeclaration is not checked here; that is an evaluation-time concern.
func (p *Parser) parseProcedureDecl() (Stmt, error) {
	name, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}

	var params []string
	for p.peek().Type == VARIABLE {
		params = append(params, p.advance().Lexeme)
	}

	var body []Stmt
	for {
		switch p.peek().Type {
		case END:
			p.advance()
			return &ProcedureDecl{Name: name.Lexeme, Params: params, Body: body}, nil
		case EOF:
			return nil, &ParseError{EOF: true}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
}

// parseCall parses a bare identifier invocation. Arguments are consumed
// greedily while the next token could start an expression, so that
// forward-referenced and recursive procedures parse without arity
// knowledge.
func (p *Parser) parseCall(name string) (Stmt, error) {
	var args []Expr
	for {
		switch p.peek().Type {
		case NUMBER, VARIABLE, LPAREN:
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		default:
			return &CallStmt{Name: name, Args: args}, nil
		}
	}
}

// parseNumber converts a NUMBER token's lexeme to a NumberExpr.
func parseNumber(tok Token) (Expr, error) {
	n, err := strconv.Atoi(tok.Lexeme)
	if err != nil {
		return nil, &ParseError{Tok: tok, BadNumber: tok.Lexeme}
	}
	return &NumberExpr{Value: n}, nil
}

// parseExpression parses a single value-producing expression. A lone
// number or variable is returned directly; if an operator follows, the
// parse switches into the shunting-yard path seeded with that first
// value. A leading parenthesis always enters the shunting-yard path.
func (p *Parser) parseExpression() (Expr, error) {
	tok := p.advance()

	var first Expr
	switch tok.Type {
	case LPAREN:
		// Rewind so the shunting-yard loop sees the parenthesis itself.
		p.pos--
		return p.parseArithmetic(nil)
	case NUMBER:
		n, err := parseNumber(tok)
		if err != nil {
			return nil, err
		}
		first = n
	case VARIABLE:
		first = &VariableExpr{Name: tok.Lexeme}
	case EOF:
		return nil, &ParseError{EOF: true}
	default:
		return nil, &ParseError{Tok: tok, Wanted: []TokenType{NUMBER, VARIABLE, LPAREN}}
	}

	if p.peek().Type.IsOperator() {
		return p.parseArithmetic(first)
	}
	return first, nil
}

// parseArithmetic implements the shunting-yard algorithm: it consumes
// tokens while they can be part of an arithmetic expression and flattens
// them into a postfix sequence. Operands go straight to the output; an
// operator first pops pending operators of greater-or-equal precedence;
// a left parenthesis is pushed as a sentinel that a right parenthesis
// pops back to. Ties resolve left-to-right via the stack ordering.
func (p *Parser) parseArithmetic(first Expr) (Expr, error) {
	var opStack []Token
	var output []Expr
	if first != nil {
		output = append(output, first)
	}

loop:
	for {
		tok := p.peek()
		switch {
		case tok.Type == NUMBER:
			p.advance()
			n, err := parseNumber(tok)
			if err != nil {
				return nil, err
			}
			output = append(output, n)

		case tok.Type == VARIABLE:
			p.advance()
			output = append(output, &VariableExpr{Name: tok.Lexeme})

		case tok.Type.IsOperator():
			p.advance()
			for len(opStack) > 0 {
				top := opStack[len(opStack)-1]
				if !top.Type.IsOperator() || tok.Type.Precedence() > top.Type.Precedence() {
					break
				}
				opStack = opStack[:len(opStack)-1]
				output = append(output, &OperatorExpr{Op: top.Type})
			}
			opStack = append(opStack, tok)

		case tok.Type == LPAREN:
			p.advance()
			opStack = append(opStack, tok)

		case tok.Type == RPAREN:
			p.advance()
			for {
				if len(opStack) == 0 {
					return nil, &ParseError{Tok: tok, Unbalanced: true}
				}
				top := opStack[len(opStack)-1]
				opStack = opStack[:len(opStack)-1]
				if top.Type == LPAREN {
					break
				}
				output = append(output, &OperatorExpr{Op: top.Type})
			}

		default:
			break loop
		}
	}

	// Drain remaining operators; a leftover open parenthesis means the
	// expression never closed. Only operators and LPAREN sentinels are
	// ever pushed, so nothing else can surface here.
	for len(opStack) > 0 {
		top := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		if top.Type == LPAREN {
			return nil, &ParseError{Tok: top, Unbalanced: true}
		}
		output = append(output, &OperatorExpr{Op: top.Type})
	}

	return &ArithmeticExpr{Postfix: output}, nil
}
