package logo

import (
	"fmt"
	"strings"
)

//  Expression nodes

// Expr is implemented by every node that produces a value. Expressions
// are pure: evaluating one never mutates interpreter state.
type Expr interface {
	exprNode()
	String() string
}

// NumberExpr is an integer constant.
//
//	forward 10
//	        ^^  NumberExpr{Value: 10}
type NumberExpr struct {
	Value int
}

func (*NumberExpr) exprNode()        {}
func (n *NumberExpr) String() string { return fmt.Sprintf("%d", n.Value) }

// VariableExpr is a read of a named variable.
//
//	forward :size
//	        ^^^^^  VariableExpr{Name: "size"}
type VariableExpr struct {
	Name string
}

func (*VariableExpr) exprNode()        {}
func (v *VariableExpr) String() string { return ":" + v.Name }

// OperatorExpr is an arithmetic operator occupying a slot in a postfix
// sequence. It only ever appears inside ArithmeticExpr.Postfix.
type OperatorExpr struct {
	Op TokenType // PLUS, MINUS, STAR or SLASH
}

func (*OperatorExpr) exprNode()        {}
func (o *OperatorExpr) String() string { return o.Op.String() }

// ArithmeticExpr holds an already-flattened postfix (reverse Polish)
// sequence of operands and operators.
//
//	10 + 7 * 8 - 2  parses to  Postfix: [10 7 8 * + 2 -]
type ArithmeticExpr struct {
	Postfix []Expr
}

func (*ArithmeticExpr) exprNode() {}
func (a *ArithmeticExpr) String() string {
	parts := make([]string, len(a.Postfix))
	for i, e := range a.Postfix {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

//  Statement nodes

// Stmt is implemented by every node that produces an effect rather than
// a value.
type Stmt interface {
	stmtNode()
	String() string
}

// RepeatStmt represents  repeat count [ body ]
type RepeatStmt struct {
	Count Expr
	Body  []Stmt
}

func (*RepeatStmt) stmtNode() {}
func (r *RepeatStmt) String() string {
	return fmt.Sprintf("repeat %s %s", r.Count, stmtsString(r.Body))
}

// MakeStmt represents  make "name value
type MakeStmt struct {
	Name  string
	Value Expr
}

func (*MakeStmt) stmtNode() {}
func (m *MakeStmt) String() string {
	return fmt.Sprintf("make %q %s", m.Name, m.Value)
}

// ProcedureDecl represents  to name :param... body end
type ProcedureDecl struct {
	Name   string
	Params []string
	Body   []Stmt
}

func (*ProcedureDecl) stmtNode() {}
func (p *ProcedureDecl) String() string {
	var b strings.Builder
	b.WriteString("to " + p.Name)
	for _, param := range p.Params {
		b.WriteString(" :" + param)
	}
	b.WriteString(" " + stmtsString(p.Body) + " end")
	return b.String()
}

// CallStmt represents a bare  name arg...  invoking a built-in command
// or a user procedure. Arity is not checked at parse time.
type CallStmt struct {
	Name string
	Args []Expr
}

func (*CallStmt) stmtNode() {}
func (c *CallStmt) String() string {
	parts := []string{c.Name}
	for _, a := range c.Args {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}

func stmtsString(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, "; ") + "]"
}
