package logo

// MaxCallDepth bounds procedure call nesting. Recursion past this depth
// fails with ErrCallDepth instead of exhausting the host stack.
const MaxCallDepth = 1024

// procedure is a stored user definition. The body slice is shared, never
// copied: parsed statements are immutable after Parse, so every call can
// safely walk the same nodes.
type procedure struct {
	params []string
	body   []Stmt
}

// Evaluator walks parsed statement lists and turns them into an
// instruction stream. Its state persists across successive Evaluate
// calls: globals, declared procedures and (while calls are active) the
// local scope stack. One Evaluator must not be shared between
// goroutines; isolated uses each get their own instance.
type Evaluator struct {
	globals    map[string]int
	locals     []map[string]int // one frame per active procedure call
	procedures map[string]procedure
}

// NewEvaluator returns an Evaluator with empty state.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		globals:    make(map[string]int),
		procedures: make(map[string]procedure),
	}
}

// Evaluate executes program statements in order and returns the
// instructions produced. On a runtime failure it stops at the failing
// statement and returns the instructions already produced alongside the
// error; state mutated by earlier statements persists.
func (ev *Evaluator) Evaluate(program []Stmt) ([]Instruction, error) {
	var instructions []Instruction
	for _, stmt := range program {
		var err error
		instructions, err = ev.evalStatement(stmt, instructions)
		if err != nil {
			return instructions, err
		}
	}
	return instructions, nil
}

func (ev *Evaluator) evalStatement(stmt Stmt, out []Instruction) ([]Instruction, error) {
	switch s := stmt.(type) {
	case *ProcedureDecl:
		if _, exists := ev.procedures[s.Name]; exists {
			return out, &RuntimeError{Kind: ErrRedeclaredProcedure, Name: s.Name}
		}
		ev.procedures[s.Name] = procedure{params: s.Params, body: s.Body}
		return out, nil

	case *CallStmt:
		return ev.evalCall(s, out)

	case *MakeStmt:
		val, err := ev.evalExpression(s.Value)
		if err != nil {
			return out, err
		}
		// Bind in the innermost active local frame if a call is in
		// progress, otherwise globally. Rebinding silently overwrites.
		if n := len(ev.locals); n > 0 {
			ev.locals[n-1][s.Name] = val
		} else {
			ev.globals[s.Name] = val
		}
		return out, nil

	case *RepeatStmt:
		count, err := ev.evalExpression(s.Count)
		if err != nil {
			return out, err
		}
		// A non-positive count runs the body zero times. The body is
		// re-evaluated, never re-parsed.
		for i := 0; i < count; i++ {
			for _, inner := range s.Body {
				out, err = ev.evalStatement(inner, out)
				if err != nil {
					return out, err
				}
			}
		}
		return out, nil

	default:
		return out, &RuntimeError{Kind: ErrInternal, Detail: "unknown statement kind"}
	}
}

// evalCall resolves a call name against the command table first and the
// procedure table second.
func (ev *Evaluator) evalCall(call *CallStmt, out []Instruction) ([]Instruction, error) {
	if cmd, ok := LookupCommand(call.Name); ok {
		if cmd.Arity() != len(call.Args) {
			return out, &RuntimeError{
				Kind: ErrArgCount, Name: call.Name,
				Expected: cmd.Arity(), Got: len(call.Args),
			}
		}
		args := make([]int, len(call.Args))
		for i, argExpr := range call.Args {
			val, err := ev.evalExpression(argExpr)
			if err != nil {
				return out, err
			}
			args[i] = val
		}
		return append(out, Instruction{Cmd: cmd, Args: args}), nil
	}

	proc, ok := ev.procedures[call.Name]
	if !ok {
		return out, &RuntimeError{Kind: ErrProcedureNotFound, Name: call.Name}
	}
	if len(call.Args) != len(proc.params) {
		return out, &RuntimeError{
			Kind: ErrArgCount, Name: call.Name,
			Expected: len(proc.params), Got: len(call.Args),
		}
	}
	if len(ev.locals) >= MaxCallDepth {
		return out, &RuntimeError{Kind: ErrCallDepth, Name: call.Name}
	}

	// Arguments are evaluated in the caller's scope, before the new
	// frame is pushed.
	frame := make(map[string]int, len(proc.params))
	for i, argExpr := range call.Args {
		val, err := ev.evalExpression(argExpr)
		if err != nil {
			return out, err
		}
		frame[proc.params[i]] = val
	}

	ev.locals = append(ev.locals, frame)
	// The frame must not leak past the call, including on failure paths.
	defer func() { ev.locals = ev.locals[:len(ev.locals)-1] }()

	var err error
	for _, stmt := range proc.body {
		out, err = ev.evalStatement(stmt, out)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// evalExpression reduces an expression to an integer against the current
// scope stack.
func (ev *Evaluator) evalExpression(expr Expr) (int, error) {
	switch e := expr.(type) {
	case *NumberExpr:
		return e.Value, nil

	case *VariableExpr:
		// Innermost frame first, then outward, then globals.
		for i := len(ev.locals) - 1; i >= 0; i-- {
			if val, ok := ev.locals[i][e.Name]; ok {
				return val, nil
			}
		}
		if val, ok := ev.globals[e.Name]; ok {
			return val, nil
		}
		return 0, &RuntimeError{Kind: ErrVariableNotFound, Name: e.Name}

	case *ArithmeticExpr:
		return ev.evalPostfix(e.Postfix)

	case *OperatorExpr:
		// Operators only occur inside postfix sequences; reaching one
		// here is a defect in the parser, not user error.
		return 0, &RuntimeError{Kind: ErrInternal, Detail: "operator outside postfix sequence"}

	default:
		return 0, &RuntimeError{Kind: ErrInternal, Detail: "unknown expression kind"}
	}
}

// evalPostfix runs a flattened postfix sequence with an operand stack:
// operands push, each operator pops its right operand then its left and
// pushes the result. Division truncates toward zero.
func (ev *Evaluator) evalPostfix(postfix []Expr) (int, error) {
	var stack []int
	for _, expr := range postfix {
		op, isOp := expr.(*OperatorExpr)
		if !isOp {
			val, err := ev.evalExpression(expr)
			if err != nil {
				return 0, err
			}
			stack = append(stack, val)
			continue
		}

		if len(stack) < 2 {
			return 0, &RuntimeError{Kind: ErrInternal, Detail: "malformed postfix sequence"}
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var result int
		switch op.Op {
		case PLUS:
			result = left + right
		case MINUS:
			result = left - right
		case STAR:
			result = left * right
		case SLASH:
			if right == 0 {
				return 0, &RuntimeError{Kind: ErrDivisionByZero}
			}
			result = left / right
		default:
			return 0, &RuntimeError{Kind: ErrInternal, Detail: "unknown operator " + op.Op.String()}
		}
		stack = append(stack, result)
	}

	if len(stack) != 1 {
		return 0, &RuntimeError{Kind: ErrInternal, Detail: "malformed postfix sequence"}
	}
	return stack[0], nil
}
