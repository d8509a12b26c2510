// Package logo implements the Logo language front-end: lexing, parsing
// and evaluation of program fragments into a flat instruction stream for
// an external turtle renderer.
package logo

// Interpreter is the library's interface surface. It runs source
// fragments through the full pipeline while keeping variable and
// procedure state alive between fragments, the way an interactive shell
// needs it.
type Interpreter struct {
	evaluator *Evaluator
}

// NewInterpreter returns an Interpreter with fresh state.
func NewInterpreter() *Interpreter {
	return &Interpreter{evaluator: NewEvaluator()}
}

// Run lexes, parses and evaluates one program fragment, short-circuiting
// at the first failure in any stage. On success it returns the ordered
// instructions the fragment produced; a fragment that only declares
// variables or procedures legitimately returns an empty list. On a
// runtime failure the instructions produced before the failing statement
// are returned alongside the error, and state mutated before the failure
// is kept.
func (in *Interpreter) Run(source string) ([]Instruction, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}

	program, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	return in.evaluator.Evaluate(program)
}
