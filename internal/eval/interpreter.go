/*
File   : golox/internal/eval/interpreter.go
Package: eval

Package eval implements the tree-walking evaluator: the runtime value
model, the environment chain, first-class functions with closures, and
single-inheritance classes with bound methods (spec §4.4). It is
grounded on the teacher's eval.Evaluator (eval/evaluator.go) — the
struct holding interpreter state, an io.Writer for `print` output, and
a CreateError-style helper for position-stamped diagnostics — adapted
to consume a resolver scope-depth table instead of looking names up
purely by walking the live scope chain.
*/
package eval

import (
	"io"
	"os"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/environment"
	"github.com/loxlang/golox/internal/natives"
	"github.com/loxlang/golox/internal/values"
)

// Interpreter holds the state for evaluating a resolved Lox program:
// the global environment, the current environment, the resolver's
// scope-depth side table, and the output writer `print` writes to
// (mirroring the teacher's Evaluator.Writer / SetWriter).
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	locals  map[ast.Expr]int
	Writer  io.Writer
}

// New creates an Interpreter with a fresh global environment seeded
// with the native function table.
func New(locals map[ast.Expr]int) *Interpreter {
	globals := environment.New(nil)
	natives.Register(globals)
	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  locals,
		Writer:  os.Stdout,
	}
}

// SetWriter redirects `print` output, used by tests to capture stdout.
func (in *Interpreter) SetWriter(w io.Writer) {
	in.Writer = w
}

// EvaluateExpr evaluates a single bare expression, used by the REPL's
// expression-fallback mode (spec §6) to echo a value with no enclosing
// statement.
func (in *Interpreter) EvaluateExpr(expr ast.Expr) (values.Value, error) {
	return in.evaluate(expr)
}

// Locals exposes the interpreter's scope-depth side table so a driver
// that resolves additional code against the same running session (the
// REPL) can merge newly-recorded depths into it.
func (in *Interpreter) Locals() map[ast.Expr]int {
	return in.locals
}

// Interpret executes a whole program's statements in order, stopping
// at the first runtime error (spec §7: "halt execution immediately").
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			if rs, ok := err.(*returnSignal); ok {
				_ = rs // a bare top-level `return` is rejected by the resolver;
				return nil
			}
			return err
		}
	}
	return nil
}

// returnSignal is the distinguished control-flow value `return`
// unwinds with (spec §4.4 / §9): implemented as a Go error so it
// threads through the same return channel as execute()/evaluate(),
// but it is caught exactly at function-call boundaries and must never
// be mistaken for a loxerror.RuntimeError.
type returnSignal struct {
	value values.Value
}

func (r *returnSignal) Error() string { return "return" }
