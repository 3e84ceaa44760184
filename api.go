// Package schemer is the public entry point: construct an environment,
// parse source text, and evaluate it. cmd/repl builds the CLI on top of
// this package; see api.go for the wiring, grounded in the teacher's
// api.go (NewEvaluator/ParseString/EvaluateString convenience layer).
package schemer

import (
	"strings"

	"github.com/ccdavis/schemer/core"
	"github.com/ccdavis/schemer/engine"
)

// Interpreter bundles a root Environment with an Evaluator configured to
// print `output` results through Print.
type Interpreter struct {
	Env   *engine.Environment
	Eval  *engine.Evaluator
	Print func(string)
}

// NewInterpreter builds a fresh root environment and evaluator. Print
// defaults to a no-op; callers that want `output` to reach a terminal
// should set it (the REPL and file driver both do).
func NewInterpreter() *Interpreter {
	ev := engine.NewEvaluator()
	interp := &Interpreter{
		Env:   engine.NewEnvironment(),
		Eval:  ev,
		Print: func(string) {},
	}
	ev.Output = func(s string) { interp.Print(s) }
	return interp
}

// ParseString parses a single expression from src.
func ParseString(src string) (core.SExpr, error) {
	return engine.ParseString(src)
}

// EvalString parses and evaluates a single expression against the
// interpreter's environment.
func (i *Interpreter) EvalString(src string) (core.SExpr, error) {
	expr, err := ParseString(src)
	if err != nil {
		return nil, err
	}
	return i.Eval.Eval(expr, i.Env)
}

// RunProgram wraps src in an implicit outer pair of parentheses, parses it
// as a single sequence of top-level expressions, evaluates each in turn
// against the interpreter's environment, and returns their printed forms
// joined by newlines -- the semantics original_source names
// interpret_top_level.
func (i *Interpreter) RunProgram(src string) (string, error) {
	program, err := engine.ParseProgram(src)
	if err != nil {
		return "", err
	}
	var results []string
	for _, expr := range program.ToSlice() {
		v, err := i.Eval.Eval(expr, i.Env)
		if err != nil {
			return "", err
		}
		results = append(results, v.String())
	}
	return strings.Join(results, "\n"), nil
}
