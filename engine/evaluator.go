package engine

import (
	"fmt"

	"github.com/ccdavis/schemer/core"
)

// Evaluator walks parsed S-expressions against an Environment. It carries a
// recursion-depth guard (grounded in the teacher's engine.EvaluationStack)
// so that runaway recursion returns a clean error instead of overflowing
// the Go stack.
type Evaluator struct {
	MaxDepth int
	depth    int
	Output   func(string)
}

// NewEvaluator builds an Evaluator with the default recursion bound and a
// no-op output sink; callers typically override Output to print to stdout.
func NewEvaluator() *Evaluator {
	return &Evaluator{MaxDepth: 4096, Output: func(string) {}}
}

// Eval dispatches on the shape of expr: a Symbol cell resolves through env;
// any other Cell evaluates to itself; a List dispatches on its head; Null
// evaluates to itself.
func (ev *Evaluator) Eval(expr core.SExpr, env *Environment) (core.SExpr, error) {
	switch e := expr.(type) {
	case core.Cell:
		if e.Kind == core.KSymbol {
			return env.Lookup(e.Value.(core.Symbol).Name)
		}
		return e, nil
	case core.List:
		return ev.evalList(e, env)
	case core.Null:
		return core.Null{}, nil
	default:
		return nil, fmt.Errorf("evaluation on this expression type not supported")
	}
}

func (ev *Evaluator) evalList(list core.List, env *Environment) (core.SExpr, error) {
	if list.IsEmpty() {
		return core.Null{}, nil
	}
	head := list.First()
	rest := list.Rest()

	if headList, ok := head.(core.List); ok {
		callee, err := ev.evalList(headList, env)
		if err != nil {
			return nil, err
		}
		lambda, err := asLambda(callee)
		if err != nil {
			return nil, err
		}
		args, err := ev.evalArgs(rest, env)
		if err != nil {
			return nil, err
		}
		return ev.callLambda(lambda, args, env)
	}

	headCell, ok := head.(core.Cell)
	if !ok {
		return nil, fmt.Errorf("evaluation on this cell type not supported")
	}

	switch headCell.Kind {
	case core.KSpecial:
		return ev.applySpecialForm(headCell.Value.(core.SpecialForm), rest, env)
	case core.KOp:
		args, err := ev.evalArgs(rest, env)
		if err != nil {
			return nil, err
		}
		return ev.applyOperator(headCell.Value.(core.NumericOperator), args)
	case core.KLogical:
		return ev.applyLogicalOperator(headCell.Value.(core.LogicalOperator), rest, env)
	case core.KCore:
		args, err := ev.evalArgs(rest, env)
		if err != nil {
			return nil, err
		}
		return ev.applyCoreFunc(headCell.Value.(core.CoreFunc), args, env)
	case core.KSymbol:
		return ev.applyFunction(headCell.Value.(core.Symbol).Name, rest, env)
	default:
		return nil, fmt.Errorf("evaluation on this cell type not supported")
	}
}

func (ev *Evaluator) evalArgs(list core.List, env *Environment) ([]core.SExpr, error) {
	args := make([]core.SExpr, 0, list.Len())
	for _, e := range list.ToSlice() {
		v, err := ev.Eval(e, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// evalEachReturnLast evaluates each expression in sequence, returning only
// the final result -- begin's semantics.
func (ev *Evaluator) evalEachReturnLast(list core.List, env *Environment) (core.SExpr, error) {
	if list.IsEmpty() {
		return core.Null{}, nil
	}
	var last core.SExpr = core.Null{}
	for _, e := range list.ToSlice() {
		v, err := ev.Eval(e, env)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

func (ev *Evaluator) pushFrame() error {
	ev.depth++
	if ev.depth > ev.MaxDepth {
		ev.depth--
		return fmt.Errorf("maximum recursion depth exceeded: %d", ev.MaxDepth)
	}
	return nil
}

func (ev *Evaluator) popFrame() {
	ev.depth--
}
