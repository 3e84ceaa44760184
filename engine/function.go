package engine

import (
	"fmt"

	"github.com/ccdavis/schemer/core"
)

// applyFunction calls a user-defined Lambda bound to name. Arguments are
// evaluated in the caller's environment; the call body then runs in a
// fresh child frame parented to the CALLER's environment, not the
// environment active where the lambda was defined. This is a deliberate
// departure from lexical closures (see DESIGN.md): a Lambda captures no
// environment of its own, so free variables resolve dynamically through
// whatever chain is active at call time.
func (ev *Evaluator) applyFunction(name string, argExprs core.List, env *Environment) (core.SExpr, error) {
	callee, err := env.Lookup(name)
	if err != nil {
		return nil, err
	}
	cell, ok := callee.(core.Cell)
	if !ok || cell.Kind != core.KLambda {
		return nil, fmt.Errorf("%s is not a function", name)
	}
	lambda := cell.Value.(*core.Lambda)

	args, err := ev.evalArgs(argExprs, env)
	if err != nil {
		return nil, err
	}
	if len(args) != len(lambda.Params) {
		return nil, fmt.Errorf("%s expects %d argument(s), got %d", name, len(lambda.Params), len(args))
	}

	if err := ev.pushFrame(); err != nil {
		return nil, err
	}
	defer ev.popFrame()

	child := env.MakeChild()
	for i, param := range lambda.Params {
		if err := child.Define(param, args[i]); err != nil {
			return nil, err
		}
	}
	return ev.Eval(lambda.Body, child)
}
