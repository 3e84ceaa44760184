package engine

import (
	"fmt"

	"github.com/ccdavis/schemer/core"
)

// applyLogicalOperator dispatches the comparison and boolean-connective
// operators. Comparisons evaluate operands one pair at a time and stop at
// the first failing pair, evaluating no further operand expressions,
// grounded in original_source's recursive eval_greater/eval_less/eval_equal;
// or/and evaluate lazily and short-circuit the same way, grounded in
// original_source's eval_or/eval_and.
func (ev *Evaluator) applyLogicalOperator(op core.LogicalOperator, rest core.List, env *Environment) (core.SExpr, error) {
	switch op {
	case core.LogOr:
		return ev.evalOr(rest, env)
	case core.LogAnd:
		return ev.evalAnd(rest, env)
	case core.LogLess, core.LogGreater, core.LogEqual, core.LogLessEqual, core.LogGreaterEqual:
		return ev.evalChainCompare(op, rest, env)
	}

	args, err := ev.evalArgs(rest, env)
	if err != nil {
		return nil, err
	}

	switch op {
	case core.LogNot:
		if len(args) != 1 {
			return nil, fmt.Errorf("operator %s requires exactly one operand", op.String())
		}
		truth, err := core.AsBool(args[0])
		if err != nil {
			return nil, err
		}
		return core.NewBool(!truth), nil
	case core.LogXor:
		if len(args) < 2 {
			return nil, fmt.Errorf("operator %s requires at least two operands", op.String())
		}
		trueCount := 0
		for _, a := range args {
			truth, err := core.AsBool(a)
			if err != nil {
				return nil, err
			}
			if truth {
				trueCount++
			}
		}
		return core.NewBool(trueCount == 1), nil
	default:
		return nil, fmt.Errorf("operator %s not implemented", op.String())
	}
}

func (ev *Evaluator) evalOr(rest core.List, env *Environment) (core.SExpr, error) {
	elems := rest.ToSlice()
	if len(elems) < 2 {
		return nil, fmt.Errorf("operator or requires at least two operands")
	}
	for _, e := range elems {
		v, err := ev.Eval(e, env)
		if err != nil {
			return nil, err
		}
		truth, err := core.AsBool(v)
		if err != nil {
			return nil, err
		}
		if truth {
			return core.NewBool(true), nil
		}
	}
	return core.NewBool(false), nil
}

func (ev *Evaluator) evalAnd(rest core.List, env *Environment) (core.SExpr, error) {
	elems := rest.ToSlice()
	if len(elems) < 2 {
		return nil, fmt.Errorf("operator and requires at least two operands")
	}
	for _, e := range elems {
		v, err := ev.Eval(e, env)
		if err != nil {
			return nil, err
		}
		truth, err := core.AsBool(v)
		if err != nil {
			return nil, err
		}
		if !truth {
			return core.NewBool(false), nil
		}
	}
	return core.NewBool(true), nil
}

// evalChainCompare evaluates rest's elements one at a time, comparing each
// newly-evaluated operand against the previous one. It stops -- without
// evaluating any remaining operand expressions -- as soon as a pairwise
// comparison fails, so a later operand with side effects never runs once
// the chain has already gone false.
func (ev *Evaluator) evalChainCompare(op core.LogicalOperator, rest core.List, env *Environment) (core.SExpr, error) {
	elems := rest.ToSlice()
	if len(elems) < 2 {
		return nil, fmt.Errorf("operator %s requires at least two operands", op.String())
	}

	prevVal, err := ev.Eval(elems[0], env)
	if err != nil {
		return nil, err
	}
	prev, err := core.AsNumber(prevVal)
	if err != nil {
		return nil, err
	}

	for _, e := range elems[1:] {
		curVal, err := ev.Eval(e, env)
		if err != nil {
			return nil, err
		}
		cur, err := core.AsNumber(curVal)
		if err != nil {
			return nil, err
		}

		var ok bool
		switch op {
		case core.LogLess:
			ok = prev < cur
		case core.LogGreater:
			ok = prev > cur
		case core.LogEqual:
			ok = prev == cur
		case core.LogLessEqual:
			ok = prev <= cur
		case core.LogGreaterEqual:
			ok = prev >= cur
		}
		if !ok {
			return core.NewBool(false), nil
		}
		prev = cur
	}
	return core.NewBool(true), nil
}
