package engine

import (
	"fmt"

	"github.com/ccdavis/schemer/core"
)

// applyOperator folds args left-to-right under the arithmetic operator op,
// grounded in original_source's add/subtract/multiply/divide recursive
// helpers and their Int/Flt promotion rule: the fold stays Int unless any
// operand is Flt, in which case the whole fold promotes to Flt.
func (ev *Evaluator) applyOperator(op core.NumericOperator, args []core.SExpr) (core.SExpr, error) {
	if op == core.OpModulo {
		return nil, fmt.Errorf("operator %s not implemented", op.String())
	}

	if op == core.OpDivide && len(args) == 1 {
		return reciprocal(args[0])
	}

	if len(args) < 2 {
		return nil, fmt.Errorf("operator %s requires at least two operands", op.String())
	}

	for _, a := range args {
		if c, ok := a.(core.Cell); !ok || !c.IsNumber() {
			return nil, fmt.Errorf("operator %s requires numeric operands, got %s", op.String(), a.String())
		}
	}

	anyFloat := false
	for _, a := range args {
		if a.(core.Cell).Kind == core.KFlt {
			anyFloat = true
			break
		}
	}

	if anyFloat {
		acc := mustFloat(args[0])
		for _, a := range args[1:] {
			acc = foldFloat(op, acc, mustFloat(a))
		}
		return core.NewFlt(acc), nil
	}

	acc := args[0].(core.Cell).Value.(int64)
	for _, a := range args[1:] {
		v := a.(core.Cell).Value.(int64)
		result, err := foldInt(op, acc, v)
		if err != nil {
			return nil, err
		}
		acc = result
	}
	return core.NewInt(acc), nil
}

func reciprocal(a core.SExpr) (core.SExpr, error) {
	c, ok := a.(core.Cell)
	if !ok || !c.IsNumber() {
		return nil, fmt.Errorf("operator / requires numeric operands, got %s", a.String())
	}
	if c.Kind == core.KFlt {
		v := c.Value.(float64)
		if v == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return core.NewFlt(1.0 / v), nil
	}
	v := c.Value.(int64)
	if v == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	return core.NewInt(1 / v), nil
}

func mustFloat(e core.SExpr) float64 {
	c := e.(core.Cell)
	if c.Kind == core.KFlt {
		return c.Value.(float64)
	}
	return float64(c.Value.(int64))
}

func foldFloat(op core.NumericOperator, a, b float64) float64 {
	switch op {
	case core.OpAdd:
		return a + b
	case core.OpSubtract:
		return a - b
	case core.OpMultiply:
		return a * b
	case core.OpDivide:
		return a / b
	default:
		return 0
	}
}

func foldInt(op core.NumericOperator, a, b int64) (int64, error) {
	switch op {
	case core.OpAdd:
		return a + b, nil
	case core.OpSubtract:
		return a - b, nil
	case core.OpMultiply:
		return a * b, nil
	case core.OpDivide:
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("operator %s not implemented", op.String())
	}
}
