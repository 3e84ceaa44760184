package engine

import (
	"fmt"

	"github.com/ccdavis/schemer/core"
)

// applyCoreFunc dispatches the built-in (non-special-form) functions named
// in SPEC_FULL.md §4.2.5: type predicates, conversions, and list
// primitives, all of which receive already-evaluated arguments.
func (ev *Evaluator) applyCoreFunc(f core.CoreFunc, args []core.SExpr, env *Environment) (core.SExpr, error) {
	switch f {
	case core.CoreNumberQ:
		return predicate(args, f, func(e core.SExpr) bool {
			c, ok := e.(core.Cell)
			return ok && c.IsNumber()
		})
	case core.CoreListQ:
		return predicate(args, f, func(e core.SExpr) bool {
			_, ok := e.(core.List)
			return ok
		})
	case core.CoreNullQ:
		return predicate(args, f, func(e core.SExpr) bool {
			if _, ok := e.(core.Null); ok {
				return true
			}
			if l, ok := e.(core.List); ok {
				return l.IsEmpty()
			}
			return false
		})
	case core.CoreBooleanQ:
		return predicate(args, f, func(e core.SExpr) bool {
			c, ok := e.(core.Cell)
			return ok && c.Kind == core.KBool
		})
	case core.CoreStringQ:
		return predicate(args, f, func(e core.SExpr) bool {
			c, ok := e.(core.Cell)
			return ok && c.Kind == core.KStr
		})
	case core.CoreCharQ:
		return predicate(args, f, func(core.SExpr) bool { return false })
	case core.CoreExactQ:
		return predicate(args, f, func(e core.SExpr) bool {
			c, ok := e.(core.Cell)
			return ok && c.Kind == core.KInt
		})
	case core.CoreNumberToString:
		if len(args) != 1 {
			return nil, arityErr(f, 1, len(args))
		}
		if c, ok := args[0].(core.Cell); !ok || !c.IsNumber() {
			return nil, fmt.Errorf("%s requires a numeric argument", f.String())
		}
		return core.NewStr(args[0].String()), nil
	case core.CoreCons:
		if len(args) != 2 {
			return nil, arityErr(f, 2, len(args))
		}
		return core.Construct(args[0], args[1]), nil
	case core.CoreList:
		return core.FromSlice(args), nil
	case core.CoreCar, core.CoreFirst:
		if len(args) != 1 {
			return nil, arityErr(f, 1, len(args))
		}
		list, ok := args[0].(core.List)
		if !ok || list.IsEmpty() {
			return nil, fmt.Errorf("%s: argument is not a non-empty list", f.String())
		}
		return list.First(), nil
	case core.CoreCdr, core.CoreRest:
		if len(args) != 1 {
			return nil, arityErr(f, 1, len(args))
		}
		list, ok := args[0].(core.List)
		if !ok || list.IsEmpty() {
			return nil, fmt.Errorf("%s: argument is not a non-empty list", f.String())
		}
		return list.Rest(), nil
	case core.CoreAppend:
		if len(args) != 2 {
			return nil, arityErr(f, 2, len(args))
		}
		a, ok1 := args[0].(core.List)
		b, ok2 := args[1].(core.List)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("append requires two lists")
		}
		return core.Append(a, b), nil
	case core.CoreMap:
		return ev.coreMap(args, env)
	case core.CoreFilter:
		return ev.coreFilter(args, env)
	case core.CoreCount:
		if len(args) != 1 {
			return nil, arityErr(f, 1, len(args))
		}
		list, ok := args[0].(core.List)
		if !ok {
			return nil, fmt.Errorf("count requires a list")
		}
		return core.NewInt(int64(list.Len())), nil
	default:
		return nil, fmt.Errorf("core function %s not implemented", f.String())
	}
}

func predicate(args []core.SExpr, f core.CoreFunc, test func(core.SExpr) bool) (core.SExpr, error) {
	if len(args) != 1 {
		return nil, arityErr(f, 1, len(args))
	}
	return core.NewBool(test(args[0])), nil
}

func arityErr(f core.CoreFunc, want, got int) error {
	return fmt.Errorf("%s expects %d argument(s), got %d", f.String(), want, got)
}

func (ev *Evaluator) callLambda(lambda *core.Lambda, args []core.SExpr, env *Environment) (core.SExpr, error) {
	if len(args) != len(lambda.Params) {
		return nil, fmt.Errorf("lambda expects %d argument(s), got %d", len(lambda.Params), len(args))
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

func asLambda(e core.SExpr) (*core.Lambda, error) {
	c, ok := e.(core.Cell)
	if !ok || c.Kind != core.KLambda {
		return nil, fmt.Errorf("expected a lambda, got %s", e.String())
	}
	return c.Value.(*core.Lambda), nil
}

func (ev *Evaluator) coreMap(args []core.SExpr, env *Environment) (core.SExpr, error) {
	if len(args) != 2 {
		return nil, arityErr(core.CoreMap, 2, len(args))
	}
	lambda, err := asLambda(args[0])
	if err != nil {
		return nil, err
	}
	list, ok := args[1].(core.List)
	if !ok {
		return nil, fmt.Errorf("map requires a list")
	}
	out := make([]core.SExpr, 0, list.Len())
	for _, e := range list.ToSlice() {
		v, err := ev.callLambda(lambda, []core.SExpr{e}, env)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return core.FromSlice(out), nil
}

func (ev *Evaluator) coreFilter(args []core.SExpr, env *Environment) (core.SExpr, error) {
	if len(args) != 2 {
		return nil, arityErr(core.CoreFilter, 2, len(args))
	}
	lambda, err := asLambda(args[0])
	if err != nil {
		return nil, err
	}
	list, ok := args[1].(core.List)
	if !ok {
		return nil, fmt.Errorf("filter requires a list")
	}
	out := make([]core.SExpr, 0, list.Len())
	for _, e := range list.ToSlice() {
		v, err := ev.callLambda(lambda, []core.SExpr{e}, env)
		if err != nil {
			return nil, err
		}
		truth, err := core.AsBool(v)
		if err != nil {
			return nil, err
		}
		if truth {
			out = append(out, e)
		}
	}
	return core.FromSlice(out), nil
}
