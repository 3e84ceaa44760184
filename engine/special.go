package engine

import (
	"fmt"
	"strings"

	"github.com/ccdavis/schemer/core"
)

// ExitSignal is returned as the error of the `exit` special form so the
// driver can distinguish a deliberate exit request from an evaluation
// error. Both the REPL and the file driver end the process with its Code.
type ExitSignal struct {
	Code int
}

func (e *ExitSignal) Error() string {
	return fmt.Sprintf("exit(%d)", e.Code)
}

func (ev *Evaluator) applySpecialForm(form core.SpecialForm, rest core.List, env *Environment) (core.SExpr, error) {
	switch form {
	case core.SpecDefine:
		return ev.evalDefine(rest, env)
	case core.SpecIf:
		return ev.evalIf(rest, env)
	case core.SpecSet:
		return ev.evalSet(rest, env)
	case core.SpecWhile:
		return ev.evalWhile(rest, env)
	case core.SpecBegin:
		return ev.evalEachReturnLast(rest, env)
	case core.SpecOutput:
		return ev.evalOutput(rest, env)
	case core.SpecEnv:
		return core.NewStr(env.Dump()), nil
	case core.SpecExit:
		return ev.evalExit(rest, env)
	case core.SpecLambda:
		return ev.evalLambda(rest)
	default:
		return nil, fmt.Errorf("special form %s not implemented", form.String())
	}
}

func (ev *Evaluator) evalDefine(rest core.List, env *Environment) (core.SExpr, error) {
	if rest.Len() < 2 {
		return nil, fmt.Errorf("define expression must have at least two parts")
	}
	elems := rest.ToSlice()
	target := elems[0]

	if nameCell, ok := target.(core.Cell); ok && nameCell.Kind == core.KSymbol {
		if len(elems) != 2 {
			return nil, fmt.Errorf("define expression has extra trailing expressions")
		}
		name := nameCell.Value.(core.Symbol).Name
		value, err := ev.Eval(elems[1], env)
		if err != nil {
			return nil, err
		}
		if err := env.Define(name, value); err != nil {
			return nil, err
		}
		return nameCell, nil
	}

	signature, ok := target.(core.List)
	if !ok || signature.IsEmpty() {
		return nil, fmt.Errorf("define's function name must be a symbol")
	}
	nameCell, ok := signature.First().(core.Cell)
	if !ok || nameCell.Kind != core.KSymbol {
		return nil, fmt.Errorf("define's function name must be a symbol")
	}
	if len(elems) != 2 {
		return nil, fmt.Errorf("define expression has extra trailing expressions")
	}
	var params []string
	for _, p := range signature.Rest().ToSlice() {
		pc, ok := p.(core.Cell)
		if !ok || pc.Kind != core.KSymbol {
			return nil, fmt.Errorf("lambda parameters must be symbols")
		}
		params = append(params, pc.Value.(core.Symbol).Name)
	}
	lambda := core.NewLambda(params, elems[1])
	name := nameCell.Value.(core.Symbol).Name
	if err := env.Define(name, lambda); err != nil {
		return nil, err
	}
	return nameCell, nil
}

func (ev *Evaluator) evalIf(rest core.List, env *Environment) (core.SExpr, error) {
	if rest.Len() != 3 {
		return nil, fmt.Errorf("if expression must have three parts")
	}
	clauses := rest.ToSlice()
	test, err := ev.Eval(clauses[0], env)
	if err != nil {
		return nil, err
	}
	truth, err := core.AsBool(test)
	if err != nil {
		return nil, err
	}
	if truth {
		return ev.Eval(clauses[1], env)
	}
	return ev.Eval(clauses[2], env)
}

func (ev *Evaluator) evalSet(rest core.List, env *Environment) (core.SExpr, error) {
	if rest.Len() != 2 {
		return nil, fmt.Errorf("set! expression must have two arguments")
	}
	clauses := rest.ToSlice()
	nameCell, ok := clauses[0].(core.Cell)
	if !ok || nameCell.Kind != core.KSymbol {
		return nil, fmt.Errorf("set! expression must have two arguments")
	}
	name := nameCell.Value.(core.Symbol).Name
	value, err := ev.Eval(clauses[1], env)
	if err != nil {
		return nil, err
	}
	idx, err := env.Assign(name, value)
	if err != nil {
		return nil, err
	}
	return core.NewInt(int64(idx)), nil
}

func (ev *Evaluator) evalWhile(rest core.List, env *Environment) (core.SExpr, error) {
	if rest.Len() != 2 {
		return nil, fmt.Errorf("while expression must have a test and a body")
	}
	clauses := rest.ToSlice()
	test, body := clauses[0], clauses[1]

	var result core.SExpr = core.NewBool(false)
	for {
		testVal, err := ev.Eval(test, env)
		if err != nil {
			return nil, err
		}
		truth, err := core.AsBool(testVal)
		if err != nil {
			return nil, err
		}
		if !truth {
			return result, nil
		}
		result, err = ev.Eval(body, env)
		if err != nil {
			return nil, err
		}
	}
}

func (ev *Evaluator) evalOutput(rest core.List, env *Environment) (core.SExpr, error) {
	args, err := ev.evalArgs(rest, env)
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	joined := strings.Join(parts, " ")
	ev.Output(joined)
	return core.NewStr(joined), nil
}

// evalLambda builds an anonymous Lambda value from `(lambda (params...) body)`,
// the expression form used where a function value is needed directly (map,
// filter) rather than bound to a name via define.
func (ev *Evaluator) evalLambda(rest core.List) (core.SExpr, error) {
	if rest.Len() != 2 {
		return nil, fmt.Errorf("lambda expression must have a parameter list and a body")
	}
	elems := rest.ToSlice()
	paramList, ok := elems[0].(core.List)
	if !ok {
		return nil, fmt.Errorf("lambda's parameter list must be a list")
	}
	var params []string
	for _, p := range paramList.ToSlice() {
		pc, ok := p.(core.Cell)
		if !ok || pc.Kind != core.KSymbol {
			return nil, fmt.Errorf("lambda parameters must be symbols")
		}
		params = append(params, pc.Value.(core.Symbol).Name)
	}
	return core.NewLambda(params, elems[1]), nil
}

func (ev *Evaluator) evalExit(rest core.List, env *Environment) (core.SExpr, error) {
	code := 0
	if rest.Len() > 1 {
		return nil, fmt.Errorf("exit takes at most one argument")
	}
	if rest.Len() == 1 {
		v, err := ev.Eval(rest.First(), env)
		if err != nil {
			return nil, err
		}
		n, err := core.AsNumber(v)
		if err != nil {
			return nil, err
		}
		code = int(n)
	}
	return nil, &ExitSignal{Code: code}
}
