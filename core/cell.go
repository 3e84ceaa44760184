package core

import (
	"fmt"
	"strconv"
)

// Kind tags the payload held by a Cell, playing the role Rust's Cell enum
// variants play in the original interpreter.
type Kind int

const (
	KInt Kind = iota
	KFlt
	KStr
	KBool
	KSymbol
	KOp
	KLogical
	KSpecial
	KCore
	KLambda
)

// Symbol carries the interned id the original assigns symbols (always 0 in
// this implementation, which has no interning table) alongside its name.
type Symbol struct {
	ID   int
	Name string
}

// Lambda is a user-defined function: an ordered parameter list and a single
// body expression, evaluated against a child of the caller's environment at
// call time (see engine.Environment) rather than a captured closure.
type Lambda struct {
	Params []string
	Body   SExpr
}

// Cell is an atomic S-expression value: exactly one of Int, Flt, Str, Bool,
// Symbol, an operator/special-form/core-function token, or a Lambda.
type Cell struct {
	Kind  Kind
	Value interface{}
}

func (Cell) isSExpr() {}

func NewInt(v int64) Cell          { return Cell{Kind: KInt, Value: v} }
func NewFlt(v float64) Cell        { return Cell{Kind: KFlt, Value: v} }
func NewStr(v string) Cell         { return Cell{Kind: KStr, Value: v} }
func NewBool(v bool) Cell          { return Cell{Kind: KBool, Value: v} }
func NewSymbol(name string) Cell   { return Cell{Kind: KSymbol, Value: Symbol{ID: 0, Name: name}} }
func NewOp(op NumericOperator) Cell { return Cell{Kind: KOp, Value: op} }
func NewLogical(op LogicalOperator) Cell { return Cell{Kind: KLogical, Value: op} }
func NewSpecial(f SpecialForm) Cell { return Cell{Kind: KSpecial, Value: f} }
func NewCore(f CoreFunc) Cell       { return Cell{Kind: KCore, Value: f} }
func NewLambda(params []string, body SExpr) Cell {
	return Cell{Kind: KLambda, Value: &Lambda{Params: params, Body: body}}
}

func (c Cell) String() string {
	switch c.Kind {
	case KInt:
		return strconv.FormatInt(c.Value.(int64), 10)
	case KFlt:
		return strconv.FormatFloat(c.Value.(float64), 'g', -1, 64)
	case KStr:
		return c.Value.(string)
	case KBool:
		if c.Value.(bool) {
			return "true"
		}
		return "false"
	case KSymbol:
		return c.Value.(Symbol).Name
	case KOp:
		return c.Value.(NumericOperator).String()
	case KLogical:
		return c.Value.(LogicalOperator).String()
	case KSpecial:
		return c.Value.(SpecialForm).String()
	case KCore:
		return c.Value.(CoreFunc).String()
	case KLambda:
		l := c.Value.(*Lambda)
		return fmt.Sprintf("(lambda (%v) %s)", l.Params, l.Body.String())
	default:
		return "<unknown cell>"
	}
}

// DebugString renders a Cell in the diagnostic form, with the symbol's
// interned id made explicit. Environment.Dump and the evaluator's error
// messages use String, not this form.
func (c Cell) DebugString() string {
	if c.Kind == KSymbol {
		s := c.Value.(Symbol)
		return fmt.Sprintf("Symbol %d: %s", s.ID, s.Name)
	}
	return c.String()
}

func (c Cell) Equal(rhs Cell) bool {
	if c.Kind != rhs.Kind {
		return false
	}
	switch c.Kind {
	case KInt:
		return c.Value.(int64) == rhs.Value.(int64)
	case KFlt:
		return c.Value.(float64) == rhs.Value.(float64)
	case KStr:
		return c.Value.(string) == rhs.Value.(string)
	case KBool:
		return c.Value.(bool) == rhs.Value.(bool)
	case KSymbol:
		return c.Value.(Symbol).Name == rhs.Value.(Symbol).Name
	case KOp:
		return c.Value.(NumericOperator) == rhs.Value.(NumericOperator)
	case KLogical:
		return c.Value.(LogicalOperator) == rhs.Value.(LogicalOperator)
	case KSpecial:
		return c.Value.(SpecialForm) == rhs.Value.(SpecialForm)
	case KCore:
		return c.Value.(CoreFunc) == rhs.Value.(CoreFunc)
	case KLambda:
		return c.Value.(*Lambda) == rhs.Value.(*Lambda)
	default:
		return false
	}
}

// IsNumber reports whether the cell holds an Int or a Flt.
func (c Cell) IsNumber() bool { return c.Kind == KInt || c.Kind == KFlt }
