package core

// NumericOperator enumerates the arithmetic tokens, grounded in
// original_source's primitives.rs NumericOperator enum.
type NumericOperator int

const (
	OpAdd NumericOperator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
)

func (o NumericOperator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	default:
		return "<unknown operator>"
	}
}

// LogicalOperator enumerates the comparison and boolean-connective tokens.
type LogicalOperator int

const (
	LogLess LogicalOperator = iota
	LogGreater
	LogEqual
	LogLessEqual
	LogGreaterEqual
	LogOr
	LogAnd
	LogNot
	LogXor
)

func (o LogicalOperator) String() string {
	switch o {
	case LogLess:
		return "<"
	case LogGreater:
		return ">"
	case LogEqual:
		return "="
	case LogLessEqual:
		return "<="
	case LogGreaterEqual:
		return ">="
	case LogOr:
		return "or"
	case LogAnd:
		return "and"
	case LogNot:
		return "not"
	case LogXor:
		return "xor"
	default:
		return "<unknown logical operator>"
	}
}

// SpecialForm enumerates the reserved forms the evaluator dispatches on
// before falling into ordinary function application.
type SpecialForm int

const (
	SpecDefine SpecialForm = iota
	SpecIf
	SpecSet
	SpecWhile
	SpecBegin
	SpecOutput
	SpecEnv
	SpecExit
	SpecLet
	SpecCond
	SpecDo
	SpecWhen
	SpecUnless
	SpecBreak
	SpecContinue
	SpecInput
	SpecOutputLine
	SpecSetCar
	SpecLambda
)

func (f SpecialForm) String() string {
	switch f {
	case SpecDefine:
		return "define"
	case SpecIf:
		return "if"
	case SpecSet:
		return "set!"
	case SpecWhile:
		return "while"
	case SpecBegin:
		return "begin"
	case SpecOutput:
		return "output"
	case SpecEnv:
		return "env"
	case SpecExit:
		return "exit"
	case SpecLet:
		return "let"
	case SpecCond:
		return "cond"
	case SpecDo:
		return "do"
	case SpecWhen:
		return "when"
	case SpecUnless:
		return "unless"
	case SpecBreak:
		return "break"
	case SpecContinue:
		return "continue"
	case SpecInput:
		return "input"
	case SpecOutputLine:
		return "output-line"
	case SpecSetCar:
		return "setcar!"
	case SpecLambda:
		return "lambda"
	default:
		return "<unknown special form>"
	}
}

// Implemented reports whether the evaluator carries a working handler for
// this special form, as opposed to one that is recognized but only returns
// a "not implemented" error.
func (f SpecialForm) Implemented() bool {
	switch f {
	case SpecDefine, SpecIf, SpecSet, SpecWhile, SpecBegin, SpecOutput, SpecEnv, SpecExit, SpecLambda:
		return true
	default:
		return false
	}
}

// CoreFunc enumerates the built-in (non-special-form) list and predicate
// functions, promoted here from the SpecialForm variants original_source
// groups them under (Map, Filter, Count, Cons, List, Car, Cdr).
type CoreFunc int

const (
	CoreNumberQ CoreFunc = iota
	CoreListQ
	CoreNullQ
	CoreBooleanQ
	CoreStringQ
	CoreCharQ
	CoreExactQ
	CoreNumberToString
	CoreCons
	CoreList
	CoreCar
	CoreCdr
	CoreFirst
	CoreRest
	CoreAppend
	CoreMap
	CoreFilter
	CoreCount
)

func (f CoreFunc) String() string {
	switch f {
	case CoreNumberQ:
		return "number?"
	case CoreListQ:
		return "list?"
	case CoreNullQ:
		return "null?"
	case CoreBooleanQ:
		return "boolean?"
	case CoreStringQ:
		return "string?"
	case CoreCharQ:
		return "char?"
	case CoreExactQ:
		return "exact?"
	case CoreNumberToString:
		return "number->string"
	case CoreCons:
		return "cons"
	case CoreList:
		return "list"
	case CoreCar:
		return "car"
	case CoreCdr:
		return "cdr"
	case CoreFirst:
		return "first"
	case CoreRest:
		return "rest"
	case CoreAppend:
		return "append"
	case CoreMap:
		return "map"
	case CoreFilter:
		return "filter"
	case CoreCount:
		return "count"
	default:
		return "<unknown core function>"
	}
}

// ReservedWords builds the lexeme-to-Cell lookup table the parser consults,
// grounded in original_source's map_cell_from_string.
func ReservedWords() map[string]Cell {
	words := make(map[string]Cell)
	for _, op := range []NumericOperator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo} {
		words[op.String()] = NewOp(op)
	}
	for _, op := range []LogicalOperator{LogLess, LogGreater, LogEqual, LogLessEqual, LogGreaterEqual, LogOr, LogAnd, LogNot, LogXor} {
		words[op.String()] = NewLogical(op)
	}
	for _, f := range []SpecialForm{SpecDefine, SpecIf, SpecSet, SpecWhile, SpecBegin, SpecOutput, SpecEnv, SpecExit,
		SpecLet, SpecCond, SpecDo, SpecWhen, SpecUnless, SpecBreak, SpecContinue, SpecInput, SpecOutputLine, SpecSetCar, SpecLambda} {
		words[f.String()] = NewSpecial(f)
	}
	for _, f := range []CoreFunc{CoreNumberQ, CoreListQ, CoreNullQ, CoreBooleanQ, CoreStringQ, CoreCharQ, CoreExactQ,
		CoreNumberToString, CoreCons, CoreList, CoreCar, CoreCdr, CoreFirst, CoreRest, CoreAppend, CoreMap, CoreFilter, CoreCount} {
		words[f.String()] = NewCore(f)
	}
	words["true"] = NewBool(true)
	words["false"] = NewBool(false)
	return words
}
