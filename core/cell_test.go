package core

import "testing"

func TestCellStringForms(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{NewInt(42), "42"},
		{NewFlt(3.5), "3.5"},
		{NewStr("hi"), "hi"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewSymbol("x"), "x"},
		{NewOp(OpAdd), "+"},
		{NewLogical(LogLessEqual), "<="},
	}
	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCellEqual(t *testing.T) {
	if !NewInt(1).Equal(NewInt(1)) {
		t.Error("expected equal ints")
	}
	if NewInt(1).Equal(NewFlt(1)) {
		t.Error("expected Int and Flt of same magnitude to be unequal (distinct Kind)")
	}
}

func TestAsNumberRejectsNonNumeric(t *testing.T) {
	if _, err := AsNumber(NewStr("x")); err == nil {
		t.Error("expected an error for a non-numeric cell")
	}
}

func TestAsBoolTruthiness(t *testing.T) {
	cases := []struct {
		e    SExpr
		want bool
	}{
		{NewInt(1), true},
		{NewInt(0), false},
		{NewFlt(0.5), true},
		{NewBool(false), false},
	}
	for _, c := range cases {
		got, err := AsBool(c.e)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != c.want {
			t.Errorf("AsBool(%v) = %v, want %v", c.e, got, c.want)
		}
	}
}

func TestReservedWordsCoverOperators(t *testing.T) {
	words := ReservedWords()
	for _, lexeme := range []string{"+", "-", "*", "/", "%", "<", ">", "=", "<=", ">=", "or", "and", "not", "xor", "define", "if", "set!", "while", "begin", "output"} {
		if _, ok := words[lexeme]; !ok {
			t.Errorf("missing reserved word %q", lexeme)
		}
	}
}
