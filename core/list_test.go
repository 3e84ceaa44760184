package core

import "testing"

func TestConstructPrependsOntoList(t *testing.T) {
	tail := FromSlice([]SExpr{NewInt(2), NewInt(3)})
	got := Construct(NewInt(1), tail)
	list, ok := got.(List)
	if !ok {
		t.Fatalf("expected a List, got %T", got)
	}
	if list.String() != "(1 2 3)" {
		t.Errorf("got %s", list.String())
	}
}

func TestConstructFormsPairWhenTailIsNotAList(t *testing.T) {
	got := Construct(NewInt(1), NewInt(2))
	list, ok := got.(List)
	if !ok {
		t.Fatalf("expected a List, got %T", got)
	}
	if list.Len() != 2 {
		t.Errorf("expected a 2-element list, got %s", list.String())
	}
}

func TestFirstOfEmptyListIsNull(t *testing.T) {
	if _, ok := Nil.First().(Null); !ok {
		t.Errorf("expected Null, got %T", Nil.First())
	}
}

func TestListEquality(t *testing.T) {
	a := FromSlice([]SExpr{NewInt(1), NewStr("x")})
	b := FromSlice([]SExpr{NewInt(1), NewStr("x")})
	c := FromSlice([]SExpr{NewInt(1), NewStr("y")})
	if !a.Equal(b) {
		t.Error("expected a == b")
	}
	if a.Equal(c) {
		t.Error("expected a != c")
	}
}

func TestAppend(t *testing.T) {
	a := FromSlice([]SExpr{NewInt(1)})
	b := FromSlice([]SExpr{NewInt(2), NewInt(3)})
	got := Append(a, b)
	if got.String() != "(1 2 3)" {
		t.Errorf("got %s", got.String())
	}
}

func TestPrintEmptyList(t *testing.T) {
	if Nil.String() != "()" {
		t.Errorf("got %s", Nil.String())
	}
}
