package engine

import (
	"testing"

	"github.com/ccdavis/schemer/core"
)

func TestParseIntVsFloat(t *testing.T) {
	expr, err := ParseString("42")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cell, ok := expr.(core.Cell)
	if !ok || cell.Kind != core.KInt {
		t.Fatalf("expected an Int cell for a decimal-free lexeme, got %#v", expr)
	}

	expr, err = ParseString("42.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cell, ok = expr.(core.Cell)
	if !ok || cell.Kind != core.KFlt {
		t.Fatalf("expected a Flt cell for a lexeme with a decimal point, got %#v", expr)
	}
}

func TestParseString(t *testing.T) {
	expr, err := ParseString(`"hello world"`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if expr.String() != "hello world" {
		t.Errorf("got %s", expr.String())
	}
}

func TestParseNestedList(t *testing.T) {
	expr, err := ParseString("(+ 1 (* 2 3))")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if expr.String() != "(+ 1 (* 2 3))" {
		t.Errorf("got %s", expr.String())
	}
}

func TestParseUnbalancedParens(t *testing.T) {
	if _, err := ParseString("(+ 1 2"); err == nil {
		t.Error("expected an error for an unterminated list")
	}
}

func TestParseProgramWrapsInImplicitOuterParens(t *testing.T) {
	program, err := ParseProgram("(define x 1) x")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if program.Len() != 2 {
		t.Fatalf("expected two top-level expressions, got %d", program.Len())
	}
}

func TestParseComment(t *testing.T) {
	expr, err := ParseString("; a comment\n42")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if expr.String() != "42" {
		t.Errorf("got %s", expr.String())
	}
}
