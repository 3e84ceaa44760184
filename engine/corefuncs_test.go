package engine

import "testing"

func TestCoreListPrimitives(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		expected string
	}{
		{"cons onto list", "(cons 1 (list 2 3))", "(1 2 3)"},
		{"car", "(car (list 1 2 3))", "1"},
		{"cdr", "(cdr (list 1 2 3))", "(2 3)"},
		{"append", "(append (list 1 2) (list 3 4))", "(1 2 3 4)"},
		{"count", "(count (list 1 2 3))", "3"},
		{"number? true", "(number? 5)", "true"},
		{"number? false", `(number? "x")`, "false"},
		{"list? true", "(list? (list 1))", "true"},
		{"null? on empty list", "(null? (list))", "true"},
		{"map squares", "(map (lambda (n) (* n n)) (list 1 2 3))", "(1 4 9)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalProgram(t, tt.program)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCoreFilter(t *testing.T) {
	got := evalProgram(t, "(filter (lambda (n) (> n 2)) (list 1 2 3 4))")
	if got != "(3 4)" {
		t.Errorf("got %s", got)
	}
}

func TestCarOfEmptyListErrors(t *testing.T) {
	if err := evalProgramErr(t, "(car (list))"); err == nil {
		t.Error("expected an error taking car of an empty list")
	}
}
