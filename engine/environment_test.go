package engine

import (
	"testing"

	"github.com/ccdavis/schemer/core"
)

func TestDefineThenLookup(t *testing.T) {
	env := NewEnvironment()
	if err := env.Define("x", core.NewInt(1)); err != nil {
		t.Fatalf("define: %v", err)
	}
	v, err := env.Lookup("x")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if v.String() != "1" {
		t.Errorf("got %s", v.String())
	}
}

func TestRedefineInSameScopeErrors(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", core.NewInt(1))
	if err := env.Define("x", core.NewInt(2)); err == nil {
		t.Error("expected an error redefining x in the same frame")
	}
}

func TestLookupMissingErrors(t *testing.T) {
	env := NewEnvironment()
	if _, err := env.Lookup("missing"); err == nil {
		t.Error("expected an error looking up an undefined symbol")
	}
}

func TestChildLookupFallsThroughToParent(t *testing.T) {
	parent := NewEnvironment()
	parent.Define("x", core.NewInt(1))
	child := parent.MakeChild()
	v, err := child.Lookup("x")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if v.String() != "1" {
		t.Errorf("got %s", v.String())
	}
}

func TestChildDefineDoesNotLeakToParent(t *testing.T) {
	parent := NewEnvironment()
	child := parent.MakeChild()
	child.Define("y", core.NewInt(5))
	if _, err := parent.Lookup("y"); err == nil {
		t.Error("expected parent to not see child's binding")
	}
}

func TestAssignMutatesNearestOwningFrame(t *testing.T) {
	parent := NewEnvironment()
	parent.Define("x", core.NewInt(1))
	child := parent.MakeChild()

	idx, err := child.Assign("x", core.NewInt(2))
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if idx != 0 {
		t.Errorf("expected slot index 0, got %d", idx)
	}
	v, _ := parent.Lookup("x")
	if v.String() != "2" {
		t.Errorf("expected parent's slot to be mutated, got %s", v.String())
	}
}

func TestAssignUndefinedErrors(t *testing.T) {
	env := NewEnvironment()
	if _, err := env.Assign("never-defined", core.NewInt(1)); err == nil {
		t.Error("expected an error assigning to an undefined name")
	}
}
