package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ccdavis/schemer/core"
)

// Environment is one lexical scope frame: an ordered slot sequence plus a
// name-to-index map, with an optional non-owning parent. Grounded directly
// in original_source's Environment{definitions_by_symbol, definitions,
// parent}.
type Environment struct {
	bySymbol map[string]int
	slots    []core.SExpr
	parent   *Environment
}

// NewEnvironment creates a parentless root frame.
func NewEnvironment() *Environment {
	return &Environment{bySymbol: make(map[string]int)}
}

// MakeChild creates a new frame parented to e. Child frames are created per
// function call and discarded on return; they are never retained by the
// Lambda that spawned them, so this engine has no true lexical closures
// (see DESIGN.md).
func (e *Environment) MakeChild() *Environment {
	return &Environment{bySymbol: make(map[string]int), parent: e}
}

// Define binds name to value in this frame. Redefining a name already bound
// in this exact frame is an error; shadowing a parent's binding is not.
func (e *Environment) Define(name string, value core.SExpr) error {
	if _, exists := e.bySymbol[name]; exists {
		return fmt.Errorf("%s is already defined in this scope", name)
	}
	e.bySymbol[name] = len(e.slots)
	e.slots = append(e.slots, value)
	return nil
}

// Lookup resolves name, searching this frame and then each parent in turn.
func (e *Environment) Lookup(name string) (core.SExpr, error) {
	if idx, ok := e.bySymbol[name]; ok {
		return e.slots[idx], nil
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}
	return nil, fmt.Errorf("symbol %s not defined", name)
}

// Assign overwrites the nearest frame (searching outward from e) that owns
// name. It does not create a new binding. It returns the slot index of the
// overwritten binding within the frame that owns it, matching
// original_source's evaluate_set, which returns that index as the result
// of `set!`.
func (e *Environment) Assign(name string, value core.SExpr) (int, error) {
	if idx, ok := e.bySymbol[name]; ok {
		e.slots[idx] = value
		return idx, nil
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return 0, fmt.Errorf("symbol %s not defined", name)
}

// Dump renders this frame's own bindings (not its ancestors'), one per
// line, in definition order — the special form `env`'s result, grounded in
// original_source's Environment::print.
func (e *Environment) Dump() string {
	type binding struct {
		name string
		idx  int
	}
	bindings := make([]binding, 0, len(e.bySymbol))
	for name, idx := range e.bySymbol {
		bindings = append(bindings, binding{name, idx})
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].idx < bindings[j].idx })

	var b strings.Builder
	for _, bd := range bindings {
		fmt.Fprintf(&b, "%s : %d %s\n", bd.name, bd.idx, e.slots[bd.idx].String())
	}
	return b.String()
}
