package core

import "strings"

// Pair is one cons cell: a car value and a link to the next pair.
type Pair struct {
	Car SExpr
	Cdr *Pair
}

// List is a singly-linked cons list. A nil Head represents the empty list,
// mirroring original_source's Link::Nil.
type List struct {
	Head *Pair
}

func (List) isSExpr() {}

// Nil is the canonical empty list.
var Nil = List{Head: nil}

// Cons prepends obj onto an existing pair chain.
func Cons(obj SExpr, rest *Pair) *Pair {
	return &Pair{Car: obj, Cdr: rest}
}

// NewList builds a List from a pair chain.
func NewList(head *Pair) List { return List{Head: head} }

// FromSlice builds a List containing exprs in order.
func FromSlice(exprs []SExpr) List {
	var head *Pair
	for i := len(exprs) - 1; i >= 0; i-- {
		head = Cons(exprs[i], head)
	}
	return List{Head: head}
}

func (l List) IsEmpty() bool { return l.Head == nil }

// First returns the list's head expression, or Null for the empty list.
func (l List) First() SExpr {
	if l.Head == nil {
		return Null{}
	}
	return l.Head.Car
}

// Rest returns the list with its first element removed.
func (l List) Rest() List {
	if l.Head == nil {
		return Nil
	}
	return List{Head: l.Head.Cdr}
}

// Len counts the elements in the list.
func (l List) Len() int {
	n := 0
	for p := l.Head; p != nil; p = p.Cdr {
		n++
	}
	return n
}

// ToSlice flattens the list into a Go slice, in order.
func (l List) ToSlice() []SExpr {
	out := make([]SExpr, 0, l.Len())
	for p := l.Head; p != nil; p = p.Cdr {
		out = append(out, p.Car)
	}
	return out
}

// Construct implements Scheme cons semantics: if tail is itself a List,
// head is prepended onto it; otherwise a two-element list is formed.
func Construct(head SExpr, tail SExpr) SExpr {
	if l, ok := tail.(List); ok {
		return List{Head: Cons(head, l.Head)}
	}
	return List{Head: Cons(head, Cons(tail, nil))}
}

// Append concatenates two lists into a new list, sharing no structure with
// either the receiver or Go garbage-collector aliasing concerns since Pairs
// are immutable once built.
func Append(a, b List) List {
	elems := a.ToSlice()
	elems = append(elems, b.ToSlice()...)
	return FromSlice(elems)
}

func (l List) String() string {
	if l.IsEmpty() {
		return "()"
	}
	parts := make([]string, 0, l.Len())
	for p := l.Head; p != nil; p = p.Cdr {
		parts = append(parts, p.Car.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (l List) Equal(rhs List) bool {
	ap, bp := l.Head, rhs.Head
	for ap != nil && bp != nil {
		if !Equal(ap.Car, bp.Car) {
			return false
		}
		ap, bp = ap.Cdr, bp.Cdr
	}
	return ap == nil && bp == nil
}
