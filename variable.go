package main

import "github.com/cforth-lang/cforth/internal/cells"

// Variable is a named, mutable cell sequence. It is never garbage
// collected: it lives in the interpreter's dictionary until FORGET removes
// its most recent binding. A Variable may additionally be a constant (a
// single immutable cell substituted whenever the name is looked up), or
// carry a DOES> body that runs whenever it is named in source.
type Variable struct {
	Name     string
	store    cells.Store[Token]
	ind      int // cursor for `@`/`!` when no offset is given explicitly
	Constant bool
	Does     []Token
}

// NewVariable creates a variable with a single zero-integer cell, matching
// what VARIABLE installs.
func NewVariable(name string) *Variable {
	v := &Variable{Name: name}
	_, _ = v.store.Append(ValueToken{Value: Int(0)})
	return v
}

// NewEmptyVariable creates a variable with no cells, matching CREATE.
func NewEmptyVariable(name string) *Variable {
	return &Variable{Name: name}
}

// NewConstant creates a single-cell constant variable holding tok.
func NewConstant(name string, tok Token) *Variable {
	v := &Variable{Name: name, Constant: true}
	_, _ = v.store.Append(tok)
	return v
}

// Len reports how many cells remain from the cursor to the end, matching
// the spec's "cells.len - ind" definition.
func (v *Variable) Len() int { return v.store.Len() - v.ind }

// CellCount reports the total number of allocated cells, ignoring the
// cursor; used by WORD and HERE, which address cells by absolute offset.
func (v *Variable) CellCount() int { return v.store.Len() }

// Cell returns the cell at absolute offset i (0-based from the start of
// the backing store, not from the cursor).
func (v *Variable) Cell(i int) Token { return v.store.Get(i) }

// SetCell overwrites the cell at absolute offset i.
func (v *Variable) SetCell(i int, tok Token) { v.store.Set(i, tok) }

// Append adds a new cell, as `,` does.
func (v *Variable) Append(tok Token) { _, _ = v.store.Append(tok) }

// Allot grows the backing store by n zero-integer cells, as ALLOT does.
// Negative n is ignored; the original truncates the dictionary pointer
// backwards in that case, which this model has no use for.
func (v *Variable) Allot(n int) {
	for i := 0; i < n; i++ {
		v.Append(ValueToken{Value: Int(0)})
	}
}

// CurrentValue returns the cell under the cursor; used by parseWord to
// substitute a constant's value and by Base to read BASE.
func (v *Variable) CurrentValue() Token {
	return v.store.Get(v.ind)
}

// SetCurrentValue writes through the cursor.
func (v *Variable) SetCurrentValue(tok Token) {
	v.store.Set(v.ind, tok)
}
