package main

import "unsafe"

// Token is the interpreter's resolved unit of dispatch: the result of
// parseWord, the unit the executor dispatches, and what a compiled
// procedure or block body stores. Every concrete Token answers whether it
// is executable (built-ins and procedures are; everything else merely
// pushes) and whether it is immutable (numbers and booleans are; a variable
// reference is not, and so must be copied when DUP/OVER duplicate it).
// Tracking on the block-execution stack is not a Token property: block
// built-ins push themselves there from their own Exec.
type Token interface {
	Executable() bool
	Mutable() bool
	IsNull() bool
	// Copy returns an independent token suitable for pushing a second time;
	// immutable tokens may return themselves, mutable ones must clone.
	Copy() Token
}

type tokenBase struct{}

func (tokenBase) IsNull() bool { return false }

// ValueToken wraps a plain Boolean, Integer, or Real value. Values are
// immutable: duplicating one is just copying the struct.
type ValueToken struct {
	tokenBase
	Value Value
}

func (ValueToken) Executable() bool { return false }
func (ValueToken) Mutable() bool    { return false }
func (t ValueToken) Copy() Token    { return t }

// NullToken marks a comment or a defining action that already ran at
// parse time (e.g. `(...)`, a completed `:` definition); block parsers and
// the executor discard it rather than compiling or running it.
type NullToken struct{ tokenBase }

func (NullToken) Executable() bool { return false }
func (NullToken) Mutable() bool    { return false }
func (t NullToken) IsNull() bool   { return true }
func (t NullToken) Copy() Token    { return t }

// VarRefToken addresses one cell of a Variable. It is mutable: DUP/OVER
// must clone it (same Var, same Offset) rather than alias the struct, so
// that later `1+`-style rewrites of one copy don't affect the other -- in
// practice this just means "a new VarRefToken value", since Go structs are
// already copied by value.
type VarRefToken struct {
	tokenBase
	Var    *Variable
	Offset int
}

func (VarRefToken) Executable() bool { return false }
func (VarRefToken) Mutable() bool    { return true }
func (t VarRefToken) Copy() Token    { return VarRefToken{Var: t.Var, Offset: t.Offset} }

// Cell returns the token stored at the referenced variable+offset.
func (t VarRefToken) Cell() Token { return t.Var.Cell(t.Offset) }

// SetCell overwrites the token at the referenced variable+offset.
func (t VarRefToken) SetCell(v Token) { t.Var.SetCell(t.Offset, v) }

// Shift returns a new reference offset by n, implementing `ref + n`,
// `ref - n`, `1+`, and `2+` on a reference.
func (t VarRefToken) Shift(n int) VarRefToken { return VarRefToken{Var: t.Var, Offset: t.Offset + n} }

// Compare orders two VarRefTokens by (variable identity, offset), per the
// reference-comparison rule in the data model.
func (t VarRefToken) Compare(o VarRefToken) int {
	if t.Var != o.Var {
		if uintptr(unsafe.Pointer(t.Var)) < uintptr(unsafe.Pointer(o.Var)) {
			return -1
		}
		return 1
	}
	switch {
	case t.Offset < o.Offset:
		return -1
	case t.Offset > o.Offset:
		return 1
	default:
		return 0
	}
}

// ProcToken names a user-defined procedure; running it executes its
// compiled token list in order through the executor.
type ProcToken struct {
	tokenBase
	Proc *Procedure
}

func (ProcToken) Executable() bool { return true }
func (ProcToken) Mutable() bool    { return false }
func (t ProcToken) Copy() Token    { return t }

// Procedure is the compiled body created by `:` / `;`.
type Procedure struct {
	Name   string
	Tokens []Token
}

// BuiltinToken names a built-in operation, possibly one that carries its
// own compiled sub-body (DO, IF, BEGIN, `."`, LOAD, DOES>) produced by its
// ReadModifier at the point the word was tokenized.
type BuiltinToken struct {
	tokenBase
	Builtin Builtin
}

func (BuiltinToken) Executable() bool { return true }
func (BuiltinToken) Mutable() bool    { return false }
func (t BuiltinToken) Copy() Token    { return t }
