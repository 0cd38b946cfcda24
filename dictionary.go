package main

import "strings"

// Dictionary holds the three name-keyed tables the tokenizer resolves
// against: variables and procedures (case-sensitive, shadowed by a stack
// per name so FORGET can peel back redefinitions) and built-ins
// (case-insensitive, since they are fixed parts of the language rather
// than user names).
type Dictionary struct {
	variables  map[string][]*Variable
	procedures map[string][]*Procedure
	builtins   map[string]Builtin
}

// NewDictionary returns a Dictionary pre-loaded with the built-in table.
func NewDictionary() *Dictionary {
	d := &Dictionary{
		variables:  make(map[string][]*Variable),
		procedures: make(map[string][]*Procedure),
		builtins:   make(map[string]Builtin),
	}
	for _, b := range builtinTable() {
		d.builtins[strings.ToUpper(b.Name())] = b
	}
	return d
}

// DefineVariable pushes v as the newest binding for its name, shadowing
// any prior definition.
func (d *Dictionary) DefineVariable(v *Variable) {
	d.variables[v.Name] = append(d.variables[v.Name], v)
}

// DefineProcedure pushes p as the newest binding for its name.
func (d *Dictionary) DefineProcedure(p *Procedure) {
	d.procedures[p.Name] = append(d.procedures[p.Name], p)
}

// LookupVariable returns the most recent binding of name, if any.
func (d *Dictionary) LookupVariable(name string) (*Variable, bool) {
	s := d.variables[name]
	if len(s) == 0 {
		return nil, false
	}
	return s[len(s)-1], true
}

// LookupProcedure returns the most recent binding of name, if any.
func (d *Dictionary) LookupProcedure(name string) (*Procedure, bool) {
	s := d.procedures[name]
	if len(s) == 0 {
		return nil, false
	}
	return s[len(s)-1], true
}

// LookupBuiltin resolves name case-insensitively against the built-in
// table.
func (d *Dictionary) LookupBuiltin(name string) (Builtin, bool) {
	b, ok := d.builtins[strings.ToUpper(name)]
	return b, ok
}

// DefineBuiltin installs or replaces a built-in under its name.
func (d *Dictionary) DefineBuiltin(b Builtin) {
	d.builtins[strings.ToUpper(b.Name())] = b
}

// ForgetVariable pops the most recent binding of name. Returns false if
// name had no variable binding to forget.
func (d *Dictionary) ForgetVariable(name string) bool {
	s := d.variables[name]
	if len(s) == 0 {
		return false
	}
	d.variables[name] = s[:len(s)-1]
	return true
}

// ForgetProcedure pops the most recent binding of name. Returns false if
// name had no procedure binding to forget.
func (d *Dictionary) ForgetProcedure(name string) bool {
	s := d.procedures[name]
	if len(s) == 0 {
		return false
	}
	d.procedures[name] = s[:len(s)-1]
	return true
}

// HasVariable reports whether name currently has any variable binding.
func (d *Dictionary) HasVariable(name string) bool { return len(d.variables[name]) > 0 }

// HasProcedure reports whether name currently has any procedure binding.
func (d *Dictionary) HasProcedure(name string) bool { return len(d.procedures[name]) > 0 }
