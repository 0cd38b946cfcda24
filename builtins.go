package main

// Builtin is the fixed operator table's common interface. Most built-ins
// are a name plus a plain exec function (simpleBuiltin); a handful also
// satisfy modifierBuiltin (they parse extra input at tokenize time) or
// blockOwner (they own a compiled sub-body LEAVE can target).
type Builtin interface {
	Name() string
	Exec(ip *Interp) error
}

// simpleBuiltin covers the majority of the table: no modifier, no
// compiled sub-body, just an exec function closing over nothing but its
// own arguments.
type simpleBuiltin struct {
	name string
	fn   func(ip *Interp) error
}

func (b simpleBuiltin) Name() string        { return b.name }
func (b simpleBuiltin) Exec(ip *Interp) error { return b.fn(ip) }

func builtin(name string, fn func(ip *Interp) error) Builtin {
	return simpleBuiltin{name: name, fn: fn}
}

// builtinTable assembles the complete fixed operator set from its
// categories, mirroring the lexicon enumerated in the external interface
// section.
func builtinTable() []Builtin {
	var all []Builtin
	all = append(all, stackBuiltins()...)
	all = append(all, arithBuiltins()...)
	all = append(all, memBuiltins()...)
	all = append(all, ioBuiltins()...)
	all = append(all, controlBuiltins()...)
	all = append(all, defineBuiltins()...)
	return all
}

// valueOf asserts that tok carries a plain Value, the common case for
// arithmetic, comparison, and I/O operands.
func valueOf(t Token) (Value, error) {
	vt, ok := t.(ValueToken)
	if !ok {
		return Value{}, errMustBeNumber
	}
	return vt.Value, nil
}

// printableValue extracts the Value that `.` and `?` print: a literal
// value as-is, or a reference's current cell dereferenced.
func printableValue(t Token) (Value, error) {
	switch tt := t.(type) {
	case ValueToken:
		return tt.Value, nil
	case VarRefToken:
		cell := tt.Cell()
		if vt, ok := cell.(ValueToken); ok {
			return vt.Value, nil
		}
		return Value{}, errVarMustBeNumber
	default:
		return Value{}, errVarMustBeNumber
	}
}

// tokenTruthy implements "Integer treated as Boolean: nonzero is true"
// for IF/UNTIL/WHILE conditions and ?DUP.
func tokenTruthy(t Token) (bool, error) {
	v, err := valueOf(t)
	if err != nil {
		return false, errMustBeIntOrBool
	}
	return v.Bool(), nil
}

// compareTokens orders two operands for </=/>, honoring the
// reference-comparison rule when both sides are references.
func compareTokens(a, b Token) (int, error) {
	if ra, ok := a.(VarRefToken); ok {
		rb, ok := b.(VarRefToken)
		if !ok {
			return 0, errCmpNotSupported
		}
		return ra.Compare(rb), nil
	}
	av, err := valueOf(a)
	if err != nil {
		return 0, err
	}
	bv, err := valueOf(b)
	if err != nil {
		return 0, err
	}
	return compareValues(av, bv), nil
}
