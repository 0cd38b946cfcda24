package main

// defineBuiltins implements the defining-word machinery: : VARIABLE
// CONSTANT CREATE , DOES> FORGET ALLOT.
//
// VARIABLE, CONSTANT, CREATE, and FORGET all read a following name
// directly from the input inside their exec function rather than via a
// modifier: unlike DO/IF/BEGIN/."/(/LOAD/DOES>, they are not listed as
// hasModifier in the built-in table, and reading the name at ordinary
// execution time gives the same result for their one intended use
// (immediate top-level definition) without needing compile-time parsing.
func defineBuiltins() []Builtin {
	return []Builtin{
		&colonBuiltin{},
		&doesBuiltin{},
		builtin("VARIABLE", func(ip *Interp) error {
			name, ok := ip.readWord()
			if !ok {
				return errMissingWord
			}
			v := NewVariable(name)
			ip.dict.DefineVariable(v)
			ip.currentVar = v
			return nil
		}),
		builtin("CONSTANT", func(ip *Interp) error {
			name, ok := ip.readWord()
			if !ok {
				return errMissingWord
			}
			tok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			v := NewConstant(name, tok.Copy())
			ip.dict.DefineVariable(v)
			ip.currentVar = v
			return nil
		}),
		builtin("CREATE", func(ip *Interp) error {
			name, ok := ip.readWord()
			if !ok {
				return errMissingWord
			}
			v := NewEmptyVariable(name)
			ip.dict.DefineVariable(v)
			ip.currentVar = v
			return nil
		}),
		builtin(",", func(ip *Interp) error {
			if ip.currentVar == nil {
				return errNoCurrentVar
			}
			tok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			ip.currentVar.Append(tok.Copy())
			return nil
		}),
		builtin("ALLOT", func(ip *Interp) error {
			if ip.currentVar == nil {
				return errNoCurrentVar
			}
			t, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			v, err := valueOf(t)
			if err != nil {
				return err
			}
			ip.currentVar.Allot(int(v.Int32()))
			return nil
		}),
		builtin("FORGET", func(ip *Interp) error {
			name, ok := ip.readWord()
			if !ok {
				return errMissingWord
			}
			okVar := ip.dict.ForgetVariable(name)
			okProc := ip.dict.ForgetProcedure(name)
			if !okVar && !okProc {
				return errUnknownWord
			}
			return nil
		}),
	}
}
