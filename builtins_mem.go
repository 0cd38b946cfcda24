package main

// memBuiltins implements the cell-addressed memory words: @ ! ? +! MOVE
// FILL.
func memBuiltins() []Builtin {
	return []Builtin{
		builtin("@", func(ip *Interp) error {
			t, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			ref, ok := t.(VarRefToken)
			if !ok {
				return errMustBeRefVar
			}
			ip.pstack.Push(ref.Cell().Copy())
			return nil
		}),
		builtin("!", func(ip *Interp) error {
			refTok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			ref, ok := refTok.(VarRefToken)
			if !ok {
				return errMustBeRefVar
			}
			valTok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			ref.SetCell(valTok.Copy())
			return nil
		}),
		builtin("?", func(ip *Interp) error {
			t, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			ref, ok := t.(VarRefToken)
			if !ok {
				return errMustBeRefVar
			}
			v, err := printableValue(ref.Cell())
			if err != nil {
				return err
			}
			return ip.writeString(v.Format(ip.Base()) + " ")
		}),
		builtin("+!", func(ip *Interp) error {
			refTok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			ref, ok := refTok.(VarRefToken)
			if !ok {
				return errMustBeRefVar
			}
			valTok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			n, err := valueOf(valTok)
			if err != nil {
				return err
			}
			cell, ok := ref.Cell().(ValueToken)
			if !ok {
				return errVarMustBeNumber
			}
			sum, err := addValues(cell.Value, n)
			if err != nil {
				return err
			}
			ref.SetCell(ValueToken{Value: sum})
			return nil
		}),
		builtin("MOVE", func(ip *Interp) error {
			countTok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			dstTok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			srcTok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			dst, ok := dstTok.(VarRefToken)
			if !ok {
				return errMustBeRefVar
			}
			src, ok := srcTok.(VarRefToken)
			if !ok {
				return errMustBeRefVar
			}
			cv, err := valueOf(countTok)
			if err != nil {
				return err
			}
			n := int(cv.Int32())
			for i := 0; i < n; i++ {
				dst.Var.SetCell(dst.Offset+i, src.Var.Cell(src.Offset+i).Copy())
			}
			return nil
		}),
		builtin("FILL", func(ip *Interp) error {
			valTok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			countTok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			refTok, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			ref, ok := refTok.(VarRefToken)
			if !ok {
				return errMustBeRefVar
			}
			cv, err := valueOf(countTok)
			if err != nil {
				return err
			}
			n := int(cv.Int32())
			for i := 0; i < n; i++ {
				ref.Var.SetCell(ref.Offset+i, valTok.Copy())
			}
			return nil
		}),
	}
}
