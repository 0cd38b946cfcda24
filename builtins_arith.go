package main

// arithBuiltins implements the arithmetic, logical, and comparison words:
// + - * / MOD /MOD 1+ 2+ */ MAX MIN ABS NEGATE AND OR XOR NOT < = > U<.
func arithBuiltins() []Builtin {
	return []Builtin{
		builtin("+", addExec),
		builtin("-", subExec),
		builtin("*", binaryOp(mulValues)),
		builtin("/", binaryOp(divValues)),
		builtin("MOD", binaryOp(modValues)),
		builtin("/MOD", divModExec),
		builtin("1+", incExec(1)),
		builtin("2+", incExec(2)),
		builtin("*/", starSlashExec),
		builtin("MAX", func(ip *Interp) error { return binaryValueOp(ip, maxValues) }),
		builtin("MIN", func(ip *Interp) error { return binaryValueOp(ip, minValues) }),
		builtin("ABS", unaryOp(absValue)),
		builtin("NEGATE", unaryOp(negateValue)),
		builtin("AND", func(ip *Interp) error { return binaryValueOp(ip, andValues) }),
		builtin("OR", func(ip *Interp) error { return binaryValueOp(ip, orValues) }),
		builtin("XOR", func(ip *Interp) error { return binaryValueOp(ip, xorValues) }),
		builtin("NOT", unaryOp(notValue)),
		builtin("<", compareExec(func(c int) bool { return c < 0 })),
		builtin("=", compareExec(func(c int) bool { return c == 0 })),
		builtin(">", compareExec(func(c int) bool { return c > 0 })),
		builtin("U<", uLessExec),
	}
}

// binaryOp wraps a (Value,Value)->(Value,error) arithmetic function as a
// built-in that pops two operands (b on top) and pushes the result.
func binaryOp(op func(a, b Value) (Value, error)) func(ip *Interp) error {
	return func(ip *Interp) error {
		b, err := ip.pstack.Pop()
		if err != nil {
			return err
		}
		a, err := ip.pstack.Pop()
		if err != nil {
			return err
		}
		av, err := valueOf(a)
		if err != nil {
			return err
		}
		bv, err := valueOf(b)
		if err != nil {
			return err
		}
		r, err := op(av, bv)
		if err != nil {
			return err
		}
		ip.pstack.Push(ValueToken{Value: r})
		return nil
	}
}

func binaryValueOp(ip *Interp, op func(a, b Value) Value) error {
	b, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	a, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	av, err := valueOf(a)
	if err != nil {
		return err
	}
	bv, err := valueOf(b)
	if err != nil {
		return err
	}
	ip.pstack.Push(ValueToken{Value: op(av, bv)})
	return nil
}

func unaryOp(op func(a Value) Value) func(ip *Interp) error {
	return func(ip *Interp) error {
		t, err := ip.pstack.Pop()
		if err != nil {
			return err
		}
		v, err := valueOf(t)
		if err != nil {
			return err
		}
		ip.pstack.Push(ValueToken{Value: op(v)})
		return nil
	}
}

// addExec and subExec additionally accept a reference on one side,
// yielding a shifted reference rather than a number.
func addExec(ip *Interp) error {
	b, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	a, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	if ref, ok := a.(VarRefToken); ok {
		n, err := valueOf(b)
		if err != nil {
			return err
		}
		ip.pstack.Push(ref.Shift(int(n.Int32())))
		return nil
	}
	if ref, ok := b.(VarRefToken); ok {
		n, err := valueOf(a)
		if err != nil {
			return err
		}
		ip.pstack.Push(ref.Shift(int(n.Int32())))
		return nil
	}
	av, err := valueOf(a)
	if err != nil {
		return err
	}
	bv, err := valueOf(b)
	if err != nil {
		return err
	}
	r, err := addValues(av, bv)
	if err != nil {
		return err
	}
	ip.pstack.Push(ValueToken{Value: r})
	return nil
}

func subExec(ip *Interp) error {
	b, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	a, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	if ref, ok := a.(VarRefToken); ok {
		n, err := valueOf(b)
		if err != nil {
			return err
		}
		ip.pstack.Push(ref.Shift(-int(n.Int32())))
		return nil
	}
	av, err := valueOf(a)
	if err != nil {
		return err
	}
	bv, err := valueOf(b)
	if err != nil {
		return err
	}
	r, err := subValues(av, bv)
	if err != nil {
		return err
	}
	ip.pstack.Push(ValueToken{Value: r})
	return nil
}

func divModExec(ip *Interp) error {
	b, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	a, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	av, err := valueOf(a)
	if err != nil {
		return err
	}
	bv, err := valueOf(b)
	if err != nil {
		return err
	}
	rem, err := modValues(av, bv)
	if err != nil {
		return err
	}
	quot, err := divValues(av, bv)
	if err != nil {
		return err
	}
	ip.pstack.Push(ValueToken{Value: rem})
	ip.pstack.Push(ValueToken{Value: quot})
	return nil
}

func incExec(n int32) func(ip *Interp) error {
	return func(ip *Interp) error {
		t, err := ip.pstack.Pop()
		if err != nil {
			return err
		}
		if ref, ok := t.(VarRefToken); ok {
			ip.pstack.Push(ref.Shift(int(n)))
			return nil
		}
		v, err := valueOf(t)
		if err != nil {
			return errIncNotSupported
		}
		r, err := addValues(v, Int(n))
		if err != nil {
			return err
		}
		ip.pstack.Push(ValueToken{Value: r})
		return nil
	}
}

func starSlashExec(ip *Interp) error {
	n3, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	n2, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	n1, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	v3, err := valueOf(n3)
	if err != nil {
		return err
	}
	v2, err := valueOf(n2)
	if err != nil {
		return err
	}
	v1, err := valueOf(n1)
	if err != nil {
		return err
	}
	if v3.Int32() == 0 {
		return errDivByZero
	}
	res := int32((int64(v1.Int32()) * int64(v2.Int32())) / int64(v3.Int32()))
	ip.pstack.Push(ValueToken{Value: Int(res)})
	return nil
}

func compareExec(pred func(c int) bool) func(ip *Interp) error {
	return func(ip *Interp) error {
		b, err := ip.pstack.Pop()
		if err != nil {
			return err
		}
		a, err := ip.pstack.Pop()
		if err != nil {
			return err
		}
		c, err := compareTokens(a, b)
		if err != nil {
			return err
		}
		ip.pstack.Push(ValueToken{Value: Bool(pred(c))})
		return nil
	}
}

func uLessExec(ip *Interp) error {
	b, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	a, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	av, err := valueOf(a)
	if err != nil {
		return err
	}
	bv, err := valueOf(b)
	if err != nil {
		return err
	}
	ip.pstack.Push(ValueToken{Value: Bool(compareUnsigned(av, bv) < 0)})
	return nil
}
