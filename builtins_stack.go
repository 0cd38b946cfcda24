package main

// stackBuiltins implements the parameter/return stack manipulation words:
// DUP DROP SWAP OVER ROT PICK ROLL ?DUP DEPTH >R R> R@.
func stackBuiltins() []Builtin {
	return []Builtin{
		builtin("DUP", func(ip *Interp) error {
			t, err := ip.pstack.Peek(0)
			if err != nil {
				return err
			}
			ip.pstack.Push(t.Copy())
			return nil
		}),
		builtin("DROP", func(ip *Interp) error {
			_, err := ip.pstack.Pop()
			return err
		}),
		builtin("SWAP", func(ip *Interp) error {
			a, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			b, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			ip.pstack.Push(a)
			ip.pstack.Push(b)
			return nil
		}),
		builtin("OVER", func(ip *Interp) error {
			t, err := ip.pstack.Peek(1)
			if err != nil {
				return err
			}
			ip.pstack.Push(t.Copy())
			return nil
		}),
		builtin("ROT", func(ip *Interp) error {
			c, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			b, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			a, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			ip.pstack.Push(b)
			ip.pstack.Push(c)
			ip.pstack.Push(a)
			return nil
		}),
		builtin("PICK", func(ip *Interp) error {
			n, err := popInt(ip)
			if err != nil {
				return err
			}
			return ip.pstack.Pick(n)
		}),
		builtin("ROLL", func(ip *Interp) error {
			n, err := popInt(ip)
			if err != nil {
				return err
			}
			return ip.pstack.Roll(n)
		}),
		builtin("?DUP", func(ip *Interp) error {
			t, err := ip.pstack.Peek(0)
			if err != nil {
				return err
			}
			truthy, err := tokenTruthy(t)
			if err != nil {
				return err
			}
			if truthy {
				ip.pstack.Push(t.Copy())
			}
			return nil
		}),
		builtin("DEPTH", func(ip *Interp) error {
			ip.pstack.Push(ValueToken{Value: Int(int32(ip.pstack.Depth()))})
			return nil
		}),
		builtin(">R", func(ip *Interp) error {
			t, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			ip.rstack.Push(t)
			return nil
		}),
		builtin("R>", func(ip *Interp) error {
			t, err := ip.rstack.Pop()
			if err != nil {
				return err
			}
			ip.pstack.Push(t)
			return nil
		}),
		builtin("R@", func(ip *Interp) error {
			t, err := ip.rstack.Peek(0)
			if err != nil {
				return err
			}
			ip.pstack.Push(t.Copy())
			return nil
		}),
	}
}

func popInt(ip *Interp) (int, error) {
	t, err := ip.pstack.Pop()
	if err != nil {
		return 0, err
	}
	v, err := valueOf(t)
	if err != nil {
		return 0, err
	}
	return int(v.Int32()), nil
}
