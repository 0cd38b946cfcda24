package main

// controlBuiltins implements the control-structure openers (DO, IF,
// BEGIN) and the words that only make sense inside or around them: I J
// LEAVE, plus the non-local exits ABORT/QUIT and the DEBUG toggle.
// LOOP, +LOOP, ELSE, THEN, UNTIL, WHILE, and REPEAT are recognized only
// as raw terminator words inside the relevant block parser, the same way
// `;` is recognized only inside `:` -- none of them is a dictionary entry.
func controlBuiltins() []Builtin {
	return []Builtin{
		&doBuiltin{},
		&ifBuiltin{},
		&beginBuiltin{},
		builtin("I", func(ip *Interp) error {
			t, err := ip.rstack.Peek(0)
			if err != nil {
				return errNotInDO
			}
			ip.pstack.Push(t.Copy())
			return nil
		}),
		builtin("J", func(ip *Interp) error {
			t, err := ip.rstack.Peek(2)
			if err != nil {
				return errNotInDoubleDO
			}
			ip.pstack.Push(t.Copy())
			return nil
		}),
		builtin("LEAVE", func(ip *Interp) error { return ip.blocks.Leave() }),
		builtin("ABORT", func(ip *Interp) error {
			ip.pstack.Clear()
			ip.rstack.Clear()
			ip.blocks.Clear()
			return signalAbort
		}),
		builtin("QUIT", func(ip *Interp) error {
			ip.rstack.Clear()
			ip.blocks.Clear()
			return signalQuit
		}),
		builtin("DEBUG", func(ip *Interp) error {
			ip.debug = !ip.debug
			return nil
		}),
	}
}
