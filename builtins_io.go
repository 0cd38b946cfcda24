package main

import (
	"os"
	"strings"

	"github.com/cforth-lang/cforth/internal/source"
)

// ioBuiltins implements character/string I/O, the numeric-print words,
// and the storage/comment/string-literal modifiers: EMIT ." TYPE COUNT
// -TRAILING KEY EXPECT QUERY WORD HERE . PSTACK DECIMAL ( LOAD.
func ioBuiltins() []Builtin {
	return []Builtin{
		builtin("EMIT", func(ip *Interp) error {
			t, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			v, err := valueOf(t)
			if err != nil {
				return err
			}
			return ip.writeString(string([]rune{rune(byte(v.Int32()))}))
		}),
		&dotQuoteBuiltin{},
		&commentBuiltin{},
		builtin("TYPE", func(ip *Interp) error {
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
			var sb strings.Builder
			for i := 0; i < n; i++ {
				v, err := valueOf(ref.Var.Cell(ref.Offset + i))
				if err != nil {
					return err
				}
				sb.WriteRune(rune(v.Int32()))
			}
			return ip.writeString(sb.String())
		}),
		builtin("COUNT", func(ip *Interp) error {
			t, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			ref, ok := t.(VarRefToken)
			if !ok {
				return errMustBeRefVar
			}
			lenCell := ref.Cell()
			ip.pstack.Push(ref.Shift(1))
			ip.pstack.Push(lenCell.Copy())
			return nil
		}),
		builtin("-TRAILING", func(ip *Interp) error {
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
			for n > 0 {
				v, err := valueOf(ref.Var.Cell(ref.Offset + n - 1))
				if err != nil {
					return err
				}
				if v.Int32() != ' ' {
					break
				}
				n--
			}
			ip.pstack.Push(ref)
			ip.pstack.Push(ValueToken{Value: Int(int32(n))})
			return nil
		}),
		builtin("KEY", func(ip *Interp) error {
			if ip.key == nil {
				return errNotImplemented
			}
			r, err := ip.key.ReadKey()
			if err != nil {
				return err
			}
			ip.pstack.Push(ValueToken{Value: Int(int32(r))})
			return nil
		}),
		builtin("EXPECT", func(ip *Interp) error {
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
			ip.ensureStdin()
			for i := 0; i < n; i++ {
				r, _, err := ip.stdin.ReadRune()
				if err != nil || r == '\n' {
					break
				}
				ref.Var.SetCell(ref.Offset+i, ValueToken{Value: Int(int32(r))})
			}
			return nil
		}),
		builtin("QUERY", func(ip *Interp) error {
			ip.ensureStdin()
			var sb []rune
			for len(sb) < 80 {
				r, _, err := ip.stdin.ReadRune()
				if err != nil || r == '\n' {
					break
				}
				sb = append(sb, r)
			}
			ip.in.Insert(string(sb))
			return nil
		}),
		builtin("WORD", wordExec),
		builtin("HERE", func(ip *Interp) error {
			if ip.wordVar == nil {
				ip.wordVar = NewEmptyVariable("WORD")
			}
			ip.pstack.Push(VarRefToken{Var: ip.wordVar, Offset: ip.wordVar.CellCount()})
			return nil
		}),
		builtin(".", func(ip *Interp) error {
			t, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			v, err := printableValue(t)
			if err != nil {
				return err
			}
			return ip.writeString(v.Format(ip.Base()) + " ")
		}),
		builtin("PSTACK", pstackExec),
		builtin("DECIMAL", func(ip *Interp) error {
			if !ip.dict.HasVariable("BASE") {
				ip.base = NewVariable("BASE")
				ip.dict.DefineVariable(ip.base)
			}
			ip.base.SetCurrentValue(ValueToken{Value: Int(10)})
			return nil
		}),
		&loadBuiltin{},
	}
}

// wordExec pops an Integer terminator, reads from the current line until
// that character (or EOL), and stores the result into the process-wide
// WORD scratch variable as a counted string: cell 0 is the length, cells
// 1..len the character codes.
func wordExec(ip *Interp) error {
	t, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	v, err := valueOf(t)
	if err != nil {
		return err
	}
	term := rune(v.Int32())

	if ip.wordVar == nil {
		ip.wordVar = NewEmptyVariable("WORD")
	}

	var chars []rune
	for {
		r, ok := ip.in.Look()
		if !ok || r == term {
			break
		}
		chars = append(chars, r)
		ip.in.Skip()
	}
	if r, ok := ip.in.Look(); ok && r == term {
		ip.in.Skip()
	}

	need := len(chars) + 1
	if ip.wordVar.CellCount() < need {
		ip.wordVar.Allot(need - ip.wordVar.CellCount())
	}
	ip.wordVar.SetCell(0, ValueToken{Value: Int(int32(len(chars)))})
	for i, r := range chars {
		ip.wordVar.SetCell(i+1, ValueToken{Value: Int(int32(r))})
	}
	ip.pstack.Push(VarRefToken{Var: ip.wordVar, Offset: 0})
	return nil
}

func pstackExec(ip *Interp) error {
	items := ip.pstack.All()
	var sb strings.Builder
	for _, t := range items {
		v, err := printableValue(t)
		if err != nil {
			sb.WriteString("? ")
			continue
		}
		sb.WriteString(v.Format(ip.Base()))
		sb.WriteByte(' ')
	}
	return ip.writeString(sb.String())
}

// dotQuoteBuiltin implements `."`: its modifier reads raw characters up
// to the next `"` and its exec writes that literal text.
type dotQuoteBuiltin struct{ text string }

func (b *dotQuoteBuiltin) Name() string          { return `."` }
func (b *dotQuoteBuiltin) Clone() modifierBuiltin { return &dotQuoteBuiltin{} }

func (b *dotQuoteBuiltin) ReadModifier(ip *Interp) (Token, error) {
	var sb []rune
	for {
		r, ok := ip.in.Get()
		if !ok {
			return nil, errMissingChar
		}
		if r == '"' {
			break
		}
		sb = append(sb, r)
	}
	return BuiltinToken{Builtin: &dotQuoteBuiltin{text: string(sb)}}, nil
}

func (b *dotQuoteBuiltin) Exec(ip *Interp) error { return ip.writeString(b.text) }

// commentBuiltin implements `(`: its modifier consumes raw characters
// (spanning lines if necessary) up to the next `)` and produces a null
// token that block parsers and the executor both discard.
type commentBuiltin struct{}

func (b *commentBuiltin) Name() string          { return "(" }
func (b *commentBuiltin) Clone() modifierBuiltin { return &commentBuiltin{} }
func (b *commentBuiltin) Exec(ip *Interp) error  { return nil }

func (b *commentBuiltin) ReadModifier(ip *Interp) (Token, error) {
	for {
		r, ok := ip.in.Get()
		if !ok {
			if !ip.in.FillBuffer() {
				return nil, errMissingChar
			}
			continue
		}
		if r == ')' {
			break
		}
	}
	return NullToken{}, nil
}

// loadBuiltin implements LOAD: its modifier reads the next word as a
// filename, and its exec opens that file as a nested input source and
// drives tokens from it to exhaustion before returning control.
type loadBuiltin struct{ path string }

func (b *loadBuiltin) Name() string          { return "LOAD" }
func (b *loadBuiltin) Clone() modifierBuiltin { return &loadBuiltin{} }

func (b *loadBuiltin) ReadModifier(ip *Interp) (Token, error) {
	name, ok := ip.readWord()
	if !ok {
		return nil, errMissingWord
	}
	return BuiltinToken{Builtin: &loadBuiltin{path: name}}, nil
}

func (b *loadBuiltin) Exec(ip *Interp) error {
	f, err := os.Open(b.path)
	if err != nil {
		return openError(b.path)
	}
	// Suspend the rest of the current line so the loaded file runs first,
	// then resume it once the file is exhausted.
	suspended := ip.in.Snapshot()
	ip.in.SkipLine()
	floor := ip.in.Len()
	source.PushFile(&ip.in, b.path, f)
	for {
		word, ok := ip.readWordWithin(floor)
		if !ok {
			ip.in.Restore(suspended)
			return nil
		}
		tok, err := ip.parseWord(word)
		if err != nil {
			return err
		}
		if err := ip.execToken(tok); err != nil {
			return err
		}
	}
}
