package main

import (
	"io"
	"strings"
)

// appendToken adds tok to a compiled body, inlining a Procedure's own
// tokens rather than nesting a call, and dropping null tokens (comments,
// already-run defining actions) the way every block parser's "add to
// block" helper does.
func appendToken(tokens []Token, tok Token) []Token {
	if tok.IsNull() {
		return tokens
	}
	if pt, ok := tok.(ProcToken); ok {
		return append(tokens, pt.Proc.Tokens...)
	}
	return append(tokens, tok)
}

// readBlockUntil accumulates resolved tokens via the ordinary parseWord
// path until a bare word case-insensitively matches one of terms, which
// is consumed but not included in the returned body. Returns
// io.ErrUnexpectedEOF if input runs out first.
func (ip *Interp) readBlockUntil(terms ...string) (tokens []Token, matched string, err error) {
	for {
		word, ok := ip.readWord()
		if !ok {
			return tokens, "", io.ErrUnexpectedEOF
		}
		for _, t := range terms {
			if strings.EqualFold(word, t) {
				return tokens, t, nil
			}
		}
		tok, err := ip.parseWord(word)
		if err != nil {
			return tokens, "", err
		}
		tokens = appendToken(tokens, tok)
	}
}

// doBuiltin implements DO ... LOOP/+LOOP. A fresh instance is minted by
// Clone for every compile site, since each carries its own compiled body.
type doBuiltin struct {
	tokens   []Token
	incToken bool
	leave    bool
}

func (b *doBuiltin) Name() string               { return "DO" }
func (b *doBuiltin) Clone() modifierBuiltin      { return &doBuiltin{} }
func (b *doBuiltin) AcceptsLeave() bool          { return true }
func (b *doBuiltin) SetLeave()                   { b.leave = true }

func (b *doBuiltin) ReadModifier(ip *Interp) (Token, error) {
	tokens, term, err := ip.readBlockUntil("LOOP", "+LOOP")
	if err == io.ErrUnexpectedEOF {
		return nil, errUnterminatedDO
	}
	if err != nil {
		return nil, err
	}
	b.tokens = tokens
	b.incToken = strings.EqualFold(term, "+LOOP")
	return BuiltinToken{Builtin: b}, nil
}

func (b *doBuiltin) Exec(ip *Interp) error {
	limitTok, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	startTok, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	limitV, err := valueOf(limitTok)
	if err != nil {
		return err
	}
	startV, err := valueOf(startTok)
	if err != nil {
		return err
	}
	limit, idx := limitV.Int32(), startV.Int32()
	ascending := limit > idx

	ip.rstack.Push(ValueToken{Value: Int(limit)})
	ip.rstack.Push(ValueToken{Value: Int(idx)})
	ip.blocks.Push(b)
	defer ip.blocks.Pop()

	for {
		if ascending {
			if idx >= limit {
				break
			}
		} else if idx <= limit {
			break
		}
		if err := ip.execTokens(b.tokens); err != nil {
			ip.rstack.PopN(2)
			return err
		}
		if b.leave {
			b.leave = false
			break
		}
		inc := int32(1)
		if b.incToken {
			t, err := ip.pstack.Pop()
			if err != nil {
				ip.rstack.PopN(2)
				return err
			}
			v, err := valueOf(t)
			if err != nil {
				ip.rstack.PopN(2)
				return err
			}
			inc = v.Int32()
		}
		idx += inc
		ip.rstack.Pop()
		ip.rstack.Push(ValueToken{Value: Int(idx)})
	}
	ip.rstack.PopN(2)
	return nil
}

// ifBuiltin implements IF [ELSE] THEN. It never accepts LEAVE -- it has no
// loop to break out of -- but still participates in the block-execution
// stack so a LEAVE nested inside one of its branches can walk past it to
// an enclosing DO or BEGIN.
type ifBuiltin struct {
	ifTokens, elseTokens []Token
}

func (b *ifBuiltin) Name() string          { return "IF" }
func (b *ifBuiltin) Clone() modifierBuiltin { return &ifBuiltin{} }
func (b *ifBuiltin) AcceptsLeave() bool    { return false }
func (b *ifBuiltin) SetLeave()             {}

func (b *ifBuiltin) ReadModifier(ip *Interp) (Token, error) {
	ifToks, term, err := ip.readBlockUntil("ELSE", "THEN")
	if err == io.ErrUnexpectedEOF {
		return nil, errUnterminatedIF
	}
	if err != nil {
		return nil, err
	}
	b.ifTokens = ifToks
	if strings.EqualFold(term, "THEN") {
		return BuiltinToken{Builtin: b}, nil
	}
	elseToks, _, err := ip.readBlockUntil("THEN")
	if err == io.ErrUnexpectedEOF {
		return nil, errUnterminatedIF
	}
	if err != nil {
		return nil, err
	}
	b.elseTokens = elseToks
	return BuiltinToken{Builtin: b}, nil
}

func (b *ifBuiltin) Exec(ip *Interp) error {
	cond, err := ip.pstack.Pop()
	if err != nil {
		return err
	}
	truthy, err := tokenTruthy(cond)
	if err != nil {
		return err
	}
	ip.blocks.Push(b)
	defer ip.blocks.Pop()
	if truthy {
		return ip.execTokens(b.ifTokens)
	}
	return ip.execTokens(b.elseTokens)
}

// beginBuiltin implements BEGIN ... UNTIL and BEGIN ... WHILE ... REPEAT.
type beginBuiltin struct {
	tokens, whileTokens []Token
	isUntil, isWhile    bool
	leave               bool
}

func (b *beginBuiltin) Name() string          { return "BEGIN" }
func (b *beginBuiltin) Clone() modifierBuiltin { return &beginBuiltin{} }
func (b *beginBuiltin) AcceptsLeave() bool    { return true }
func (b *beginBuiltin) SetLeave()             { b.leave = true }

func (b *beginBuiltin) ReadModifier(ip *Interp) (Token, error) {
	for {
		word, ok := ip.readWord()
		if !ok {
			return nil, errMissingWord
		}
		switch {
		case strings.EqualFold(word, "UNTIL"):
			b.isUntil = true
			return BuiltinToken{Builtin: b}, nil
		case strings.EqualFold(word, "WHILE"):
			b.whileTokens = b.tokens
			b.tokens = nil
			b.isWhile = true
		case strings.EqualFold(word, "REPEAT"):
			if !b.isWhile {
				return nil, errMissingWHILE
			}
			return BuiltinToken{Builtin: b}, nil
		default:
			tok, err := ip.parseWord(word)
			if err != nil {
				return nil, err
			}
			b.tokens = appendToken(b.tokens, tok)
		}
	}
}

func (b *beginBuiltin) Exec(ip *Interp) error {
	ip.blocks.Push(b)
	defer ip.blocks.Pop()
	if b.isUntil {
		for {
			if err := ip.execTokens(b.tokens); err != nil {
				return err
			}
			if b.leave {
				b.leave = false
				return nil
			}
			t, err := ip.pstack.Pop()
			if err != nil {
				return err
			}
			truthy, err := tokenTruthy(t)
			if err != nil {
				return err
			}
			if truthy {
				return nil
			}
		}
	}
	for {
		if err := ip.execTokens(b.whileTokens); err != nil {
			return err
		}
		if b.leave {
			b.leave = false
			return nil
		}
		t, err := ip.pstack.Pop()
		if err != nil {
			return err
		}
		truthy, err := tokenTruthy(t)
		if err != nil {
			return err
		}
		if truthy {
			return nil
		}
		if err := ip.execTokens(b.tokens); err != nil {
			return err
		}
		if b.leave {
			b.leave = false
			return nil
		}
	}
}

// doesBuiltin implements DOES>: it is read inside the body of a defining
// word, capturing the tokens up to (but not consuming) the terminating
// `;`, and attaches them to whatever variable is current when it runs.
type doesBuiltin struct {
	tokens []Token
}

func (b *doesBuiltin) Name() string          { return "DOES>" }
func (b *doesBuiltin) Clone() modifierBuiltin { return &doesBuiltin{} }

func (b *doesBuiltin) ReadModifier(ip *Interp) (Token, error) {
	var tokens []Token
	for {
		snap := ip.in.Snapshot()
		word, ok := ip.readWord()
		if !ok {
			return nil, errMissingWord
		}
		if word == ";" {
			ip.in.Restore(snap)
			return BuiltinToken{Builtin: &doesBuiltin{tokens: tokens}}, nil
		}
		tok, err := ip.parseWord(word)
		if err != nil {
			return nil, err
		}
		tokens = appendToken(tokens, tok)
	}
}

func (b *doesBuiltin) Exec(ip *Interp) error {
	if ip.currentVar == nil {
		return errNoCurrentVar
	}
	ip.currentVar.Does = b.tokens
	return nil
}

// colonBuiltin implements `:`. It is not listed among the declared
// hasModifier built-ins in the lexicon table, but it must consume its
// name and body immediately at the point it is tokenized just the same
// as they do; see the design notes on reconciling this with the table.
type colonBuiltin struct{}

func (b *colonBuiltin) Name() string          { return ":" }
func (b *colonBuiltin) Clone() modifierBuiltin { return &colonBuiltin{} }
func (b *colonBuiltin) Exec(ip *Interp) error { return nil }

func (b *colonBuiltin) ReadModifier(ip *Interp) (Token, error) {
	name, ok := ip.readWord()
	if !ok {
		return nil, errMissingWord
	}
	tokens, _, err := ip.readBlockUntil(";")
	if err == io.ErrUnexpectedEOF {
		return nil, errMissingWord
	}
	if err != nil {
		return nil, err
	}
	ip.dict.DefineProcedure(&Procedure{Name: name, Tokens: tokens})
	return NullToken{}, nil
}
