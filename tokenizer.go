package main

import "strings"

func isSpace(r rune) bool { return r == ' ' || r == '\t' }

// readWord reads the next whitespace-delimited run of characters after
// filling the line buffer, then consumes the whitespace that follows it.
// Returns ok=false once every input source is exhausted.
func (ip *Interp) readWord() (string, bool) {
	if !ip.in.FillBuffer() {
		return "", false
	}
	var sb []rune
	for {
		r, ok := ip.in.Look()
		if !ok || isSpace(r) {
			break
		}
		sb = append(sb, r)
		ip.in.Skip()
	}
	ip.in.SkipWhitespace()
	return string(sb), true
}

// readWordWithin behaves like readWord but refuses to read past the given
// floor of input sources, for LOAD's own token loop.
func (ip *Interp) readWordWithin(floor int) (string, bool) {
	if !ip.in.FillBufferWithin(floor) {
		return "", false
	}
	var sb []rune
	for {
		r, ok := ip.in.Look()
		if !ok || isSpace(r) {
			break
		}
		sb = append(sb, r)
		ip.in.Skip()
	}
	ip.in.SkipWhitespace()
	return string(sb), true
}

// modifierBuiltin is implemented by built-ins that declare hasModifier:
// they parse additional input immediately at the point they are
// tokenized, producing the Token that stands in for them (a compiled
// sub-body, a literal string, or a NullToken for an action that already
// ran). Each resolution clones a fresh instance so that nested or
// repeated uses of e.g. DO don't share compiled-body state.
type modifierBuiltin interface {
	Builtin
	Clone() modifierBuiltin
	ReadModifier(ip *Interp) (Token, error)
}

// parseWord resolves a word string against the dictionary: a variable
// (substituting a constant's value, or a reference otherwise), then a
// procedure, then a built-in (running its modifier parse immediately if
// it declares one), then falling back to number parsing, and finally the
// `"<word> ?"` lookup failure.
func (ip *Interp) parseWord(word string) (Token, error) {
	if v, ok := ip.dict.LookupVariable(word); ok {
		if v.Constant {
			return v.CurrentValue(), nil
		}
		return VarRefToken{Var: v, Offset: 0}, nil
	}

	if p, ok := ip.dict.LookupProcedure(word); ok {
		return ProcToken{Proc: p}, nil
	}

	if b, ok := ip.dict.LookupBuiltin(word); ok {
		if m, ok := b.(modifierBuiltin); ok {
			return m.Clone().ReadModifier(ip)
		}
		return BuiltinToken{Builtin: b}, nil
	}

	if val, err := ParseNumber(word, ip.Base()); err == nil {
		return ValueToken{Value: val}, nil
	}

	return nil, unresolvedWordError(word)
}

// nextToken reads one word and resolves it, reporting ok=false at end of
// input rather than an error.
func (ip *Interp) nextToken() (Token, bool, error) {
	word, ok := ip.readWord()
	if !ok {
		return nil, false, nil
	}
	tok, err := ip.parseWord(word)
	return tok, true, err
}

func equalWordFold(word, name string) bool {
	return strings.EqualFold(word, name)
}
