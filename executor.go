package main

// execToken dispatches one resolved token: pushing it if it is not
// executable (installing it as the current variable and running any
// DOES> body along the way), or invoking its built-in/procedure behavior
// otherwise.
func (ip *Interp) execToken(tok Token) error {
	if tok == nil || tok.IsNull() {
		return nil
	}
	if !tok.Executable() {
		ip.pstack.Push(tok.Copy())
		if ref, ok := tok.(VarRefToken); ok {
			ip.currentVar = ref.Var
			if len(ref.Var.Does) > 0 {
				return ip.execTokens(ref.Var.Does)
			}
		}
		return nil
	}
	switch t := tok.(type) {
	case ProcToken:
		return ip.execTokens(t.Proc.Tokens)
	case BuiltinToken:
		ip.logf("exec %v", t.Builtin.Name())
		return t.Builtin.Exec(ip)
	}
	return nil
}

// execTokens runs a compiled body in order, stopping at the first error
// (including a non-local ABORT/QUIT signal, which simply propagates).
func (ip *Interp) execTokens(tokens []Token) error {
	for _, tok := range tokens {
		if err := ip.execToken(tok); err != nil {
			return err
		}
	}
	return nil
}
