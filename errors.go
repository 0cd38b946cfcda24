package main

import "fmt"

// errKind collects the interpreter's named error taxonomy; most built-ins
// return one of these sentinels or a small wrapping type so the driver can
// print "<message>" consistently.
type errKind string

func (e errKind) Error() string { return string(e) }

const (
	errStackEmpty      = errKind("STACK EMPTY")
	errStackUnderflow  = errKind("STACK UNDERFLOW")
	errInvalidIndex    = errKind("Invalid index")
	errMustBeRefVar    = errKind("must be ref variable")
	errVarMustBeNumber = errKind("var must be number")
	errCmpNotSupported = errKind("cmp not supported")
	errIncNotSupported = errKind("inc not supported")
	errNotImplemented  = errKind("Not implemented")

	errUnterminatedDO = errKind("Unterminated DO")
	errUnterminatedIF = errKind("Unterminated IF")
	errMissingWHILE   = errKind("Missing WHILE")
	errMissingChar    = errKind("Missing char")
	errMissingWord    = errKind("Missing word")

	errNoCurrentVar  = errKind("No current variable")
	errNotInDO       = errKind("Not in DO")
	errNotInDoubleDO = errKind("Not in double nested DO")
	errLeaveNotInDO  = errKind("Leave not inside do")
	errUnknownWord   = errKind("Unknown word")
)

// unresolvedWordError renders the `"<word> ?"` lookup-failure message.
type unresolvedWordError string

func (e unresolvedWordError) Error() string { return fmt.Sprintf("%v ?", string(e)) }

// openError renders `"Failed to open '<path>'"`.
type openError string

func (e openError) Error() string { return fmt.Sprintf("Failed to open '%v'", string(e)) }

// controlSignal distinguishes the ABORT/QUIT non-local exits from ordinary
// errors: the driver catches these rather than reporting them the same way.
type controlSignal int

const (
	signalAbort controlSignal = iota
	signalQuit
)

func (s controlSignal) Error() string {
	if s == signalAbort {
		return "ABORT"
	}
	return "QUIT"
}

// isControlSignal reports whether err is an ABORT/QUIT signal rather than
// an ordinary error, so the session driver can let it unwind silently.
func isControlSignal(err error) (controlSignal, bool) {
	sig, ok := err.(controlSignal)
	return sig, ok
}
