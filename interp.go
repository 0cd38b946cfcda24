package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cforth-lang/cforth/internal/flushio"
	"github.com/cforth-lang/cforth/internal/runeio"
	"github.com/cforth-lang/cforth/internal/source"
)

// Interp collects all of the interpreter's process-wide state. The design
// keeps this in a single struct, rather than module-level globals, purely
// so that multiple independent sessions can exist in the same process;
// behavior is otherwise identical to a global-state implementation, since
// nothing in the engine runs concurrently (see the concurrency notes).
type Interp struct {
	in  source.Stack
	out flushio.WriteFlusher

	dict *Dictionary

	pstack tokenStack
	rstack tokenStack
	blocks blockStack

	base       *Variable
	debug      bool
	currentVar *Variable
	wordVar    *Variable

	logfn func(mess string, args ...interface{})

	key         KeyReader
	console     LineEditor
	homeDir     string
	initialized bool
	noInit      bool

	closers []io.Closer

	stdin runeio.Reader
}

func (ip *Interp) ensureStdin() {
	if ip.stdin == nil {
		ip.stdin = runeio.NewReader(os.Stdin)
	}
}

// KeyReader is the narrow external collaborator KEY depends on: reading
// one character from the terminal in raw, non-canonical, no-echo mode.
// The core only depends on this interface; main.go supplies a concrete
// implementation backed by golang.org/x/term for an interactive terminal,
// and a plain rune reader otherwise.
type KeyReader interface {
	ReadKey() (rune, error)
}

// LineEditor is the narrow external collaborator behind interactive line
// input: a readline-style prompt-and-edit loop. The core never calls this
// directly -- it is consumed by the session driver to obtain each
// interactively-typed line before pushing it onto the input source stack.
type LineEditor interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewInterp creates an Interp with its dictionary and BASE variable
// initialized; options further configure it before Run.
func NewInterp(opts ...InterpOption) *Interp {
	ip := &Interp{dict: NewDictionary()}
	defaultOptions.apply(ip)
	InterpOptions(opts...).apply(ip)
	ip.base = NewVariable("BASE")
	ip.base.SetCurrentValue(ValueToken{Value: Int(10)})
	ip.dict.DefineVariable(ip.base)
	return ip
}

// Base returns the current radix, clamped to [2,36] on every read.
func (ip *Interp) Base() int {
	v, ok := ip.base.CurrentValue().(ValueToken)
	if !ok {
		return 10
	}
	b := int(v.Value.Int32())
	if b < 2 || b > 36 {
		return 10
	}
	return b
}

func (ip *Interp) logf(mess string, args ...interface{}) {
	if ip.logfn == nil || !ip.debug {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	ip.logfn("%v", mess)
}

// Close closes everything registered in closers, most-recently-registered
// first, and then the readline console. LOAD file handles are not among
// them: the input source stack closes each one when it is exhausted.
func (ip *Interp) Close() (err error) {
	for i := len(ip.closers) - 1; i >= 0; i-- {
		if cerr := ip.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	if ip.console != nil {
		if cerr := ip.console.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (ip *Interp) writeString(s string) error {
	if _, err := ip.out.Write([]byte(s)); err != nil {
		return err
	}
	return ip.out.Flush()
}
