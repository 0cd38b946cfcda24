package main

import (
	"io"
	"io/ioutil"

	"github.com/cforth-lang/cforth/internal/flushio"
)

// InterpOption configures an Interp at construction time, following the
// same small-interface options pattern the session driver's VM used.
type InterpOption interface{ apply(ip *Interp) }

var defaultOptions = InterpOptions(
	WithOutput(ioutil.Discard),
)

// InterpOptions bundles several options into one, applying each in order.
func InterpOptions(opts ...InterpOption) InterpOption { return interpOptions(opts) }

type interpOptions []InterpOption

func (opts interpOptions) apply(ip *Interp) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ip)
		}
	}
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type debugOption bool
type homeOption string
type keyReaderOption struct{ KeyReader }
type consoleOption struct{ LineEditor }
type logfnOption func(mess string, args ...interface{})
type noInitOption bool

// WithOutput directs the interpreter's printed output to w.
func WithOutput(w io.Writer) InterpOption { return outputOption{w} }

// WithTee additionally mirrors output to w, for capturing a transcript
// alongside the primary destination.
func WithTee(w io.Writer) InterpOption { return teeOption{w} }

// WithDebug turns on debug mode, in which each built-in dispatch is traced
// through the WithLogf hook. Pushed and popped tokens are not traced.
func WithDebug(on bool) InterpOption { return debugOption(on) }

// WithHome sets the directory consulted for the `.CForth` init file.
func WithHome(dir string) InterpOption { return homeOption(dir) }

// WithKeyReader supplies the terminal collaborator behind KEY.
func WithKeyReader(k KeyReader) InterpOption { return keyReaderOption{k} }

// WithConsole supplies the readline-style collaborator behind the
// interactive prompt.
func WithConsole(c LineEditor) InterpOption { return consoleOption{c} }

// WithLogf sends the debug trace to logfn while debug mode is on.
func WithLogf(logfn func(mess string, args ...interface{})) InterpOption {
	return logfnOption(logfn)
}

func (o outputOption) apply(ip *Interp) {
	if ip.out != nil {
		ip.out.Flush()
	}
	ip.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(ip *Interp) {
	ip.out = flushio.WriteFlushers(ip.out, flushio.NewWriteFlusher(o.Writer))
}

func (d debugOption) apply(ip *Interp) { ip.debug = bool(d) }

func (h homeOption) apply(ip *Interp) { ip.homeDir = string(h) }

func (k keyReaderOption) apply(ip *Interp) { ip.key = k.KeyReader }

func (c consoleOption) apply(ip *Interp) { ip.console = c.LineEditor }

func (f logfnOption) apply(ip *Interp) { ip.logfn = f }

// WithNoInit suppresses sourcing $HOME/.CForth at the start of Run.
func WithNoInit(on bool) InterpOption { return noInitOption(on) }

func (n noInitOption) apply(ip *Interp) { ip.noInit = bool(n) }
