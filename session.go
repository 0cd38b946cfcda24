package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cforth-lang/cforth/internal/source"
)

// RunInit sources $HOME/.CForth if it exists and opens, matching the
// startup contract: a missing file is silent, a parse failure inside it
// is reported the same way any other error is.
func (ip *Interp) RunInit() {
	home := ip.homeDir
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	if home == "" {
		return
	}
	path := filepath.Join(home, ".CForth")
	f, err := os.Open(path)
	if err != nil {
		return
	}
	source.PushFile(&ip.in, path, f)
	ip.runLoop(false)
}

// RunFile sources name to completion, printing "ok" after each
// successfully parsed top-level line.
func (ip *Interp) RunFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return openError(name)
	}
	source.PushFile(&ip.in, name, f)
	ip.runLoop(true)
	return nil
}

// RunInteractive drives the `> ` prompt loop until EOF or the literal
// input "bye". It never prints "ok".
func (ip *Interp) RunInteractive() {
	for {
		line, err := ip.readLine("> ")
		if err != nil {
			return
		}
		if strings.TrimSpace(line) == "bye" {
			return
		}
		source.PushLine(&ip.in, "<stdin>", line)
		ip.runLoop(false)
	}
}

func (ip *Interp) readLine(prompt string) (string, error) {
	if ip.console != nil {
		return ip.console.ReadLine(prompt)
	}
	ip.ensureStdin()
	var sb []rune
	for {
		r, _, err := ip.stdin.ReadRune()
		if err != nil {
			if len(sb) > 0 {
				return string(sb), nil
			}
			return "", err
		}
		if r == '\n' {
			return string(sb), nil
		}
		sb = append(sb, r)
	}
}

// runLoop reads and executes tokens until the active batch of input is
// exhausted: normally when the pushed source(s) run dry, or early when
// ABORT or QUIT unwinds out of the token it was raised from. One error
// per line is reported to standard error; the driver then discards the
// rest of that line and continues with the next.
func (ip *Interp) runLoop(printOK bool) {
	for {
		tok, ok, err := ip.nextToken()
		if !ok {
			return
		}
		if err != nil {
			ip.reportError(err)
			ip.in.SkipLine()
			continue
		}
		if err := ip.execToken(tok); err != nil {
			if _, isSignal := isControlSignal(err); isSignal {
				return
			}
			ip.reportError(err)
			ip.in.SkipLine()
			continue
		}
		if !ip.in.IsValid() && printOK {
			ip.writeString("ok\n")
		}
	}
}

func (ip *Interp) reportError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
}
