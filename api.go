package main

import "github.com/cforth-lang/cforth/internal/panicerr"

// Run drives a complete session: the init file (unless suppressed by
// construction), then each named file in order, then an interactive
// prompt if no files were given. It runs on a separate goroutine so a
// bug that panics or calls runtime.Goexit deep in a built-in surfaces as
// an ordinary error instead of taking the whole process down.
func (ip *Interp) Run(files []string) error {
	return panicerr.Recover("CForth", func() error {
		if !ip.noInit {
			ip.RunInit()
		}
		if len(files) == 0 {
			ip.RunInteractive()
			return nil
		}
		for _, name := range files {
			if err := ip.RunFile(name); err != nil {
				ip.reportError(err)
			}
		}
		return nil
	})
}
