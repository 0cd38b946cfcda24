package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/cforth-lang/cforth/internal/logio"
)

func main() {
	var debug, noInit, help bool
	var files []string

	for _, arg := range os.Args[1:] {
		switch arg {
		case "-debug":
			debug = true
		case "-no_init":
			noInit = true
		case "-h", "-help":
			help = true
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "warning: unknown flag %v\n", arg)
				continue
			}
			files = append(files, arg)
		}
	}

	if help {
		printUsage()
		return
	}

	opts := []InterpOption{
		WithOutput(os.Stdout),
		WithDebug(debug),
		WithNoInit(noInit),
		WithKeyReader(termKeyReader{}),
	}
	if debug {
		logger := new(logio.Logger)
		logger.SetOutput(nopCloser{os.Stderr})
		opts = append(opts, WithLogf(logger.Leveledf("DEBUG")))
	}
	if len(files) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		if console, err := newReadlineConsole(); err == nil {
			opts = append(opts, WithConsole(console))
		}
	}

	ip := NewInterp(opts...)
	defer ip.Close()

	if err := ip.Run(files); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// nopCloser adapts os.Stdout/os.Stderr, which must not be closed, to
// io.WriteCloser for logio.Logger.SetOutput.
type nopCloser struct{ *os.File }

func (nopCloser) Close() error { return nil }

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: cforth [-debug] [-no_init] [file ...]")
	fmt.Fprintln(os.Stderr, "  with no files, runs an interactive session until EOF or 'bye'")
}

// termKeyReader implements KeyReader over the controlling terminal in
// raw, non-canonical, no-echo mode, restoring terminal state on return
// from every exit path including errors.
type termKeyReader struct{}

func (termKeyReader) ReadKey() (rune, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return readByte()
	}
	defer term.Restore(fd, state)
	return readByte()
}

func readByte() (rune, error) {
	var buf [1]byte
	if _, err := os.Stdin.Read(buf[:]); err != nil {
		return 0, err
	}
	return rune(buf[0]), nil
}

// readlineConsole implements LineEditor over a chzyer/readline instance,
// giving the interactive prompt history and line editing.
type readlineConsole struct {
	rl *readline.Instance
}

func newReadlineConsole() (*readlineConsole, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, err
	}
	return &readlineConsole{rl: rl}, nil
}

func (c *readlineConsole) ReadLine(prompt string) (string, error) {
	c.rl.SetPrompt(prompt)
	return c.rl.Readline()
}

func (c *readlineConsole) Close() error { return c.rl.Close() }
