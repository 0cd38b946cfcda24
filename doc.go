/*
Package main implements CForth, an interactive interpreter for a classic
stack-oriented language in the FORTH family.

Source text is supplied from files, from interactive line input, or from
a nested LOAD; the interpreter tokenizes each whitespace-separated word,
resolves it against a dictionary of variables, procedures, and built-in
operations, and either executes it immediately or, inside a `:`
definition, compiles it into a new procedure body.

The bulk of the package is the built-in operator table (builtins*.go),
the block parsers for DO/LOOP, IF/ELSE/THEN, and BEGIN/UNTIL/WHILE/REPEAT
(blocks.go), and the defining-word machinery that lets a running program
mint its own dictionary entries (builtins_define.go). Everything reads
through a single Interp, which an embedder configures with InterpOptions
and drives with Run.
*/
package main
