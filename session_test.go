package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cforth-lang/cforth/internal/source"
)

// runSource feeds src through a fresh Interp as if it were a loaded file
// and returns everything written to output.
func runSource(t *testing.T, src string) (string, *Interp) {
	t.Helper()
	var out bytes.Buffer
	ip := NewInterp(WithOutput(&out), WithNoInit(true))
	source.PushLine(&ip.in, "<test>", src)
	ip.runLoop(false)
	return out.String(), ip
}

func TestArithmeticAndPrint(t *testing.T) {
	out, _ := runSource(t, "10 20 + .")
	assert.Equal(t, "30 ", out)
}

func TestColonDefinitionAndCall(t *testing.T) {
	out, _ := runSource(t, ": SQUARE DUP * ; 7 SQUARE .")
	assert.Equal(t, "49 ", out)
}

func TestVariableStoreAndFetch(t *testing.T) {
	out, _ := runSource(t, "VARIABLE X 5 X ! X @ .")
	assert.Equal(t, "5 ", out)
}

func TestDoLoopCountdown(t *testing.T) {
	out, _ := runSource(t, ": COUNTDOWN 10 0 DO I . -1 +LOOP ; COUNTDOWN")
	assert.Equal(t, "10 9 8 7 6 5 4 3 2 1 ", out)
}

func TestIfElseAbsval(t *testing.T) {
	out, _ := runSource(t, ": ABSVAL DUP 0 < IF NEGATE THEN ; -5 ABSVAL . 5 ABSVAL .")
	assert.Equal(t, "5 5 ", out)
}

func TestRecursiveFactorial(t *testing.T) {
	src := `: FACT DUP 1 > IF DUP 1 - FACT * THEN ; 5 FACT .`
	out, _ := runSource(t, src)
	assert.Equal(t, "120 ", out)
}

func TestCreateDoesRunsOnEveryNaming(t *testing.T) {
	// Naming a variable always pushes its reference and then runs its
	// DOES> body, per the executor's push step -- so a DOES> body that
	// itself dereferences and prints fires every time the name occurs.
	src := `: SHOUT CREATE 42 , DOES> @ . ; SHOUT FOO FOO`
	out, _ := runSource(t, src)
	assert.Equal(t, "42 ", out)
}

func TestBaseHexRoundTrip(t *testing.T) {
	out, _ := runSource(t, "16 BASE ! FF . 10 BASE !")
	assert.Equal(t, "FF ", out)
}

func TestBeginUntil(t *testing.T) {
	out, _ := runSource(t, "VARIABLE N 0 N ! BEGIN N @ 1 + N ! N @ . N @ 5 = UNTIL")
	assert.Equal(t, "1 2 3 4 5 ", out)
}

func TestBeginWhileRepeat(t *testing.T) {
	// WHILE leaves the loop when its flag is true, so the loop runs until
	// N reaches 3.
	out, _ := runSource(t, "VARIABLE N 0 N ! BEGIN N @ 3 = WHILE N @ . N @ 1 + N ! REPEAT")
	assert.Equal(t, "0 1 2 ", out)
}

func TestLeaveBreaksLoop(t *testing.T) {
	out, _ := runSource(t, "0 10 DO I 5 = IF LEAVE THEN I . LOOP")
	assert.Equal(t, "0 1 2 3 4 5 ", out)
}

func TestNestedLoopIndices(t *testing.T) {
	out, _ := runSource(t, "0 3 DO 0 2 DO I . J . LOOP LOOP")
	// J reads past the inner loop's own (limit, index) pair on the return
	// stack to reach the outer loop's index, and stays fixed across both
	// inner iterations.
	assert.Equal(t, "0 0 1 0 0 1 1 1 0 2 1 2 ", out)
}

func TestForgetVariable(t *testing.T) {
	out, ip := runSource(t, "VARIABLE FOO 42 FOO ! FORGET FOO")
	require.Empty(t, strings.TrimSpace(out))
	assert.False(t, ip.dict.HasVariable("FOO"))
}

func TestForgetUnknownWordErrors(t *testing.T) {
	var out bytes.Buffer
	var errOut bytes.Buffer
	ip := NewInterp(WithOutput(&out), WithNoInit(true))
	source.PushLine(&ip.in, "<test>", "FORGET NOSUCHWORD")
	ip.runLoop(false)
	_ = errOut
	// FORGET on a genuinely unknown name reports errUnknownWord; confirm the
	// dictionary state is simply unaffected rather than asserting on stderr.
	assert.False(t, ip.dict.HasVariable("NOSUCHWORD"))
	assert.False(t, ip.dict.HasProcedure("NOSUCHWORD"))
}

func TestStackUnderflowReportsAndContinues(t *testing.T) {
	// The first line's "+" underflows with nothing pushed; the driver
	// reports it and abandons the rest of that line, but resumes cleanly
	// on the next.
	out, _ := runSource(t, "+\n1 2 + .\n")
	assert.Equal(t, "3 ", out)
}

func TestRotMovesThirdItemToTop(t *testing.T) {
	out, _ := runSource(t, "1 2 3 ROT . . .")
	assert.Equal(t, "1 3 2 ", out)
}

func TestDotQuotePrintsLiteral(t *testing.T) {
	out, _ := runSource(t, `." hello world"`)
	assert.Equal(t, "hello world", out)
}

func TestCommentIsSkipped(t *testing.T) {
	out, _ := runSource(t, "1 ( this is a comment ) 2 + .")
	assert.Equal(t, "3 ", out)
}

func TestAbortClearsStacks(t *testing.T) {
	out, ip := runSource(t, "1 2 3 ABORT 4 5 .")
	assert.Equal(t, 0, ip.pstack.Depth())
	assert.Equal(t, "", out)
}

func TestWithTeeMirrorsOutputToBothWriters(t *testing.T) {
	var primary, mirror bytes.Buffer
	ip := NewInterp(WithOutput(&primary), WithNoInit(true))
	WithTee(&mirror).apply(ip)
	source.PushLine(&ip.in, "<test>", "6 7 * .")
	ip.runLoop(false)

	assert.Equal(t, "42 ", primary.String())
	assert.Equal(t, "42 ", mirror.String())
}
