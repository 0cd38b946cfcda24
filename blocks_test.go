package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIfElseBranches(t *testing.T) {
	out, _ := runSource(t, "1 IF 10 . ELSE 20 . THEN 0 IF 30 . ELSE 40 . THEN")
	assert.Equal(t, "10 40 ", out)
}

func TestIfWithoutElseFallsThrough(t *testing.T) {
	out, _ := runSource(t, "0 IF 99 . THEN 5 .")
	assert.Equal(t, "5 ", out)
}

func TestUnterminatedDoErrors(t *testing.T) {
	ip := NewInterp(WithNoInit(true))
	_, err := ip.parseWord("DO")
	assert.Equal(t, errUnterminatedDO, err)
}

func TestColonDefinesProcedureImmediately(t *testing.T) {
	ip := NewInterp(WithNoInit(true))
	_, ok := ip.dict.LookupProcedure("DOUBLE")
	require.False(t, ok)

	out, _ := runSource(t, ": DOUBLE 2 * ; 21 DOUBLE .")
	assert.Equal(t, "42 ", out)
}

func TestLoadRunsNestedFileToCompletion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.fs")
	require.NoError(t, os.WriteFile(path, []byte(": TRIPLE 3 * ; 4 TRIPLE .\n"), 0o644))

	out, _ := runSource(t, "LOAD "+path+" 1 .")
	assert.Equal(t, "12 1 ", out)
}

func TestLoadMissingFileReportsOpenError(t *testing.T) {
	out, _ := runSource(t, "LOAD /no/such/file/exists.fs 1 .")
	// The open failure is reported to stderr and the rest of that line is
	// abandoned, same as any other error -- nothing from after LOAD prints.
	assert.Equal(t, "", out)
}

func TestDoesRetriggersEveryTimeVariableIsNamed(t *testing.T) {
	out, _ := runSource(t, ": GREET CREATE 99 , DOES> @ . ; GREET W W W")
	assert.Equal(t, "99 99 ", out)
}
