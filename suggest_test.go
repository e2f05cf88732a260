package run_test

import (
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/run"
	"github.com/stretchr/testify/require"
)

// fakeLookup is a canned Lookup for exercising MapLookupProblem without
// touching the filesystem.
type fakeLookup struct {
	names []string
	err   error
}

func (f *fakeLookup) Similar(program string) ([]string, error) {
	return f.names, f.err
}

func systemError(t *testing.T) (*run.NamedCommand, error) {
	t.Helper()
	cmd := run.New("becho", "hello")
	_, err := cmd.CaptureOutput()
	require.Error(t, err)
	return cmd, err
}

func TestMapLookupProblemAppendsSuggestions(t *testing.T) {
	cmd, err := systemError(t)

	mapped := run.MapLookupProblem(err, cmd, &fakeLookup{names: []string{"echo", "gecho"}})

	var cmdErr *run.CmdError
	require.ErrorAs(t, mapped, &cmdErr)
	require.Equal(t, run.SystemError, cmdErr.Kind())
	require.Equal(t, "becho hello", cmdErr.Name())

	rendered := mapped.Error()
	require.Contains(t, rendered, "Could not run command `becho hello`.")
	require.Contains(t, rendered, "Similar executables found:\n  echo\n  gecho")
}

func TestMapLookupProblemKeepsOriginalCause(t *testing.T) {
	cmd, err := systemError(t)

	mapped := run.MapLookupProblem(err, cmd, &fakeLookup{names: []string{"echo"}})
	require.ErrorIs(t, mapped, osexec.ErrNotFound)
}

func TestMapLookupProblemNoSuggestions(t *testing.T) {
	cmd, err := systemError(t)

	mapped := run.MapLookupProblem(err, cmd, &fakeLookup{})
	require.Same(t, err, mapped)
}

func TestMapLookupProblemLookupFailure(t *testing.T) {
	cmd, err := systemError(t)

	mapped := run.MapLookupProblem(err, cmd, &fakeLookup{
		err: errors.New(errors.CodeInternal, "lookup exploded"),
	})
	require.Contains(t, mapped.Error(), "Error while searching for similar executables:")
	require.Contains(t, mapped.Error(), "lookup exploded")
}

func TestMapLookupProblemPassesThroughNonSystemErrors(t *testing.T) {
	cmd := run.New("sh", "-c", "exit 1")
	_, err := cmd.CaptureOutput()
	require.Error(t, err)

	mapped := run.MapLookupProblem(err, cmd, &fakeLookup{names: []string{"sh"}})
	require.Same(t, err, mapped)
}

func TestMapLookupProblemNilError(t *testing.T) {
	cmd := run.New("echo")
	require.NoError(t, run.MapLookupProblem(nil, cmd, &fakeLookup{}))
}

func TestPathLookupSimilar(t *testing.T) {
	binA := t.TempDir()
	binB := t.TempDir()
	writeExecutable(t, binA, "gecho")
	writeExecutable(t, binA, "becho2")
	writeExecutable(t, binA, "completely-different")
	writeExecutable(t, binB, "echo")
	writeExecutable(t, binB, "gecho") // duplicate across dirs, reported once

	pathEnv := strings.Join([]string{binA, "/does/not/exist", binB}, string(os.PathListSeparator))
	names, err := run.NewPathLookup(pathEnv).Similar("becho")
	require.NoError(t, err)
	require.Equal(t, []string{"becho2", "echo", "gecho"}, names)
}

func TestPathLookupIgnoresSubdirectories(t *testing.T) {
	bin := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(bin, "becho"), 0o755))

	names, err := run.NewPathLookup(bin).Similar("becho")
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestPathLookupLimitsSuggestions(t *testing.T) {
	bin := t.TempDir()
	for _, name := range []string{"becho1", "becho2", "becho3", "becho4", "becho5", "becho6", "becho7"} {
		writeExecutable(t, bin, name)
	}

	names, err := run.NewPathLookup(bin).Similar("becho")
	require.NoError(t, err)
	require.Len(t, names, 5)
}

func TestPathLookupEmptyPath(t *testing.T) {
	_, err := run.NewPathLookup("").Similar("echo")
	require.Error(t, err)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestPathLookupEmptyProgram(t *testing.T) {
	_, err := run.NewPathLookup(t.TempDir()).Similar("")
	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func writeExecutable(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755))
}
