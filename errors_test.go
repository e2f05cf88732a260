package run

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderNonZeroExitNotStreamed(t *testing.T) {
	_, err := NonzeroCaptured(NewOutput("bundle install", 1, []byte("hello world"), nil))

	want := "Command failed `bundle install`\n" +
		"exit status: 1\n" +
		"stdout: hello world\n" +
		"stderr: <empty>"
	require.EqualError(t, err, want)
}

func TestRenderEmptyStreamsAsPlaceholder(t *testing.T) {
	// Whitespace-only output counts as empty for display purposes.
	_, err := NonzeroCaptured(NewOutput("tool", 2, []byte("  \n"), []byte("")))

	require.Contains(t, err.Error(), "stdout: <empty>")
	require.Contains(t, err.Error(), "stderr: <empty>")
}

func TestRenderMissingExitCodeAsUnknown(t *testing.T) {
	_, err := NonzeroCaptured(NewOutput("tool", ExitUnknown, nil, nil))
	require.Contains(t, err.Error(), "exit status: unknown")
}

func TestRenderNonZeroExitAlreadyStreamed(t *testing.T) {
	_, err := NonzeroStreamed(NewOutput("make test", 2, []byte("secret stdout"), []byte("secret stderr")))

	want := "Command failed `make test`\n" +
		"exit status: 2\n" +
		"stdout: <see above>\n" +
		"stderr: <see above>"
	require.EqualError(t, err, want)

	// Suppressed from the rendering, still fully accessible.
	var cmdErr *CmdError
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, "secret stdout", cmdErr.StdoutText())
	require.Equal(t, "secret stderr", cmdErr.StderrText())
}

func TestRenderSystemError(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := newSystemError("./script.sh run", cause)

	require.EqualError(t, err, "Could not run command `./script.sh run`. permission denied")
}

func TestSystemErrorUnwrap(t *testing.T) {
	err := newSystemError("cat mouse.txt", fs.ErrNotExist)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNonZeroExitDoesNotUnwrap(t *testing.T) {
	_, err := NonzeroCaptured(NewOutput("tool", 1, nil, nil))

	var cmdErr *CmdError
	require.ErrorAs(t, err, &cmdErr)
	require.Nil(t, cmdErr.Unwrap())
}

func TestSystemErrorOutputView(t *testing.T) {
	err := newSystemError("becho hello", stderrors.New("executable file not found in $PATH"))

	view := err.Output()
	require.Equal(t, "becho hello", view.Name())
	require.Equal(t, ExitUnknown, view.ExitCode())
	require.Empty(t, view.Stdout())
	require.Equal(t, "executable file not found in $PATH", view.StderrText())
}

func TestSystemErrorAccessors(t *testing.T) {
	err := newSystemError("becho hello", stderrors.New("boom"))

	require.Equal(t, SystemError, err.Kind())
	require.Equal(t, "becho hello", err.Name())
	require.Equal(t, ExitUnknown, err.ExitCode())
	require.Equal(t, "boom", err.StderrText())
}
