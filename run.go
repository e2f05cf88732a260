package run

import (
	"bytes"
	"errors"
	"io"
	osexec "os/exec"
)

// CaptureOutput runs the command to completion, buffering stdout and stderr
// silently, and classifies the result. The call blocks until the child
// process terminates.
//
// A *CmdError of kind SystemError is returned when the process cannot be
// started or does not run to completion; kind NonZeroExitNotStreamed when
// it completes with a nonzero or missing exit code. On success the returned
// NamedOutput holds the captured bytes.
func CaptureOutput(c Commander) (*NamedOutput, error) {
	out, err := execute(c, nil, nil)
	if err != nil {
		return nil, err
	}
	return NonzeroCaptured(out)
}

// StreamOutput runs the command to completion, copying stdout and stderr
// byte-for-byte to the given sinks while simultaneously buffering them, and
// classifies the result. Both the sinks and the returned buffers see every
// byte; the streams are never collapsed into each other.
//
// A *CmdError of kind SystemError is returned when the process cannot be
// started or does not run to completion; kind NonZeroExitAlreadyStreamed
// when it completes with a nonzero or missing exit code.
func StreamOutput(c Commander, stdout, stderr io.Writer) (*NamedOutput, error) {
	out, err := execute(c, stdout, stderr)
	if err != nil {
		return nil, err
	}
	return NonzeroStreamed(out)
}

// execute runs the descriptor and produces a NamedOutput for any completed
// process, zero exit or not. Only a platform-level failure to run is an
// error here; exit-code classification belongs to the callers.
//
// Nil sinks select captured mode. os/exec services each non-file writer
// from its own copy goroutine, so the two streams drain concurrently and a
// child writing heavily to one cannot deadlock on a full pipe for the
// other. Both goroutines are joined by Run before this returns.
func execute(c Commander, stdoutSink, stderrSink io.Writer) (*NamedOutput, error) {
	name := c.Name()
	cmd := c.Cmd()

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if stdoutSink != nil {
		cmd.Stdout = newTee(&stdoutBuf, stdoutSink)
	}
	if stderrSink != nil {
		cmd.Stderr = newTee(&stderrBuf, stderrSink)
	}

	if err := cmd.Run(); err != nil {
		var exitErr *osexec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, newSystemError(name, err)
		}
		// The process ran and completed; fall through with its state.
	}

	return NewOutput(name, cmd.ProcessState.ExitCode(), stdoutBuf.Bytes(), stderrBuf.Bytes()), nil
}
