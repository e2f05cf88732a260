package run

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind tags the failure variants of CmdError.
type ErrorKind int

const (
	// SystemError means the process could not be launched or run to
	// completion: missing executable, permission denied, broken pipe.
	SystemError ErrorKind = iota + 1

	// NonZeroExitNotStreamed means the process ran and exited nonzero (or
	// without an exit code) and its output was never shown to the user, so
	// the rendered error includes it.
	NonZeroExitNotStreamed

	// NonZeroExitAlreadyStreamed means the process ran and exited nonzero
	// (or without an exit code) after its output was streamed live, so the
	// rendered error suppresses the bytes to avoid showing them twice.
	NonZeroExitAlreadyStreamed
)

// CmdError is a failed command execution. Every variant carries enough to
// reconstruct a NamedOutput view, so callers can always recover the command
// name and any captured output without re-running the command.
type CmdError struct {
	kind   ErrorKind
	name   string       // SystemError only; other variants use output.name
	err    error        // underlying platform error, SystemError only
	output *NamedOutput // nil for SystemError
}

func newSystemError(name string, err error) *CmdError {
	return &CmdError{kind: SystemError, name: name, err: err}
}

// Error renders the failure for display. The nonzero variants are
// multi-line; the streamed variant replaces the output lines with
// "<see above>" placeholders since the user already saw the bytes.
func (e *CmdError) Error() string {
	switch e.kind {
	case NonZeroExitNotStreamed:
		return fmt.Sprintf("Command failed `%s`\nexit status: %s\nstdout: %s\nstderr: %s",
			e.output.Name(),
			exitLabel(e.output.ExitCode()),
			outOrEmpty(e.output.StdoutText()),
			outOrEmpty(e.output.StderrText()),
		)
	case NonZeroExitAlreadyStreamed:
		return fmt.Sprintf("Command failed `%s`\nexit status: %s\nstdout: <see above>\nstderr: <see above>",
			e.output.Name(),
			exitLabel(e.output.ExitCode()),
		)
	default:
		return fmt.Sprintf("Could not run command `%s`. %v", e.name, e.err)
	}
}

// Unwrap returns the underlying platform error for SystemError failures and
// nil otherwise, keeping the error compatible with errors.Is and errors.As.
func (e *CmdError) Unwrap() error {
	return e.err
}

// Kind returns the failure variant.
func (e *CmdError) Kind() ErrorKind {
	return e.kind
}

// Name returns the display name of the command that failed.
func (e *CmdError) Name() string {
	if e.kind == SystemError {
		return e.name
	}
	return e.output.Name()
}

// ExitCode returns the recorded exit code, or ExitUnknown when the process
// never produced one (SystemError, or termination by signal).
func (e *CmdError) ExitCode() int {
	if e.kind == SystemError {
		return ExitUnknown
	}
	return e.output.ExitCode()
}

// Output converts the error into a NamedOutput view. The nonzero variants
// return the output the process produced. SystemError synthesizes one: no
// stdout, the platform error message as stderr, and an unknown exit code.
func (e *CmdError) Output() *NamedOutput {
	if e.kind == SystemError {
		return NewOutput(e.name, ExitUnknown, nil, []byte(e.err.Error()))
	}
	return e.output
}

// Stdout returns the raw captured standard output, best effort.
func (e *CmdError) Stdout() []byte {
	return e.Output().Stdout()
}

// Stderr returns the raw captured standard error, best effort.
func (e *CmdError) Stderr() []byte {
	return e.Output().Stderr()
}

// StdoutText returns the captured standard output as lossily decoded text.
// Available on every variant, including the streamed one whose rendered
// message hides the bytes.
func (e *CmdError) StdoutText() string {
	return e.Output().StdoutText()
}

// StderrText returns the captured standard error as lossily decoded text.
func (e *CmdError) StderrText() string {
	return e.Output().StderrText()
}

func exitLabel(code int) string {
	if code < 0 {
		return "unknown"
	}
	return strconv.Itoa(code)
}

func outOrEmpty(contents string) string {
	if strings.TrimSpace(contents) == "" {
		return "<empty>"
	}
	return contents
}
