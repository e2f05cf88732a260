package run

import "strings"

// ExitUnknown is the exit code recorded when the process terminated without
// one, for example when it was killed by a signal.
const ExitUnknown = -1

// NamedOutput holds the result of a completed execution along with the
// display name of the command that produced it. It is constructed for every
// process that runs to completion regardless of exit code; deciding whether
// a nonzero code is an error is the classifier's job, not the output's.
type NamedOutput struct {
	name     string
	exitCode int
	stdout   []byte
	stderr   []byte
}

// NewOutput builds a NamedOutput directly. The runner uses it internally;
// it is exported so classification and rendering can be exercised without
// spawning a process. Use ExitUnknown when no exit code was recorded.
func NewOutput(name string, exitCode int, stdout, stderr []byte) *NamedOutput {
	return &NamedOutput{
		name:     name,
		exitCode: exitCode,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Name returns the display name of the command that was run.
func (o *NamedOutput) Name() string {
	return o.name
}

// ExitCode returns the recorded exit code, or ExitUnknown if the process
// terminated without one.
func (o *NamedOutput) ExitCode() int {
	return o.exitCode
}

// Success reports whether the process exited with code zero.
func (o *NamedOutput) Success() bool {
	return o.exitCode == 0
}

// Stdout returns the raw captured standard output.
func (o *NamedOutput) Stdout() []byte {
	return o.stdout
}

// Stderr returns the raw captured standard error.
func (o *NamedOutput) Stderr() []byte {
	return o.stderr
}

// StdoutText returns the captured standard output as a string, with invalid
// UTF-8 sequences replaced by the Unicode replacement character.
func (o *NamedOutput) StdoutText() string {
	return lossyText(o.stdout)
}

// StderrText returns the captured standard error as a string, with invalid
// UTF-8 sequences replaced by the Unicode replacement character.
func (o *NamedOutput) StderrText() string {
	return lossyText(o.stderr)
}

// NonzeroCaptured classifies an output whose bytes were never shown to the
// user. A zero exit code returns the output unchanged; anything else
// returns a *CmdError that includes the full output in its message.
//
// If the output was already streamed to the user, use NonzeroStreamed so
// the error does not repeat it.
func NonzeroCaptured(out *NamedOutput) (*NamedOutput, error) {
	if out.Success() {
		return out, nil
	}
	return nil, &CmdError{kind: NonZeroExitNotStreamed, output: out}
}

// NonzeroStreamed classifies an output whose bytes were already shown to
// the user. A zero exit code returns the output unchanged; anything else
// returns a *CmdError whose message suppresses the bytes to avoid printing
// them twice. The bytes remain available through the error's accessors.
func NonzeroStreamed(out *NamedOutput) (*NamedOutput, error) {
	if out.Success() {
		return out, nil
	}
	return nil, &CmdError{kind: NonZeroExitAlreadyStreamed, output: out}
}

func lossyText(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
