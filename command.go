package run

import (
	"io"
	"os"
	osexec "os/exec"
	"sort"
)

// Commander is the interface consumed by the runner functions. It pairs a
// process descriptor with the display name used in results and errors.
// NamedCommand is the concrete implementation; tests and callers that build
// descriptors elsewhere can provide their own.
type Commander interface {
	// Name returns the display name of the command.
	Name() string

	// Cmd returns the underlying *exec.Cmd for execution and inspection.
	Cmd() *osexec.Cmd
}

// NamedCommand adapts an *exec.Cmd with an optional display name override.
// The override is metadata only: renaming never changes which executable or
// arguments are invoked.
type NamedCommand struct {
	cmd  *osexec.Cmd
	name string // override; empty means derive via Display
}

// New creates a NamedCommand that owns a fresh descriptor for the given
// program and arguments. The program is looked up via the platform's own
// PATH resolution when the command runs.
func New(program string, args ...string) *NamedCommand {
	return &NamedCommand{cmd: osexec.Command(program, args...)}
}

// Wrap adopts an existing descriptor by reference. No clone is made: the
// caller keeps ownership and may continue to mutate the descriptor until it
// is run. Useful for renaming a command built elsewhere.
func Wrap(cmd *osexec.Cmd) *NamedCommand {
	return &NamedCommand{cmd: cmd}
}

// Rename wraps an existing descriptor with an explicit display name.
// Equivalent to Wrap(cmd).Rename(name).
func Rename(cmd *osexec.Cmd, name string) *NamedCommand {
	return &NamedCommand{cmd: cmd, name: name}
}

// RenameWith wraps an existing descriptor with a display name computed by
// the given function. Equivalent to Wrap(cmd).RenameWith(f).
func RenameWith(cmd *osexec.Cmd, f func(*osexec.Cmd) string) *NamedCommand {
	return &NamedCommand{cmd: cmd, name: f(cmd)}
}

// Name returns the display name: the override if one was set, otherwise the
// auto-generated form from Display. An override is returned verbatim with
// no quoting applied.
func (c *NamedCommand) Name() string {
	if c.name != "" {
		return c.name
	}
	return Display(c.cmd)
}

// Cmd returns the underlying descriptor.
func (c *NamedCommand) Cmd() *osexec.Cmd {
	return c.cmd
}

// Program returns the program token of the descriptor.
func (c *NamedCommand) Program() string {
	return programToken(c.cmd)
}

// Args returns a copy of the argument tokens, excluding the program token.
func (c *NamedCommand) Args() []string {
	if len(c.cmd.Args) <= 1 {
		return nil
	}
	args := make([]string, len(c.cmd.Args)-1)
	copy(args, c.cmd.Args[1:])
	return args
}

// Rename sets the display name override and returns the command for
// chaining. Passing an empty string clears the override.
func (c *NamedCommand) Rename(name string) *NamedCommand {
	c.name = name
	return c
}

// RenameWith sets the display name override to the result of the given
// function, which receives the underlying descriptor.
func (c *NamedCommand) RenameWith(f func(*osexec.Cmd) string) *NamedCommand {
	c.name = f(c.cmd)
	return c
}

// WithDir sets the working directory for the command.
func (c *NamedCommand) WithDir(dir string) *NamedCommand {
	c.cmd.Dir = dir
	return c
}

// WithEnv appends environment variables to the command. Keys are added in
// sorted order so the descriptor's environment is deterministic.
func (c *NamedCommand) WithEnv(env map[string]string) *NamedCommand {
	for _, k := range sortedKeys(env) {
		c.cmd.Env = append(c.cmd.Env, k+"="+env[k])
	}
	return c
}

// WithInheritEnv prepends the parent process environment to the command.
// Variables added later via WithEnv override inherited values.
func (c *NamedCommand) WithInheritEnv() *NamedCommand {
	c.cmd.Env = append(os.Environ(), c.cmd.Env...)
	return c
}

// WithNoColor sets the common color-disabling environment variables on the
// command so tools that honor them emit plain output.
func (c *NamedCommand) WithNoColor() *NamedCommand {
	return c.WithEnv(map[string]string{
		"NO_COLOR":       "1",
		"TERM":           "dumb",
		"CLICOLOR":       "0",
		"CLICOLOR_FORCE": "0",
		"FORCE_COLOR":    "0",
	})
}

// WithStdin sets the reader supplying the command's standard input.
func (c *NamedCommand) WithStdin(r io.Reader) *NamedCommand {
	c.cmd.Stdin = r
	return c
}

// CaptureOutput runs the command to completion with output buffered
// silently. See the package-level CaptureOutput.
func (c *NamedCommand) CaptureOutput() (*NamedOutput, error) {
	return CaptureOutput(c)
}

// StreamOutput runs the command to completion while copying output to the
// given sinks. See the package-level StreamOutput.
func (c *NamedCommand) StreamOutput(stdout, stderr io.Writer) (*NamedOutput, error) {
	return StreamOutput(c, stdout, stderr)
}

func programToken(cmd *osexec.Cmd) string {
	if len(cmd.Args) > 0 {
		return cmd.Args[0]
	}
	return cmd.Path
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
