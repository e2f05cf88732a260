// Package run augments os/exec with human-readable command names, typed
// failure values, and simultaneous capture/stream of process output.
//
// This package wraps the standard library's os/exec rather than replacing it.
// The NamedCommand struct adapts an *exec.Cmd and implements the Commander
// interface. Following Go best practices, the package returns concrete types
// (NamedCommand, NamedOutput) while accepting interfaces in function
// parameters, making it easy to substitute fakes in tests. Execution is
// always synchronous: a call blocks until the child process terminates.
//
// # Basic Usage
//
// Build a command and run it with output captured:
//
//	cmd := run.New("bundle", "install")
//	out, err := cmd.CaptureOutput()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out.StdoutText())
//
// # Naming
//
// Every command has a display name derived from its program and arguments.
// Tokens containing whitespace are wrapped in double quotes:
//
//	cmd := run.New("sh", "-c", "echo hello")
//	fmt.Println(cmd.Name()) // sh -c "echo hello"
//
// The name can be overridden without changing what is executed, which is
// useful when the full argument list is distracting:
//
//	cmd := run.New("gem", "install", "bundler", "-v", "2.4.1.7").
//		Rename("gem install")
//	fmt.Println(cmd.Name()) // gem install
//
// Selected environment variables can be included in the name:
//
//	cmd := run.New("bundle", "install").WithEnv(map[string]string{
//		"RAILS_ENV": "production",
//	})
//	cmd.RenameWith(func(c *exec.Cmd) string {
//		return run.DisplayWithEnvKeys(c, c.Env, "RAILS_ENV")
//	})
//	fmt.Println(cmd.Name()) // RAILS_ENV="production" bundle install
//
// # Capture and Stream
//
// Captured mode buffers stdout and stderr silently. Streamed mode copies
// every byte to caller-supplied sinks while simultaneously buffering it, so
// output is shown live and still available afterward:
//
//	out, err := cmd.StreamOutput(os.Stdout, os.Stderr)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// The user already saw the output; out.Stdout() still holds it.
//
// The two streams are copied concurrently and never collapsed into each
// other: stdout bytes reach only the stdout sink and buffer, stderr bytes
// only the stderr sink and buffer.
//
// # Error Handling
//
// A nonzero exit is returned as a *CmdError rather than swallowed or
// retried. The error carries the command name, the exit code, and the
// captured output, so callers can always recover diagnostic content:
//
//	out, err := cmd.CaptureOutput()
//	if err != nil {
//		var cmdErr *run.CmdError
//		if errors.As(err, &cmdErr) {
//			fmt.Println(cmdErr.Name())
//			fmt.Println(cmdErr.ExitCode())
//			fmt.Println(cmdErr.StderrText())
//		}
//	}
//
// When output was streamed, rendering the error does not repeat the bytes
// the user already saw; the message shows "<see above>" placeholders while
// the accessors keep returning the literal bytes.
//
// # Wrapping Existing Commands
//
// An *exec.Cmd built elsewhere can be adopted without cloning. Renaming the
// adapter never changes the program or arguments that are invoked:
//
//	c := exec.Command("bin/bundle", "install", "--no-doc")
//	cmd := run.Wrap(c).Rename("bundle install")
//	out, err := cmd.CaptureOutput()
//
// # Suggestions for Missing Executables
//
// When a command cannot be started at all, MapLookupProblem appends
// "similar executable name" suggestions from a PATH listing to the error,
// which helps debug typos and broken PATH entries:
//
//	out, err := cmd.CaptureOutput()
//	if err != nil {
//		err = run.MapLookupProblem(err, cmd, run.NewPathLookup(os.Getenv("PATH")))
//	}
//
// # Testing
//
// Production code uses the concrete *NamedCommand, but the package-level
// CaptureOutput and StreamOutput accept the Commander interface, so tests
// can provide fakes. Classification is exposed separately from execution:
// NonzeroCaptured and NonzeroStreamed operate on a NamedOutput built with
// NewOutput, so success/failure mapping is testable without spawning a
// single process.
package run
