package run

import (
	osexec "os/exec"
	"strings"
	"unicode"
)

// Display converts a command and its arguments into a user readable string.
// Tokens containing whitespace are wrapped in double quotes; all other
// tokens are emitted as-is, joined with single spaces.
//
// Embedded quote characters are deliberately not escaped. Callers compare
// against and log these exact strings, so the simple rule is part of the
// contract rather than something to correct.
//
// Example:
//
//	name := run.Display(exec.Command("bundle", "install"))
//	// name == "bundle install"
func Display(cmd *osexec.Cmd) string {
	argv := cmd.Args
	if len(argv) == 0 {
		argv = []string{cmd.Path}
	}

	tokens := make([]string, len(argv))
	for i, tok := range argv {
		tokens[i] = quoteToken(tok)
	}
	return strings.Join(tokens, " ")
}

// DisplayWithEnvKeys renders a command like Display, prefixed with selected
// environment variables from the given snapshot. The snapshot uses the
// "KEY=value" form of os.Environ or exec.Cmd.Env and is not consulted
// beyond the requested keys.
//
// Each requested key present in the snapshot renders as KEY="value" (the
// value is always quoted), in the order the keys were requested. Keys
// absent from the snapshot are silently skipped.
//
// Example:
//
//	environ := []string{"RAILS_ENV=production"}
//	name := run.DisplayWithEnvKeys(exec.Command("bundle", "install"), environ, "RAILS_ENV")
//	// name == `RAILS_ENV="production" bundle install`
func DisplayWithEnvKeys(cmd *osexec.Cmd, environ []string, keys ...string) string {
	parts := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		if val, ok := lookupEnviron(environ, key); ok {
			parts = append(parts, key+`="`+val+`"`)
		}
	}
	parts = append(parts, Display(cmd))
	return strings.Join(parts, " ")
}

func quoteToken(tok string) string {
	if strings.IndexFunc(tok, unicode.IsSpace) >= 0 {
		return `"` + tok + `"`
	}
	return tok
}

// lookupEnviron finds key in a KEY=value list. The last assignment wins,
// matching how the OS resolves duplicate entries for a child process.
func lookupEnviron(environ []string, key string) (string, bool) {
	prefix := key + "="
	val, found := "", false
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			val, found = kv[len(prefix):], true
		}
	}
	return val, found
}
