package run

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/jmgilman/go/errors"
)

// Lookup is the external collaborator that finds executables whose names
// resemble a program that could not be run. Implementations decide where to
// search; PathLookup is the default.
type Lookup interface {
	Similar(program string) ([]string, error)
}

// MapLookupProblem augments a SystemError-class *CmdError with suggestions
// for similarly named executables, which helps debug typos in the program
// name or broken PATH entries. Errors of any other kind, and nil, are
// returned unchanged.
//
// The returned error renders with the suggestions appended to the platform
// error message. Lookup failures are reported inline rather than masking
// the original error.
func MapLookupProblem(err error, c Commander, lookup Lookup) error {
	var cmdErr *CmdError
	if !errors.As(err, &cmdErr) || cmdErr.Kind() != SystemError {
		return err
	}

	var annotation string
	names, lookErr := lookup.Similar(programToken(c.Cmd()))
	switch {
	case lookErr != nil:
		annotation = "Error while searching for similar executables: " + lookErr.Error()
	case len(names) == 0:
		return err
	default:
		annotation = "Similar executables found:\n  " + strings.Join(names, "\n  ")
	}

	return newSystemError(cmdErr.Name(), &annotatedError{
		cause:      cmdErr.Unwrap(),
		annotation: annotation,
	})
}

// annotatedError appends diagnostic text to a platform error while keeping
// the original reachable through Unwrap.
type annotatedError struct {
	cause      error
	annotation string
}

func (e *annotatedError) Error() string {
	return e.cause.Error() + "\n" + e.annotation
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

const (
	// maxSuggestDistance bounds how different a candidate name may be from
	// the program before it stops being a plausible typo.
	maxSuggestDistance = 2

	maxSuggestions = 5
)

// PathLookup is the default Lookup. It scans the directories of a PATH
// listing and ranks entries by edit distance to the program name.
type PathLookup struct {
	pathEnv string
}

// NewPathLookup creates a lookup over the given PATH listing, typically
// os.Getenv("PATH"). The listing is treated as an immutable snapshot.
func NewPathLookup(pathEnv string) *PathLookup {
	return &PathLookup{pathEnv: pathEnv}
}

// Similar returns up to five executable names within edit distance two of
// the program's base name, nearest first. Unreadable PATH entries are
// skipped; an empty program name or an empty PATH is an error.
func (l *PathLookup) Similar(program string) ([]string, error) {
	base := filepath.Base(strings.TrimSpace(program))
	if base == "." || base == string(filepath.Separator) {
		return nil, errors.New(errors.CodeInvalidInput, "program name is empty")
	}

	dirs := filepath.SplitList(l.pathEnv)
	if len(dirs) == 0 {
		return nil, errors.New(errors.CodeNotFound, "PATH is empty, no executables can be found on it")
	}

	type candidate struct {
		name     string
		distance int
	}
	seen := make(map[string]bool)
	var candidates []candidate

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Stale and unreadable PATH entries are common; they are the
			// kind of problem the suggestions exist to surface, not abort on.
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || seen[entry.Name()] {
				continue
			}
			d := levenshtein.ComputeDistance(base, entry.Name())
			if d <= maxSuggestDistance {
				seen[entry.Name()] = true
				candidates = append(candidates, candidate{name: entry.Name(), distance: d})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names, nil
}
