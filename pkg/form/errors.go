package form

import (
	"errors"
	"sort"

	"github.com/goliatone/go-condform/pkg/schema"
)

var (
	// ErrUnknownField is returned when a path does not address a settable
	// field.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrInvalidValue is returned when a value has the wrong kind for its
	// field (for example a string for a toggle).
	ErrInvalidValue = errors.New("form: invalid value")
)

// ErrorSet maps dotted field paths to their validation messages.
type ErrorSet map[string][]string

// For returns the messages attached to path.
func (e ErrorSet) For(path string) []string {
	if len(e) == 0 {
		return nil
	}
	return e[NormalizePath(path)]
}

// First returns the first message for path, or "".
func (e ErrorSet) First(path string) string {
	if msgs := e.For(path); len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Has reports whether path carries at least one message.
func (e ErrorSet) Has(path string) bool {
	return len(e.For(path)) > 0
}

// Paths returns the paths carrying errors, sorted.
func (e ErrorSet) Paths() []string {
	out := make([]string, 0, len(e))
	for path := range e {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

func (e ErrorSet) clone() ErrorSet {
	if len(e) == 0 {
		return ErrorSet{}
	}
	out := make(ErrorSet, len(e))
	for path, msgs := range e {
		out[path] = append([]string(nil), msgs...)
	}
	return out
}

func errorSetFromIssues(issues schema.Issues) ErrorSet {
	out := ErrorSet{}
	for _, issue := range issues {
		msgs := out[issue.Path]
		if !containsString(msgs, issue.Message) {
			out[issue.Path] = append(msgs, issue.Message)
		}
	}
	return out
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
