package expr

import (
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-condform/pkg/visibility"
)

// Evaluator is a small visibility rule evaluator with a compile cache.
//
// Supported syntax:
//   - truthiness: `knowsOtherLanguages`
//   - comparisons: `hasWorkExperience == true`, `educationLevel != "noFormalEducation"`
//   - composition: `a == true && (b || !c)`
//
// Identifiers resolve against visibility.Context.Values using dotted paths
// (list indices included) and against visibility.Context.Extras with the
// `extras.` prefix.
type Evaluator struct {
	mu    sync.Mutex
	cache map[string]*Expression
}

// New returns an Evaluator with an empty cache.
func New() *Evaluator {
	return &Evaluator{cache: make(map[string]*Expression)}
}

var _ visibility.Evaluator = (*Evaluator)(nil)

// Eval compiles rule on first use and evaluates it against ctx. fieldPath is
// only used to annotate errors.
func (e *Evaluator) Eval(fieldPath, rule string, ctx visibility.Context) (bool, error) {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return true, nil
	}

	compiled, err := e.compile(rule)
	if err != nil {
		if fieldPath != "" {
			return false, &RuleError{Field: fieldPath, Rule: rule, Err: err}
		}
		return false, err
	}
	return compiled.Eval(ctx), nil
}

func (e *Evaluator) compile(rule string) (*Expression, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cache == nil {
		e.cache = make(map[string]*Expression)
	}
	if compiled, ok := e.cache[rule]; ok {
		return compiled, nil
	}
	compiled, err := Compile(rule)
	if err != nil {
		return nil, err
	}
	e.cache[rule] = compiled
	return compiled, nil
}

// RuleError reports a rule that failed to compile for a specific field.
type RuleError struct {
	Field string
	Rule  string
	Err   error
}

func (e *RuleError) Error() string {
	return "visibility/expr: field " + e.Field + ": rule " + strconv.Quote(e.Rule) + ": " + e.Err.Error()
}

func (e *RuleError) Unwrap() error { return e.Err }
