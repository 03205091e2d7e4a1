// Package visibility decides which conditional form fields are shown given
// the current form values.
package visibility

// Evaluator determines whether the field at fieldPath is visible under rule.
// An empty rule means the field is always visible.
type Evaluator interface {
	Eval(fieldPath, rule string, ctx Context) (bool, error)
}

// Context carries the inputs a rule may reference. Values holds the current
// form values (nested maps and lists addressed with dotted paths); Extras
// lets hosts expose flags that are not part of the record, referenced in
// rules with the `extras.` prefix.
type Context struct {
	Values map[string]any
	Extras map[string]any
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(fieldPath, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(fieldPath, rule string, ctx Context) (bool, error) {
	return fn(fieldPath, rule, ctx)
}
