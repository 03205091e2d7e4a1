package form

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-condform/pkg/visibility"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for mutation and submission traces.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSink sets where valid submissions are delivered.
func WithSink(sink Sink) Option {
	return func(c *Controller) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithEvaluator overrides the visibility rule evaluator.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(c *Controller) {
		if evaluator != nil {
			c.evaluator = evaluator
		}
	}
}

// WithExtras exposes host flags to visibility rules under `extras.`.
func WithExtras(extras map[string]any) Option {
	return func(c *Controller) {
		c.extras = cloneValues(extras)
	}
}

// WithInitialValues overlays values on top of the blank defaults. Keys use
// the record's field names; languages may be given as []any of objects or
// []schema.Language.
func WithInitialValues(values map[string]any) Option {
	return func(c *Controller) {
		c.prefill = cloneValues(values)
	}
}

// WithLanguageResetOnWorkExperience controls whether switching
// hasWorkExperience to true replaces the languages list with a single empty
// entry. Enabled by default to match the form's established behaviour.
func WithLanguageResetOnWorkExperience(enabled bool) Option {
	return func(c *Controller) {
		c.resetLanguagesOnWork = enabled
	}
}
