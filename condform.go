// Package condform exposes the conditional profile form from the top-level
// module: the record validator and the form controller that drives it.
package condform

import (
	"github.com/goliatone/go-condform/pkg/form"
	"github.com/goliatone/go-condform/pkg/schema"
)

// Record aliases schema.Record, the resolved submission.
type Record = schema.Record

// Issues aliases schema.Issues.
type Issues = schema.Issues

// Controller aliases form.Controller.
type Controller = form.Controller

// NewController exposes the controller constructor from the top-level module.
func NewController(options ...form.Option) (*form.Controller, error) {
	return form.New(options...)
}

// Validate checks an untyped record and returns its issues, or the resolved
// record when there are none.
func Validate(values map[string]any) (*Record, Issues) {
	result := schema.Validate(values)
	return result.Record, result.Issues
}
