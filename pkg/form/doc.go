// Package form owns the mutable state of the profile form: current values,
// the languages list, derived field visibility, and the error set produced by
// revalidating after every change.
//
// Every mutation runs the same synchronous pipeline: apply the change, apply
// discriminator side effects, revalidate the whole record with
// schema.Validate, recompute visible fields, and notify subscribers. Callers
// therefore observe updated errors as soon as the mutating call returns.
//
// A Controller is meant to be driven by a single presentation layer and is
// not safe for concurrent use.
package form
