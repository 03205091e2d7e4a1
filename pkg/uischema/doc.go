// Package uischema loads presentation metadata for the profile form: titles,
// field labels, help text, placeholders and choice labels. Documents are
// plain JSON or YAML so hosts can relabel the form without touching the
// controller or the validator.
package uischema
