// Package html renders a form controller snapshot as a server-side HTML
// form using pongo2 templates bundled with the binary. Only visible fields
// are emitted; each carries its current value and inline error messages.
package html
