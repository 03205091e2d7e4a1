package html

import (
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-condform/pkg/uischema"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithUISchema sets the labels, help text and placeholders.
func WithUISchema(doc *uischema.Document) Option {
	return func(r *Renderer) {
		if doc != nil {
			r.ui = doc
		}
	}
}

// WithTemplatesFS replaces the bundled templates. The filesystem must hold
// form.html.tpl at its root.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		if fsys != nil {
			r.templates = fsys
		}
	}
}

// WithAction sets the form's action attribute.
func WithAction(action string) Option {
	return func(r *Renderer) {
		r.action = strings.TrimSpace(action)
	}
}

// WithLogger sets the renderer logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
