package tui

import (
	"github.com/AlecAivazis/survey/v2/terminal"
	"go.uber.org/zap"

	"github.com/goliatone/go-condform/pkg/uischema"
)

// Theme captures optional prefixes the session applies when printing
// messages. Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	ErrorPrefix string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithStdio points the default survey driver at the given streams.
func WithStdio(stdio terminal.Stdio) Option {
	return func(s *Session) {
		s.stdio = &stdio
	}
}

// WithUISchema sets the labels and help text used for prompts.
func WithUISchema(doc *uischema.Document) Option {
	return func(s *Session) {
		if doc != nil {
			s.ui = doc
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithConfirmSubmit asks for confirmation before submitting. Declining
// walks the form again.
func WithConfirmSubmit(enabled bool) Option {
	return func(s *Session) {
		s.confirmSubmit = enabled
	}
}
