package tui

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-condform/pkg/form"
	"github.com/goliatone/go-condform/pkg/schema"
	"github.com/goliatone/go-condform/pkg/uischema"
)

// Session walks a form controller in the terminal. Visible fields are
// prompted in declaration order; a field is prompted again while the
// controller reports errors for it.
type Session struct {
	driver        PromptDriver
	stdio         *terminal.Stdio
	ui            *uischema.Document
	logger        *zap.Logger
	theme         Theme
	confirmSubmit bool
}

// New constructs a session with defaults (survey driver, bundled labels).
func New(options ...Option) *Session {
	s := &Session{
		ui:     uischema.Default(),
		logger: zap.NewNop(),
		theme:  Theme{ErrorPrefix: "✗ "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = newSurveyDriver(s.stdio)
	}
	return s
}

// Run prompts until the controller accepts a submission and returns the
// submitted record.
func (s *Session) Run(ctx context.Context, c *form.Controller) (*schema.Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c == nil {
		return nil, ErrNoController
	}

	for {
		if err := s.walk(ctx, c); err != nil {
			return nil, err
		}

		if s.confirmSubmit {
			ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: s.ui.SubmitLabel() + "?", Default: true})
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}

		record, err := c.Submit(ctx)
		if err == nil {
			s.logger.Debug("tui submitted")
			return record, nil
		}
		issues, ok := schema.AsIssues(err)
		if !ok {
			return nil, err
		}
		for _, issue := range issues {
			if err := s.fail(ctx, fmt.Sprintf("%s: %s", s.ui.Label(issue.Path), issue.Message)); err != nil {
				return nil, err
			}
		}
	}
}

func (s *Session) walk(ctx context.Context, c *form.Controller) error {
	for _, field := range form.Fields() {
		if !c.IsVisible(field.Path) {
			continue
		}
		s.logger.Debug("tui prompt", zap.String("path", field.Path), zap.String("kind", string(field.Kind)))

		var err error
		switch field.Kind {
		case form.KindToggle:
			err = s.promptToggle(ctx, c, field)
		case form.KindChoice:
			err = s.promptChoice(ctx, c, field)
		case form.KindList:
			err = s.promptList(ctx, c, field)
		default:
			err = s.promptText(ctx, c, field.Path, s.ui.Label(field.Path), field.Path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) promptText(ctx context.Context, c *form.Controller, path, label, uiPath string) error {
	for {
		current, _ := c.Value(path)
		defaultVal, _ := current.(string)

		response, err := s.driver.Input(ctx, InputConfig{
			Message: label,
			Default: defaultVal,
			Help:    s.help(uiPath),
		})
		if err != nil {
			return err
		}

		errs, err := c.SetField(path, response)
		if err != nil {
			return err
		}
		msgs := errs.For(path)
		if len(msgs) == 0 {
			return nil
		}
		for _, msg := range msgs {
			if err := s.fail(ctx, msg); err != nil {
				return err
			}
		}
	}
}

func (s *Session) promptToggle(ctx context.Context, c *form.Controller, field form.Field) error {
	current, _ := c.Value(field.Path)
	defaultVal, _ := current.(bool)

	resp, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: s.ui.Label(field.Path),
		Default: defaultVal,
		Help:    s.help(field.Path),
	})
	if err != nil {
		return err
	}
	_, err = c.SetField(field.Path, resp)
	return err
}

func (s *Session) promptChoice(ctx context.Context, c *form.Controller, field form.Field) error {
	labels := make([]string, len(field.Options))
	for i, option := range field.Options {
		labels[i] = s.ui.OptionLabel(field.Path, option)
	}
	current, _ := c.Value(field.Path)
	currentVal, _ := current.(string)
	defaultIdx := -1
	for i, option := range field.Options {
		if option == currentVal {
			defaultIdx = i
		}
	}

	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      s.ui.Label(field.Path),
			Options:      labels,
			DefaultIndex: defaultIdx,
			Help:         s.help(field.Path),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Options) {
			if err := s.fail(ctx, fmt.Sprintf("Invalid %s selection", field.Path)); err != nil {
				return err
			}
			continue
		}
		_, err = c.SetField(field.Path, field.Options[idx])
		return err
	}
}

type listAction int

const (
	listAdd listAction = iota
	listRemove
	listDone
)

func (s *Session) promptList(ctx context.Context, c *form.Controller, field form.Field) error {
	label := s.ui.Label(field.Path)
	for i := range c.Languages() {
		if err := s.promptEntry(ctx, c, field, label, i); err != nil {
			return err
		}
	}

	for {
		actions := []listAction{listAdd}
		options := []string{s.addLabel()}
		if c.CanRemoveListEntry() {
			actions = append(actions, listRemove)
			options = append(options, s.removeLabel())
		}
		actions = append(actions, listDone)
		options = append(options, "Done")

		idx, err := s.driver.Select(ctx, SelectConfig{Message: label, Options: options, DefaultIndex: len(options) - 1})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}

		switch actions[idx] {
		case listAdd:
			c.AddListEntry()
			if err := s.promptEntry(ctx, c, field, label, len(c.Languages())-1); err != nil {
				return err
			}
		case listRemove:
			if err := s.removeEntry(ctx, c, label); err != nil {
				return err
			}
		case listDone:
			return nil
		}
	}
}

func (s *Session) promptEntry(ctx context.Context, c *form.Controller, field form.Field, label string, index int) error {
	path := fmt.Sprintf("%s.%d.%s", field.Path, index, field.Item)
	return s.promptText(ctx, c, path, fmt.Sprintf("%s #%d", label, index+1), field.Path)
}

func (s *Session) removeEntry(ctx context.Context, c *form.Controller, label string) error {
	langs := c.Languages()
	options := make([]string, len(langs))
	for i, lang := range langs {
		name := lang.Name
		if strings.TrimSpace(name) == "" {
			name = "(empty)"
		}
		options[i] = fmt.Sprintf("#%d %s", i+1, name)
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: s.removeLabel() + " " + label, Options: options, DefaultIndex: -1})
	if err != nil {
		return err
	}
	if _, removed := c.RemoveListEntry(idx); !removed {
		return s.fail(ctx, "At least one language is required")
	}
	return nil
}

func (s *Session) addLabel() string {
	if s.ui.Form.AddLabel != "" {
		return s.ui.Form.AddLabel
	}
	return "Add"
}

func (s *Session) removeLabel() string {
	if s.ui.Form.RemoveLabel != "" {
		return s.ui.Form.RemoveLabel
	}
	return "Remove"
}

func (s *Session) fail(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.ErrorPrefix+msg)
}

var plainText = bluemonday.StrictPolicy()

// help flattens the sanitised help markup for the terminal.
func (s *Session) help(path string) string {
	raw := s.ui.HelpText(path)
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(raw)))
}
