package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-condform/pkg/form"
	"github.com/goliatone/go-condform/pkg/schema"
	"github.com/goliatone/go-condform/pkg/uischema"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	messages     []string
	helps        []string
	selectOpts   [][]string
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.messages = append(s.messages, cfg.Message)
	s.helps = append(s.helps, cfg.Help)
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	s.messages = append(s.messages, cfg.Message)
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	s.messages = append(s.messages, cfg.Message)
	s.selectOpts = append(s.selectOpts, cfg.Options)
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newController(t *testing.T, opts ...form.Option) *form.Controller {
	t.Helper()
	c, err := form.New(opts...)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c
}

func TestSession_FullWalk(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Ann", "", "Acme", "English", "Spanish", "MIT"},
		confirm:   []bool{true, true},
		selectIdx: []int{0, 1, 0, 1, 2},
	}
	c := newController(t)

	record, err := New(WithPromptDriver(driver)).Run(context.Background(), c)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := schema.Record{
		FirstName: "Ann",
		Work:      schema.Employed{CompanyName: "Acme"},
		Languages: schema.Multilingual{Languages: []schema.Language{{Name: "Spanish"}}},
		Education: schema.Bachelors{UniversityName: "MIT"},
	}
	if diff := cmp.Diff(want, *record); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"✗ Company name is required"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}

	wantOpts := [][]string{
		{"Add language", "Done"},
		{"Add language", "Remove", "Done"},
		{"#1 English", "#2 Spanish"},
		{"Add language", "Done"},
		{"No Formal Education", "High School Diploma", "Bachelors Degree"},
	}
	if diff := cmp.Diff(wantOpts, driver.selectOpts); diff != "" {
		t.Fatalf("select options mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_SkipsHiddenFields(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Ann"},
		confirm:   []bool{false, false},
		selectIdx: []int{0},
	}
	c := newController(t)

	record, err := New(WithPromptDriver(driver)).Run(context.Background(), c)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if record.FirstName != "Ann" {
		t.Fatalf("unexpected record %#v", record)
	}
	want := []string{"Full Name", "Work Experience?", "Know Other Languages?", "Education Level"}
	if diff := cmp.Diff(want, driver.messages); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_DecliningSubmitWalksAgain(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Ann", "Bob"},
		confirm:   []bool{false, false, false, false, false, true},
		selectIdx: []int{0, 0},
	}
	c := newController(t)

	record, err := New(WithPromptDriver(driver), WithConfirmSubmit(true)).Run(context.Background(), c)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if record.FirstName != "Bob" {
		t.Fatalf("expected second walk to win, got %q", record.FirstName)
	}
}

func TestSession_Abort(t *testing.T) {
	driver := &abortingDriver{stubDriver: stubDriver{}}
	_, err := New(WithPromptDriver(driver)).Run(context.Background(), newController(t))
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	if _, err := New(WithPromptDriver(driver)).Run(context.Background(), nil); !errors.Is(err, ErrNoController) {
		t.Fatalf("expected ErrNoController, got %v", err)
	}
}

type abortingDriver struct {
	stubDriver
}

func (a *abortingDriver) Input(context.Context, InputConfig) (string, error) {
	return "", ErrAborted
}

func TestSession_UsesUISchemaCopy(t *testing.T) {
	overlay, err := uischema.Parse([]byte(`fields:
  firstName:
    label: Name
    helpText: Use your <em>legal</em> name &amp; surname
`), "overlay.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	driver := &stubDriver{
		inputs:    []string{"Ann"},
		confirm:   []bool{false, false},
		selectIdx: []int{0},
	}

	_, err = New(WithPromptDriver(driver), WithUISchema(uischema.Merge(uischema.Default(), overlay))).
		Run(context.Background(), newController(t))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.messages[0] != "Name" {
		t.Fatalf("label override ignored: %q", driver.messages[0])
	}
	if driver.helps[0] != "Use your legal name & surname" {
		t.Fatalf("help not flattened: %q", driver.helps[0])
	}
}
