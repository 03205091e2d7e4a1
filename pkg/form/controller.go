package form

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-condform/pkg/schema"
	"github.com/goliatone/go-condform/pkg/visibility"
	"github.com/goliatone/go-condform/pkg/visibility/expr"
)

// Snapshot is the state republished after every mutation.
type Snapshot struct {
	Values  map[string]any
	Visible []string
	Errors  ErrorSet
	Valid   bool
}

// Listener receives a snapshot after each mutation.
type Listener func(Snapshot)

// Controller owns the mutable form state. Every mutation runs the same
// pipeline: apply the change, revalidate the whole record, recompute the
// visible fields and republish to listeners. It is not safe for concurrent
// use.
type Controller struct {
	state     *state
	evaluator visibility.Evaluator
	extras    map[string]any
	sink      Sink
	logger    *zap.Logger
	prefill   map[string]any

	resetLanguagesOnWork bool

	errors  ErrorSet
	issues  schema.Issues
	visible []string
	record  *schema.Record

	listeners map[int]Listener
	nextID    int
}

// New builds a controller holding the default record, overlaid with any
// initial values.
func New(options ...Option) (*Controller, error) {
	c := &Controller{
		evaluator:            expr.New(),
		sink:                 discardSink{},
		logger:               zap.NewNop(),
		resetLanguagesOnWork: true,
		listeners:            make(map[int]Listener),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}

	values := schema.DefaultValues()
	for key, raw := range c.prefill {
		value, err := initialValue(key, raw)
		if err != nil {
			return nil, err
		}
		values[key] = value
	}
	c.state = newState(values)
	c.prefill = nil

	visible, err := c.computeVisible()
	if err != nil {
		return nil, fmt.Errorf("form: evaluate visibility: %w", err)
	}
	c.visible = visible
	c.commit("init")
	return c, nil
}

// SetField stores value at path and returns the republished error set.
// Paths may use dotted, bracket or JSON pointer notation. Hidden fields are
// accepted and kept; they simply do not participate in validation.
func (c *Controller) SetField(path string, value any) (ErrorSet, error) {
	segments := pathSegments(path)
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, path)
	}
	field, ok := lookupField(segments[0])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, path)
	}

	if field.Kind == KindList {
		return c.setListItem(field, segments, value)
	}
	if len(segments) != 1 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, path)
	}

	coerced, err := coerce(field, value)
	if err != nil {
		return nil, err
	}

	previous, _ := c.state.get(field.Path)
	if err := c.state.set(field.Path, coerced); err != nil {
		return nil, err
	}
	c.logger.Debug("form field set", zap.String("path", field.Path), zap.Any("value", coerced))

	if field.Discriminator && !sameValue(previous, coerced) {
		c.discriminatorChanged(field.Path, previous, coerced)
	}
	c.commit("set " + field.Path)
	return c.Errors(), nil
}

func (c *Controller) setListItem(field Field, segments []string, value any) (ErrorSet, error) {
	if len(segments) != 3 || segments[2] != field.Item {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, strings.Join(segments, "."))
	}
	idx, err := strconv.Atoi(segments[1])
	if err != nil || idx < 0 || idx >= len(c.state.list(field.Path)) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, strings.Join(segments, "."))
	}
	text, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a string, got %T", ErrInvalidValue, field.Item, value)
	}
	path := strings.Join(segments, ".")
	if err := c.state.set(path, text); err != nil {
		return nil, err
	}
	c.logger.Debug("form field set", zap.String("path", path), zap.String("value", text))
	c.commit("set " + path)
	return c.Errors(), nil
}

// AddListEntry appends an empty language entry. It is always allowed.
func (c *Controller) AddListEntry() ErrorSet {
	items := append(c.state.list(schema.FieldLanguages), emptyLanguage())
	c.state.setList(schema.FieldLanguages, items)
	c.logger.Debug("language entry added", zap.Int("count", len(items)))
	c.commit("add language")
	return c.Errors()
}

// RemoveListEntry removes the language entry at index. Removing the last
// remaining entry, or an index out of range, is a no-op; the returned flag
// reports whether an entry was removed.
func (c *Controller) RemoveListEntry(index int) (ErrorSet, bool) {
	items := c.state.list(schema.FieldLanguages)
	if len(items) <= 1 || index < 0 || index >= len(items) {
		c.logger.Debug("language entry kept", zap.Int("index", index), zap.Int("count", len(items)))
		return c.Errors(), false
	}
	next := make([]any, 0, len(items)-1)
	next = append(next, items[:index]...)
	next = append(next, items[index+1:]...)
	c.state.setList(schema.FieldLanguages, next)
	c.logger.Debug("language entry removed", zap.Int("index", index), zap.Int("count", len(next)))
	c.commit("remove language")
	return c.Errors(), true
}

// CanRemoveListEntry reports whether RemoveListEntry would remove anything.
func (c *Controller) CanRemoveListEntry() bool {
	return len(c.state.list(schema.FieldLanguages)) > 1
}

// OnDiscriminatorChange stores value on the discriminator field and applies
// the side effects of the switch. It is SetField restricted to
// hasWorkExperience, knowsOtherLanguages and educationLevel.
//
// hasWorkExperience turning from false to true replaces the languages list
// with a single empty entry unless disabled with
// WithLanguageResetOnWorkExperience. Storing the current value again is a
// no-op. Other transitions only change visibility.
func (c *Controller) OnDiscriminatorChange(field string, value any) (ErrorSet, error) {
	path := NormalizePath(field)
	spec, ok := lookupField(path)
	if !ok || !spec.Discriminator {
		return nil, fmt.Errorf("%w: %q is not a discriminator", ErrUnknownField, field)
	}
	return c.SetField(spec.Path, value)
}

func (c *Controller) discriminatorChanged(field string, previous, value any) {
	c.logger.Debug("discriminator changed",
		zap.String("field", field),
		zap.Any("from", previous),
		zap.Any("to", value),
	)
	if field != schema.FieldHasWorkExperience || !c.resetLanguagesOnWork {
		return
	}
	if on, _ := value.(bool); on {
		c.state.setList(schema.FieldLanguages, []any{emptyLanguage()})
		c.logger.Debug("languages reset", zap.String("trigger", field))
	}
}

// VisibleFields returns the fields to render, in declaration order.
func (c *Controller) VisibleFields() []string {
	return append([]string(nil), c.visible...)
}

// IsVisible reports whether the field addressed by path is rendered. Paths
// inside the languages list follow the list's visibility.
func (c *Controller) IsVisible(path string) bool {
	segments := pathSegments(path)
	if len(segments) == 0 {
		return false
	}
	for _, name := range c.visible {
		if name == segments[0] {
			return true
		}
	}
	return false
}

// Submit validates the whole record. Invalid state republishes the errors
// and returns schema.Issues; valid state hands the record to the sink and
// leaves the form untouched.
func (c *Controller) Submit(ctx context.Context) (*schema.Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	c.commit("submit")
	if c.record == nil {
		c.logger.Debug("submit rejected", zap.Int("issues", len(c.issues)))
		return nil, append(schema.Issues(nil), c.issues...)
	}

	record := *c.record
	if err := c.sink.Submit(ctx, record); err != nil {
		return nil, fmt.Errorf("form: submit: %w", err)
	}
	c.logger.Debug("submit accepted", zap.String("firstName", record.FirstName))
	return &record, nil
}

// Subscribe registers l and returns a function removing it.
func (c *Controller) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	return func() { delete(c.listeners, id) }
}

// Values returns a deep copy of the stored values, hidden fields included.
func (c *Controller) Values() map[string]any {
	return c.state.snapshot()
}

// Value returns the value stored at path.
func (c *Controller) Value(path string) (any, bool) {
	value, ok := c.state.get(NormalizePath(path))
	if !ok {
		return nil, false
	}
	return deepCopy(value), true
}

// Errors returns a copy of the current error set.
func (c *Controller) Errors() ErrorSet {
	return c.errors.clone()
}

// ErrorsFor returns the messages attached to path.
func (c *Controller) ErrorsFor(path string) []string {
	return append([]string(nil), c.errors.For(path)...)
}

// Valid reports whether the current values form a valid record.
func (c *Controller) Valid() bool {
	return c.record != nil
}

// Languages returns the language entries in order.
func (c *Controller) Languages() []schema.Language {
	items := c.state.list(schema.FieldLanguages)
	out := make([]schema.Language, 0, len(items))
	for _, item := range items {
		entry, _ := item.(map[string]any)
		name, _ := entry[schema.FieldLanguageName].(string)
		out = append(out, schema.Language{Name: name})
	}
	return out
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Values:  c.state.snapshot(),
		Visible: c.VisibleFields(),
		Errors:  c.Errors(),
		Valid:   c.Valid(),
	}
}

// commit is the revalidate and republish half of every mutation.
func (c *Controller) commit(reason string) {
	if c.visibleNow(schema.FieldLanguages) && len(c.state.list(schema.FieldLanguages)) == 0 {
		c.state.setList(schema.FieldLanguages, []any{emptyLanguage()})
	}

	result := schema.Validate(c.state.values)
	c.errors = errorSetFromIssues(result.Issues)
	c.issues = result.Issues
	c.record = result.Record

	visible, err := c.computeVisible()
	if err != nil {
		c.logger.Warn("visibility evaluation failed", zap.Error(err))
	}
	c.visible = visible

	c.logger.Debug("form revalidated",
		zap.String("reason", reason),
		zap.Bool("valid", result.Valid()),
		zap.Strings("errors", c.errors.Paths()),
		zap.Strings("visible", visible),
	)

	if len(c.listeners) == 0 {
		return
	}
	snap := c.Snapshot()
	for id := 0; id < c.nextID; id++ {
		if l, ok := c.listeners[id]; ok {
			l(snap)
		}
	}
}

// computeVisible evaluates every field's rule. A rule that fails to evaluate
// leaves its field visible and the first error is returned.
func (c *Controller) computeVisible() ([]string, error) {
	ctx := visibility.Context{Values: c.state.values, Extras: c.extras}
	var firstErr error
	out := make([]string, 0, len(fieldTable))
	for _, field := range fieldTable {
		ok, err := c.evaluator.Eval(field.Path, field.VisibleWhen, ctx)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			ok = true
		}
		if ok {
			out = append(out, field.Path)
		}
	}
	return out, firstErr
}

func (c *Controller) visibleNow(path string) bool {
	field, ok := lookupField(path)
	if !ok {
		return false
	}
	visible, err := c.evaluator.Eval(field.Path, field.VisibleWhen, visibility.Context{Values: c.state.values, Extras: c.extras})
	return err == nil && visible
}

func emptyLanguage() map[string]any {
	return map[string]any{schema.FieldLanguageName: ""}
}

func coerce(field Field, value any) (any, error) {
	switch field.Kind {
	case KindToggle:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return b, nil
			}
		}
		return nil, fmt.Errorf("%w: %s expects a boolean, got %v", ErrInvalidValue, field.Path, value)
	case KindChoice:
		switch v := value.(type) {
		case schema.EducationLevel:
			return string(v), nil
		case string:
			return v, nil
		}
		return nil, fmt.Errorf("%w: %s expects a string, got %T", ErrInvalidValue, field.Path, value)
	default:
		text, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a string, got %T", ErrInvalidValue, field.Path, value)
		}
		return text, nil
	}
}

// initialValue converts a prefill entry into the form's stored shape.
func initialValue(key string, raw any) (any, error) {
	field, ok := lookupField(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if field.Kind != KindList {
		return coerce(field, raw)
	}

	switch items := raw.(type) {
	case nil:
		return []any{}, nil
	case []schema.Language:
		out := make([]any, 0, len(items))
		for _, lang := range items {
			out = append(out, map[string]any{schema.FieldLanguageName: lang.Name})
		}
		return out, nil
	case []map[string]any:
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, cloneValues(item))
		}
		return out, nil
	case []any:
		out := make([]any, 0, len(items))
		for _, item := range items {
			entry, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s entries must be objects, got %T", ErrInvalidValue, key, item)
			}
			out = append(out, cloneValues(entry))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s expects a list, got %T", ErrInvalidValue, key, raw)
	}
}

func sameValue(a, b any) bool {
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	default:
		return a == nil && b == nil
	}
}
