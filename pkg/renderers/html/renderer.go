package html

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	"go.uber.org/zap"

	"github.com/goliatone/go-condform/pkg/form"
	"github.com/goliatone/go-condform/pkg/uischema"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const formTemplate = "form.html.tpl"

// Renderer turns controller snapshots into HTML.
type Renderer struct {
	templates fs.FS
	ui        *uischema.Document
	action    string
	hidden    map[string]string
	logger    *zap.Logger

	tmpl *pongo2.Template
}

// New constructs a renderer using the bundled templates and labels.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		ui:     uischema.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.templates == nil {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("html: open bundled templates: %w", err)
		}
		r.templates = sub
	}

	registerDefaultFilters()

	set := pongo2.NewSet("condform", pongo2.NewFSLoader(r.templates))
	tmpl, err := set.FromFile(formTemplate)
	if err != nil {
		return nil, fmt.Errorf("html: load template %q: %w", formTemplate, err)
	}
	r.tmpl = tmpl
	return r, nil
}

// ContentType reports the media type produced by Render.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the HTML form for snap to out.
func (r *Renderer) Render(snap form.Snapshot, out io.Writer) error {
	if r == nil || r.tmpl == nil {
		return errors.New("html: renderer is nil")
	}
	if out == nil {
		return errors.New("html: writer is nil")
	}

	ctx := r.viewContext(snap)
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return fmt.Errorf("html: execute template %q: %w", formTemplate, err)
	}
	r.logger.Debug("html rendered", zap.Int("bytes", buf.Len()), zap.Strings("visible", snap.Visible))
	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("html: write: %w", err)
	}
	return nil
}

// RenderString renders snap and returns the markup.
func (r *Renderer) RenderString(snap form.Snapshot) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(snap, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) viewContext(snap form.Snapshot) pongo2.Context {
	visible := make(map[string]bool, len(snap.Visible))
	for _, path := range snap.Visible {
		visible[path] = true
	}

	fields := make([]map[string]any, 0, len(snap.Visible))
	for _, field := range form.Fields() {
		if !visible[field.Path] {
			continue
		}
		fields = append(fields, r.fieldView(field, snap))
	}

	return pongo2.Context{
		"form": map[string]any{
			"title":       r.ui.Form.Title,
			"subtitle":    r.ui.Form.Subtitle,
			"action":      r.action,
			"submitLabel": r.ui.SubmitLabel(),
			"addLabel":    fallback(r.ui.Form.AddLabel, "Add"),
			"removeLabel": fallback(r.ui.Form.RemoveLabel, "Remove"),
			"valid":       snap.Valid,
		},
		"fields": fields,
		"hidden": sortedHiddenFields(r.hidden),
	}
}

func (r *Renderer) fieldView(field form.Field, snap form.Snapshot) map[string]any {
	view := map[string]any{
		"path":        field.Path,
		"kind":        string(field.Kind),
		"label":       r.ui.Label(field.Path),
		"help":        r.ui.HelpText(field.Path),
		"placeholder": r.ui.Placeholder(field.Path),
		"errors":      snap.Errors.For(field.Path),
	}

	value := snap.Values[field.Path]
	switch field.Kind {
	case form.KindToggle:
		on, _ := value.(bool)
		view["checked"] = on
	case form.KindChoice:
		current, _ := value.(string)
		options := make([]map[string]any, 0, len(field.Options))
		for _, option := range field.Options {
			options = append(options, map[string]any{
				"value":    option,
				"label":    r.ui.OptionLabel(field.Path, option),
				"selected": option == current,
			})
		}
		view["options"] = options
	case form.KindList:
		items, _ := value.([]any)
		entries := make([]map[string]any, 0, len(items))
		for i, item := range items {
			entry, _ := item.(map[string]any)
			name, _ := entry[field.Item].(string)
			path := fmt.Sprintf("%s.%d.%s", field.Path, i, field.Item)
			entries = append(entries, map[string]any{
				"index":  i,
				"path":   path,
				"value":  name,
				"errors": snap.Errors.For(path),
			})
		}
		view["items"] = entries
		view["canRemove"] = len(items) > 1
	default:
		text, _ := value.(string)
		view["value"] = text
	}
	return view
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return def
}
