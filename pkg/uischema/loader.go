package uischema

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadFS walks fsys and merges every JSON/YAML document it holds, in lexical
// path order. Later documents override earlier ones field by field. A nil
// filesystem yields an empty document.
func LoadFS(fsys fs.FS) (*Document, error) {
	out := &Document{Fields: make(map[string]FieldConfig)}
	if fsys == nil {
		return out, nil
	}

	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("uischema: walk: %w", err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("uischema: read %s: %w", path, err)
		}
		doc, err := Parse(data, path)
		if err != nil {
			return nil, err
		}
		out = Merge(out, doc)
	}
	return out, nil
}

// LoadFile parses a single document from disk.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("uischema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Default returns the bundled document carrying the form's stock copy.
func Default() *Document {
	doc, err := LoadFS(EmbeddedFS())
	if err != nil {
		panic(err)
	}
	return doc
}

type documentFile struct {
	Form   FormConfig             `json:"form" yaml:"form"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

// Parse decodes a JSON or YAML document. source is used in error messages.
func Parse(data []byte, source string) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("uischema: file %s is empty", source)
	}

	var raw documentFile
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = documentFile{}
		if yerr := yaml.Unmarshal(data, &raw); yerr != nil {
			return nil, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
		}
	}
	return normaliseDocument(raw, source)
}

func normaliseDocument(raw documentFile, source string) (*Document, error) {
	doc := &Document{
		Source: source,
		Form:   raw.Form,
		Fields: make(map[string]FieldConfig, len(raw.Fields)),
	}
	for key, cfg := range raw.Fields {
		normalised := NormalizeFieldPath(key)
		if normalised == "" {
			return nil, fmt.Errorf("uischema: file %s field key %q normalises to empty path", source, key)
		}
		if _, exists := doc.Fields[normalised]; exists {
			return nil, fmt.Errorf("uischema: file %s defines duplicate field path %q", source, normalised)
		}
		cloned := cloneFieldConfig(cfg)
		cloned.OriginalPath = key
		cloned.HelpText = sanitizeHelpText(cloned.HelpText)
		doc.Fields[normalised] = cloned
	}
	return doc, nil
}

// Merge returns base with overlay applied. Non-empty overlay values win;
// option labels merge per value.
func Merge(base, overlay *Document) *Document {
	out := &Document{Fields: make(map[string]FieldConfig)}
	for _, doc := range []*Document{base, overlay} {
		if doc == nil {
			continue
		}
		if doc.Source != "" {
			out.Source = doc.Source
		}
		out.Form = mergeForm(out.Form, doc.Form)
		for path, cfg := range doc.Fields {
			out.Fields[path] = mergeField(out.Fields[path], cfg)
		}
	}
	return out
}

func mergeForm(base, overlay FormConfig) FormConfig {
	base.Title = pick(base.Title, overlay.Title)
	base.Subtitle = pick(base.Subtitle, overlay.Subtitle)
	base.SubmitLabel = pick(base.SubmitLabel, overlay.SubmitLabel)
	base.AddLabel = pick(base.AddLabel, overlay.AddLabel)
	base.RemoveLabel = pick(base.RemoveLabel, overlay.RemoveLabel)
	return base
}

func mergeField(base, overlay FieldConfig) FieldConfig {
	out := cloneFieldConfig(base)
	out.Label = pick(out.Label, overlay.Label)
	out.HelpText = pick(out.HelpText, overlay.HelpText)
	out.Placeholder = pick(out.Placeholder, overlay.Placeholder)
	out.OriginalPath = pick(out.OriginalPath, overlay.OriginalPath)
	if len(overlay.Options) > 0 && out.Options == nil {
		out.Options = make(map[string]string, len(overlay.Options))
	}
	for k, v := range overlay.Options {
		out.Options[k] = v
	}
	return out
}

func pick(current, next string) string {
	if strings.TrimSpace(next) != "" {
		return next
	}
	return current
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
