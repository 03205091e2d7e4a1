package html

import (
	"sort"
	"strings"
)

// HiddenField is a hidden input emitted before the visible fields, for
// example a CSRF token.
type HiddenField struct {
	Name  string
	Value string
}

// WithHiddenField adds a hidden input. Empty names are ignored; later
// fields win on name collisions.
func WithHiddenField(name, value string) Option {
	return func(r *Renderer) {
		key := strings.TrimSpace(name)
		if key == "" {
			return
		}
		if r.hidden == nil {
			r.hidden = make(map[string]string)
		}
		r.hidden[key] = value
	}
}

// sortedHiddenFields returns the hidden fields ordered by name for
// deterministic output.
func sortedHiddenFields(fields map[string]string) []map[string]any {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]map[string]any, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]any{"name": name, "value": fields[name]})
	}
	return out
}
