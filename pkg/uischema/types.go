package uischema

import "strings"

// Document is the merged UI schema for the form.
type Document struct {
	Source string
	Form   FormConfig
	Fields map[string]FieldConfig
}

// FormConfig captures form-level copy.
type FormConfig struct {
	Title       string `json:"title" yaml:"title"`
	Subtitle    string `json:"subtitle" yaml:"subtitle"`
	SubmitLabel string `json:"submitLabel" yaml:"submitLabel"`
	AddLabel    string `json:"addLabel" yaml:"addLabel"`
	RemoveLabel string `json:"removeLabel" yaml:"removeLabel"`
}

// FieldConfig customises how a single field is presented.
type FieldConfig struct {
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	HelpText    string `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	// Options maps choice values to their display labels.
	Options      map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
	OriginalPath string            `json:"-" yaml:"-"`
}

// NormalizeFieldPath converts UI schema field keys into dotted notation.
// List item keys (`languages[].name`, `languages.*.name`) collapse onto the
// list field itself since every entry shares its presentation.
func NormalizeFieldPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	replacer := strings.NewReplacer(
		"[]", "",
		"[", ".",
		"]", "",
		".*", "",
	)
	normalised := replacer.Replace(trimmed)
	for strings.Contains(normalised, "..") {
		normalised = strings.ReplaceAll(normalised, "..", ".")
	}
	normalised = strings.Trim(normalised, ".")
	if head, _, ok := strings.Cut(normalised, "."); ok {
		return head
	}
	return normalised
}

func cloneFieldConfig(cfg FieldConfig) FieldConfig {
	out := cfg
	if len(cfg.Options) > 0 {
		out.Options = make(map[string]string, len(cfg.Options))
		for k, v := range cfg.Options {
			out.Options[k] = v
		}
	}
	return out
}
