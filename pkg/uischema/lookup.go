package uischema

import (
	"strings"
	"unicode"
)

// Field returns the configuration for path, or a zero value.
func (d *Document) Field(path string) FieldConfig {
	if d == nil {
		return FieldConfig{}
	}
	return d.Fields[NormalizeFieldPath(path)]
}

// Label returns the configured label for path, falling back to a title-cased
// rendering of the field name.
func (d *Document) Label(path string) string {
	if label := strings.TrimSpace(d.Field(path).Label); label != "" {
		return label
	}
	return humanize(NormalizeFieldPath(path))
}

// HelpText returns the sanitised help text for path.
func (d *Document) HelpText(path string) string {
	return d.Field(path).HelpText
}

// Placeholder returns the configured placeholder for path.
func (d *Document) Placeholder(path string) string {
	return d.Field(path).Placeholder
}

// OptionLabel returns the display label of a choice value.
func (d *Document) OptionLabel(path, value string) string {
	if label, ok := d.Field(path).Options[value]; ok && strings.TrimSpace(label) != "" {
		return label
	}
	return humanize(value)
}

// SubmitLabel returns the label of the submit action.
func (d *Document) SubmitLabel() string {
	if d != nil && d.Form.SubmitLabel != "" {
		return d.Form.SubmitLabel
	}
	return "Submit"
}

// humanize turns camelCase identifiers into words: "companyName" becomes
// "Company name".
func humanize(name string) string {
	if name == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
