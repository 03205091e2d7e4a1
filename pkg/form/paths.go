package form

import (
	"strings"
)

// NormalizePath converts bracket (`languages[1].name`) and JSON pointer
// (`/languages/1/name`) notations into the dotted form used by the
// controller (`languages.1.name`).
func NormalizePath(path string) string {
	return strings.Join(pathSegments(path), ".")
}

func pathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	clean = strings.TrimPrefix(clean, "#")
	clean = strings.TrimPrefix(clean, "$")
	if clean == "" {
		return nil
	}

	pointer := strings.HasPrefix(clean, "/")
	replacer := strings.NewReplacer("[", ".", "]", "")
	clean = replacer.Replace(clean)

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		if pointer {
			segment = strings.ReplaceAll(segment, "~1", "/")
			segment = strings.ReplaceAll(segment, "~0", "~")
		}
		out = append(out, segment)
	}
	return out
}
