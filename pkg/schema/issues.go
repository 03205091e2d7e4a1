package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeRequired                  = "required"
	CodeTooSmall                  = "too_small"
	CodeInvalidType               = "invalid_type"
	CodeInvalidUnionDiscriminator = "invalid_union_discriminator"
)

// Issue is a single field validation failure.
type Issue struct {
	// Path addresses the offending field using dotted segments, list indices
	// included (for example "languages.1.name").
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Pointer renders Path as a JSON pointer ("/languages/1/name").
func (i Issue) Pointer() string {
	if i.Path == "" {
		return "/"
	}
	var b strings.Builder
	for _, segment := range strings.Split(i.Path, ".") {
		b.WriteByte('/')
		segment = strings.ReplaceAll(segment, "~", "~0")
		b.WriteString(strings.ReplaceAll(segment, "/", "~1"))
	}
	return b.String()
}

// Issues collects validation failures and implements error so an invalid
// submission can be returned through ordinary error paths.
type Issues []Issue

// Error summarises the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	var b strings.Builder
	for idx, issue := range iss {
		if idx == maxShown {
			fmt.Fprintf(&b, "; ... (total %d)", len(iss))
			break
		}
		if idx > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", issue.Path, issue.Message)
	}
	return b.String()
}

// ByPath groups messages by field path, preserving issue order.
func (iss Issues) ByPath() map[string][]string {
	if len(iss) == 0 {
		return nil
	}
	out := make(map[string][]string, len(iss))
	for _, issue := range iss {
		out[issue.Path] = append(out[issue.Path], issue.Message)
	}
	return out
}

// AsIssues extracts Issues from err.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func joinPath(segments ...string) string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment != "" {
			out = append(out, segment)
		}
	}
	return strings.Join(out, ".")
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string, EducationLevel:
		return "string"
	case bool:
		return "boolean"
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any, []map[string]any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func invalidType(path, expected string, got any) Issue {
	return Issue{
		Path:    path,
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("Expected %s, received %s", expected, typeName(got)),
	}
}
