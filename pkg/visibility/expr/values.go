package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-condform/pkg/visibility"
)

const extrasPrefix = "extras."

func resolve(ctx visibility.Context, ident string) (any, bool) {
	if len(ident) > len(extrasPrefix) && strings.EqualFold(ident[:len(extrasPrefix)], extrasPrefix) {
		return lookup(ctx.Extras, ident[len(extrasPrefix):])
	}
	return lookup(ctx.Values, ident)
}

func lookup(values map[string]any, path string) (any, bool) {
	if len(values) == 0 || path == "" {
		return nil, false
	}
	// flattened keys such as "cta.headline" win over traversal
	if v, ok := values[path]; ok {
		return v, true
	}

	var current any = values
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

func equal(got, want any) bool {
	switch w := want.(type) {
	case nil:
		return got == nil
	case bool:
		// absent booleans read as false
		b, _ := toBool(got)
		return b == w
	case float64:
		f, ok := toNumber(got)
		return ok && f == w
	case string:
		return got != nil && toString(got) == w
	default:
		return false
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	}
	if f, ok := toNumber(value); ok {
		return f != 0
	}
	return true
}

func toBool(value any) (bool, bool) {
	switch v := value.(type) {
	case nil:
		return false, false
	case bool:
		return v, true
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed, true
		}
	}
	return truthy(value), true
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(value)
	}
}
