package form

import (
	"fmt"
	"strconv"
	"strings"
)

// state stores form values as nested maps and lists addressed by dotted
// paths.
type state struct {
	values map[string]any
}

func newState(prefill map[string]any) *state {
	return &state{values: cloneValues(prefill)}
}

func (s *state) get(path string) (any, bool) {
	current := any(s.values)
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

// set writes value at path. Intermediate containers must already exist except
// for map entries directly under a list item, which keeps list growth an
// explicit operation.
func (s *state) set(path string, value any) error {
	segments := strings.Split(path, ".")
	current := any(s.values)
	for i, segment := range segments {
		last := i == len(segments)-1
		switch node := current.(type) {
		case map[string]any:
			if last {
				node[segment] = value
				return nil
			}
			next, ok := node[segment]
			if !ok {
				next = make(map[string]any)
				node[segment] = next
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return fmt.Errorf("form: index %q out of range in %q", segment, path)
			}
			if last {
				node[idx] = value
				return nil
			}
			if node[idx] == nil {
				node[idx] = make(map[string]any)
			}
			current = node[idx]
		default:
			return fmt.Errorf("form: cannot descend into %T at %q", node, path)
		}
	}
	return nil
}

func (s *state) list(key string) []any {
	items, _ := s.values[key].([]any)
	return items
}

func (s *state) setList(key string, items []any) {
	s.values[key] = items
}

func (s *state) snapshot() map[string]any {
	return cloneValues(s.values)
}

func cloneValues(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = deepCopy(v)
	}
	return out
}

func deepCopy(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return cloneValues(typed)
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = deepCopy(v)
		}
		return clone
	default:
		return typed
	}
}
