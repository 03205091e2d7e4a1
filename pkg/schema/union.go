package schema

import (
	"fmt"
	"strings"
)

// arm is one shape of a discriminated union. tag is the literal the
// discriminator must equal for the arm to apply.
type arm[T any] struct {
	tag   any
	parse func(values map[string]any) (T, Issues)
}

// union selects exactly one arm by the value stored under key. Only the
// selected arm inspects its sibling fields, so inactive arms never block
// validity.
type union[T any] struct {
	key  string
	arms []arm[T]
}

func (u union[T]) parse(values map[string]any) (T, Issues) {
	var zero T
	if tag, ok := normalizeTag(values[u.key]); ok {
		for _, candidate := range u.arms {
			if candidate.tag == tag {
				return candidate.parse(values)
			}
		}
	}
	return zero, Issues{{
		Path:    u.key,
		Code:    CodeInvalidUnionDiscriminator,
		Message: "Invalid discriminator value. Expected " + u.expected(),
	}}
}

func (u union[T]) expected() string {
	parts := make([]string, 0, len(u.arms))
	for _, candidate := range u.arms {
		if s, ok := candidate.tag.(string); ok {
			parts = append(parts, "'"+s+"'")
			continue
		}
		parts = append(parts, fmt.Sprint(candidate.tag))
	}
	return strings.Join(parts, " | ")
}

// normalizeTag folds typed discriminator values into the comparable literals
// the arms are declared with.
func normalizeTag(raw any) (any, bool) {
	switch v := raw.(type) {
	case EducationLevel:
		return string(v), true
	case bool, string:
		return v, true
	default:
		return nil, false
	}
}

// tags lists the declared discriminator literals of u.
func (u union[T]) tags() []any {
	out := make([]any, 0, len(u.arms))
	for _, candidate := range u.arms {
		out = append(out, candidate.tag)
	}
	return out
}
