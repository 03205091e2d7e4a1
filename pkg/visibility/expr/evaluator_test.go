package expr

import (
	"errors"
	"testing"

	"github.com/goliatone/go-condform/pkg/visibility"
)

func TestEvaluatorBooleanComparison(t *testing.T) {
	t.Parallel()

	eval := New()
	tests := []struct {
		value any
		set   bool
		want  bool
	}{
		{value: true, set: true, want: true},
		{value: "true", set: true, want: true},
		{value: false, set: true, want: false},
		{set: false, want: false},
	}
	for _, tc := range tests {
		values := map[string]any{}
		if tc.set {
			values["hasWorkExperience"] = tc.value
		}
		ok, err := eval.Eval("companyName", "hasWorkExperience == true", visibility.Context{Values: values})
		if err != nil {
			t.Fatalf("Eval returned error: %v", err)
		}
		if ok != tc.want {
			t.Fatalf("value=%v set=%v: got %v want %v", tc.value, tc.set, ok, tc.want)
		}
	}

	ok, err := eval.Eval("companyName", "hasWorkExperience == false", visibility.Context{})
	if err != nil {
		t.Fatalf("Eval returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected missing boolean to compare equal to false")
	}
}

func TestEvaluatorStringComparison(t *testing.T) {
	t.Parallel()

	type level string
	eval := New()
	ctx := visibility.Context{Values: map[string]any{"educationLevel": level("highSchoolDiploma")}}

	for rule, want := range map[string]bool{
		`educationLevel == "highSchoolDiploma"`: true,
		`educationLevel == 'highSchoolDiploma'`: true,
		`educationLevel == highSchoolDiploma`:   true,
		`educationLevel != "bachelorsDegree"`:   true,
		`educationLevel == "bachelorsDegree"`:   false,
		`missing == ""`:                         false,
		`missing == null`:                       true,
	} {
		ok, err := eval.Eval("schoolName", rule, ctx)
		if err != nil {
			t.Fatalf("%s: %v", rule, err)
		}
		if ok != want {
			t.Fatalf("%s: got %v want %v", rule, ok, want)
		}
	}
}

func TestEvaluatorCompositionAndTruthiness(t *testing.T) {
	t.Parallel()

	eval := New()
	ctx := visibility.Context{
		Values: map[string]any{
			"knowsOtherLanguages": true,
			"languages":           []any{map[string]any{"name": "English"}},
			"count":               3,
		},
		Extras: map[string]any{"preview": true},
	}

	for rule, want := range map[string]bool{
		"knowsOtherLanguages":                                   true,
		"!knowsOtherLanguages":                                  false,
		"languages":                                             true,
		`languages.0.name == "English"`:                         true,
		"languages.3.name":                                      false,
		"count == 3 && knowsOtherLanguages":                     true,
		"count != 3 || extras.preview":                          true,
		"!(knowsOtherLanguages && extras.preview == false)":     true,
		"hasWorkExperience || (count == 3 && !extras.disabled)": true,
	} {
		ok, err := eval.Eval("", rule, ctx)
		if err != nil {
			t.Fatalf("%s: %v", rule, err)
		}
		if ok != want {
			t.Fatalf("%s: got %v want %v", rule, ok, want)
		}
	}
}

func TestEvaluatorEmptyRuleIsVisible(t *testing.T) {
	t.Parallel()

	ok, err := New().Eval("firstName", "  ", visibility.Context{})
	if err != nil || !ok {
		t.Fatalf("Eval = %v, %v", ok, err)
	}
}

func TestEvaluatorErrors(t *testing.T) {
	t.Parallel()

	eval := New()
	for _, rule := range []string{
		"a = true",
		"a && ",
		"(a == true",
		`a == "open`,
		"a == == b",
		"a b",
	} {
		_, err := eval.Eval("field", rule, visibility.Context{})
		if err == nil {
			t.Fatalf("%q: expected error", rule)
		}
		var ruleErr *RuleError
		if !errors.As(err, &ruleErr) || ruleErr.Field != "field" {
			t.Fatalf("%q: expected RuleError, got %T", rule, err)
		}
	}
}

func TestEvaluatorCachesCompiledRules(t *testing.T) {
	t.Parallel()

	eval := New()
	ctx := visibility.Context{Values: map[string]any{"a": true}}
	for i := 0; i < 3; i++ {
		if _, err := eval.Eval("x", "a == true", ctx); err != nil {
			t.Fatalf("Eval: %v", err)
		}
	}
	if len(eval.cache) != 1 {
		t.Fatalf("cache size = %d, want 1", len(eval.cache))
	}
}
