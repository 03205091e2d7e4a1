package schema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-condform/pkg/schema"
)

func TestValidate_DefaultRecordRequiresFirstName(t *testing.T) {
	result := schema.Validate(schema.DefaultValues())

	want := schema.Issues{
		{Path: "firstName", Code: schema.CodeTooSmall, Message: "First name is required"},
	}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if result.Valid() || result.Record != nil {
		t.Fatalf("expected invalid result without record")
	}
}

func TestValidate_CompanyNameRequiredWhenEmployed(t *testing.T) {
	values := schema.DefaultValues()
	values["firstName"] = "Ann"
	values["hasWorkExperience"] = true
	values["companyName"] = ""

	result := schema.Validate(values)

	want := map[string][]string{"companyName": {"Company name is required"}}
	if diff := cmp.Diff(want, result.Issues.ByPath()); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	delete(values, "companyName")
	result = schema.Validate(values)
	if diff := cmp.Diff(want, result.Issues.ByPath()); diff != "" {
		t.Fatalf("missing company name mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_CompanyNameIgnoredWithoutWorkExperience(t *testing.T) {
	for _, company := range []any{nil, "", "Acme", 42} {
		values := schema.DefaultValues()
		values["firstName"] = "Ann"
		if company != nil {
			values["companyName"] = company
		}

		result := schema.Validate(values)
		if !result.Valid() {
			t.Fatalf("companyName=%v: expected valid, got %v", company, result.Issues)
		}
		if _, ok := result.Record.Work.(schema.NoWorkExperience); !ok {
			t.Fatalf("companyName=%v: expected NoWorkExperience arm, got %T", company, result.Record.Work)
		}
	}
}

func TestValidate_LanguageEntriesValidatedIndependently(t *testing.T) {
	values := schema.DefaultValues()
	values["firstName"] = "Ann"
	values["knowsOtherLanguages"] = true
	values["languages"] = []any{
		map[string]any{"name": "English"},
		map[string]any{"name": ""},
	}

	result := schema.Validate(values)

	want := schema.Issues{
		{Path: "languages.1.name", Code: schema.CodeTooSmall, Message: "Language is required"},
	}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if got := result.Issues[0].Pointer(); got != "/languages/1/name" {
		t.Fatalf("pointer = %q", got)
	}
}

func TestValidate_LanguagesShapes(t *testing.T) {
	tests := []struct {
		name      string
		languages any
		omit      bool
		want      map[string][]string
	}{
		{name: "missing list", omit: true, want: map[string][]string{"languages": {"Languages are required"}}},
		{name: "empty list is content valid", languages: []any{}},
		{name: "typed entries", languages: []schema.Language{{Name: "French"}}},
		{name: "not a list", languages: "French", want: map[string][]string{"languages": {"Expected array, received string"}}},
		{
			name:      "entry not an object",
			languages: []any{"French", map[string]any{}},
			want: map[string][]string{
				"languages.0":      {"Expected object, received string"},
				"languages.1.name": {"Language is required"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values := schema.DefaultValues()
			values["firstName"] = "Ann"
			values["knowsOtherLanguages"] = true
			if !tc.omit {
				values["languages"] = tc.languages
			}

			got := schema.Validate(values).Issues.ByPath()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("issues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_LanguagesIgnoredWhenMonolingual(t *testing.T) {
	values := schema.DefaultValues()
	values["firstName"] = "Ann"
	values["languages"] = []any{map[string]any{"name": ""}}

	result := schema.Validate(values)
	if !result.Valid() {
		t.Fatalf("expected valid, got %v", result.Issues)
	}
}

func TestValidate_EducationArms(t *testing.T) {
	// Every combination of level and optional field content: only the field
	// matching the selected level may block validity.
	contents := []string{"", "Somewhere"}
	for _, level := range schema.EducationLevels() {
		for _, school := range contents {
			for _, university := range contents {
				values := schema.DefaultValues()
				values["firstName"] = "Ann"
				values["educationLevel"] = string(level)
				values["schoolName"] = school
				values["universityName"] = university

				var wantValid bool
				switch level {
				case schema.NoFormalEducation:
					wantValid = true
				case schema.HighSchoolDiploma:
					wantValid = school != ""
				case schema.BachelorsDegree:
					wantValid = university != ""
				}

				result := schema.Validate(values)
				if result.Valid() != wantValid {
					t.Fatalf("level=%s school=%q university=%q: valid=%v want %v (%v)",
						level, school, university, result.Valid(), wantValid, result.Issues)
				}
				for _, issue := range result.Issues {
					switch {
					case level == schema.HighSchoolDiploma && issue.Path == "schoolName":
					case level == schema.BachelorsDegree && issue.Path == "universityName":
					default:
						t.Fatalf("level=%s: unexpected issue %+v", level, issue)
					}
				}
				if result.Valid() && result.Record.Education.Level() != level {
					t.Fatalf("resolved level = %s, want %s", result.Record.Education.Level(), level)
				}
			}
		}
	}
}

func TestValidate_BachelorsScenario(t *testing.T) {
	result := schema.Validate(map[string]any{
		"firstName":           "Ann",
		"hasWorkExperience":   false,
		"knowsOtherLanguages": false,
		"educationLevel":      "bachelorsDegree",
		"universityName":      "MIT",
	})
	if !result.Valid() {
		t.Fatalf("expected valid, got %v", result.Issues)
	}

	want := &schema.Record{
		FirstName: "Ann",
		Work:      schema.NoWorkExperience{},
		Languages: schema.Monolingual{},
		Education: schema.Bachelors{UniversityName: "MIT"},
	}
	if diff := cmp.Diff(want, result.Record); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_DiscriminatorErrors(t *testing.T) {
	result := schema.Validate(map[string]any{
		"firstName":         "Ann",
		"hasWorkExperience": "yes",
		"educationLevel":    "phd",
	})

	want := schema.Issues{
		{Path: "hasWorkExperience", Code: schema.CodeInvalidUnionDiscriminator, Message: "Invalid discriminator value. Expected true | false"},
		{Path: "knowsOtherLanguages", Code: schema.CodeInvalidUnionDiscriminator, Message: "Invalid discriminator value. Expected true | false"},
		{Path: "educationLevel", Code: schema.CodeInvalidUnionDiscriminator, Message: "Invalid discriminator value. Expected 'noFormalEducation' | 'highSchoolDiploma' | 'bachelorsDegree'"},
	}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_NilAndTypedInputs(t *testing.T) {
	result := schema.Validate(nil)
	if len(result.Issues) != 4 {
		t.Fatalf("expected base and three discriminator issues, got %v", result.Issues)
	}

	result = schema.Validate(map[string]any{
		"firstName":           7.0,
		"hasWorkExperience":   false,
		"knowsOtherLanguages": false,
		"educationLevel":      schema.HighSchoolDiploma,
		"schoolName":          "Central High",
	})
	want := schema.Issues{
		{Path: "firstName", Code: schema.CodeInvalidType, Message: "Expected string, received number"},
	}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	values := map[string]any{
		"hasWorkExperience":   true,
		"knowsOtherLanguages": true,
		"languages":           []any{map[string]any{"name": ""}, map[string]any{"name": ""}},
		"educationLevel":      "highSchoolDiploma",
	}
	first := schema.Validate(values)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, schema.Validate(values)); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestIssuesError(t *testing.T) {
	issues := schema.Issues{
		{Path: "a", Message: "one"},
		{Path: "b", Message: "two"},
		{Path: "c", Message: "three"},
		{Path: "d", Message: "four"},
	}
	want := "a: one; b: two; c: three; ... (total 4)"
	if got := issues.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	var err error = issues
	got, ok := schema.AsIssues(err)
	if !ok || len(got) != 4 {
		t.Fatalf("AsIssues = %v, %v", got, ok)
	}
}
