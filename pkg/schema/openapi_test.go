package schema_test

import (
	"testing"

	"github.com/goliatone/go-condform/pkg/schema"
)

func TestOpenAPISchema_AgreesWithValidate(t *testing.T) {
	doc := schema.OpenAPISchema()

	cases := []map[string]any{
		{
			"firstName":           "Ann",
			"hasWorkExperience":   false,
			"knowsOtherLanguages": false,
			"educationLevel":      "bachelorsDegree",
			"universityName":      "MIT",
		},
		{
			"firstName":           "Ann",
			"hasWorkExperience":   true,
			"companyName":         "",
			"knowsOtherLanguages": false,
			"educationLevel":      "noFormalEducation",
		},
		{
			"firstName":           "Ann",
			"hasWorkExperience":   true,
			"companyName":         "Acme",
			"knowsOtherLanguages": true,
			"languages":           []any{map[string]any{"name": "English"}},
			"educationLevel":      "highSchoolDiploma",
			"schoolName":          "Central High",
		},
		{
			"firstName":           "",
			"hasWorkExperience":   false,
			"knowsOtherLanguages": false,
			"educationLevel":      "noFormalEducation",
		},
	}

	for idx, values := range cases {
		valid := schema.Validate(values).Valid()
		err := doc.VisitJSON(values)
		if valid != (err == nil) {
			t.Fatalf("case %d: Validate valid=%v, VisitJSON err=%v", idx, valid, err)
		}
	}
}
