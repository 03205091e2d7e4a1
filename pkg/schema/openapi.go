package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPISchema describes the submission shape as an OpenAPI 3 schema: an
// allOf of the base object and one oneOf per discriminated union. It is
// intended for documentation and for clients that validate before posting.
func OpenAPISchema() *openapi3.Schema {
	base := openapi3.NewObjectSchema().
		WithProperty(FieldFirstName, openapi3.NewStringSchema().WithMinLength(1))
	base.Required = []string{FieldFirstName}

	employed := discriminatedObject(FieldHasWorkExperience, openapi3.NewBoolSchema(), true).
		WithProperty(FieldCompanyName, openapi3.NewStringSchema().WithMinLength(1))
	employed.Required = append(employed.Required, FieldCompanyName)
	unemployed := discriminatedObject(FieldHasWorkExperience, openapi3.NewBoolSchema(), false)

	language := openapi3.NewObjectSchema().
		WithProperty(FieldLanguageName, openapi3.NewStringSchema().WithMinLength(1))
	language.Required = []string{FieldLanguageName}
	multilingual := discriminatedObject(FieldKnowsOtherLanguages, openapi3.NewBoolSchema(), true).
		WithProperty(FieldLanguages, openapi3.NewArraySchema().WithItems(language))
	multilingual.Required = append(multilingual.Required, FieldLanguages)
	monolingual := discriminatedObject(FieldKnowsOtherLanguages, openapi3.NewBoolSchema(), false)

	var educationArms []*openapi3.Schema
	for _, tag := range education.tags() {
		level := EducationLevel(tag.(string))
		shape := discriminatedObject(FieldEducationLevel, openapi3.NewStringSchema(), string(level))
		switch level {
		case HighSchoolDiploma:
			shape.WithProperty(FieldSchoolName, openapi3.NewStringSchema().WithMinLength(1))
			shape.Required = append(shape.Required, FieldSchoolName)
		case BachelorsDegree:
			shape.WithProperty(FieldUniversityName, openapi3.NewStringSchema().WithMinLength(1))
			shape.Required = append(shape.Required, FieldUniversityName)
		}
		educationArms = append(educationArms, shape)
	}
	educationSchema := openapi3.NewOneOfSchema(educationArms...)
	educationSchema.Discriminator = &openapi3.Discriminator{PropertyName: FieldEducationLevel}

	out := openapi3.NewAllOfSchema(
		base,
		openapi3.NewOneOfSchema(employed, unemployed),
		openapi3.NewOneOfSchema(multilingual, monolingual),
		educationSchema,
	)
	out.Title = "Profile form submission"
	return out
}

func discriminatedObject(key string, prop *openapi3.Schema, tag any) *openapi3.Schema {
	prop.Enum = []any{tag}
	obj := openapi3.NewObjectSchema().WithProperty(key, prop)
	obj.Required = []string{key}
	return obj
}
