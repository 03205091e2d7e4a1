package schema

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

const (
	msgFirstNameRequired      = "First name is required"
	msgCompanyNameRequired    = "Company name is required"
	msgLanguageRequired       = "Language is required"
	msgLanguagesRequired      = "Languages are required"
	msgSchoolNameRequired     = "School name is required"
	msgUniversityNameRequired = "University name is required"
)

// Result is the outcome of validating a candidate. Record is set only when
// Issues is empty.
type Result struct {
	Record *Record
	Issues Issues
}

// Valid reports whether the candidate matched every union.
func (r Result) Valid() bool {
	return len(r.Issues) == 0
}

var workExperience = union[WorkExperience]{
	key: FieldHasWorkExperience,
	arms: []arm[WorkExperience]{
		{tag: true, parse: func(values map[string]any) (WorkExperience, Issues) {
			name, issues := requiredString(values, FieldCompanyName, msgCompanyNameRequired)
			return Employed{CompanyName: name}, issues
		}},
		{tag: false, parse: func(map[string]any) (WorkExperience, Issues) {
			return NoWorkExperience{}, nil
		}},
	},
}

var languageKnowledge = union[LanguageKnowledge]{
	key: FieldKnowsOtherLanguages,
	arms: []arm[LanguageKnowledge]{
		{tag: true, parse: parseLanguages},
		{tag: false, parse: func(map[string]any) (LanguageKnowledge, Issues) {
			return Monolingual{}, nil
		}},
	},
}

var education = union[Education]{
	key: FieldEducationLevel,
	arms: []arm[Education]{
		{tag: string(NoFormalEducation), parse: func(map[string]any) (Education, Issues) {
			return NoEducation{}, nil
		}},
		{tag: string(HighSchoolDiploma), parse: func(values map[string]any) (Education, Issues) {
			name, issues := requiredString(values, FieldSchoolName, msgSchoolNameRequired)
			return HighSchool{SchoolName: name}, issues
		}},
		{tag: string(BachelorsDegree), parse: func(values map[string]any) (Education, Issues) {
			name, issues := requiredString(values, FieldUniversityName, msgUniversityNameRequired)
			return Bachelors{UniversityName: name}, issues
		}},
	},
}

// Validate checks an untyped candidate against the base object and the three
// unions. All four parts are always evaluated and their issues concatenated
// in declaration order, so partially filled forms report every problem at
// once. Validate has no side effects and does not retain values.
func Validate(values map[string]any) Result {
	if values == nil {
		values = map[string]any{}
	}

	var issues Issues
	firstName, base := requiredString(values, FieldFirstName, msgFirstNameRequired)
	issues = append(issues, base...)

	work, workIssues := workExperience.parse(values)
	issues = append(issues, workIssues...)

	langs, langIssues := languageKnowledge.parse(values)
	issues = append(issues, langIssues...)

	edu, eduIssues := education.parse(values)
	issues = append(issues, eduIssues...)

	if len(issues) > 0 {
		return Result{Issues: issues}
	}
	return Result{Record: &Record{
		FirstName: firstName,
		Work:      work,
		Languages: langs,
		Education: edu,
	}}
}

// ValidateJSON decodes a JSON object and validates it. Malformed JSON or a
// non-object document is reported as an error; schema violations are
// reported through the Result.
func ValidateJSON(data []byte) (Result, error) {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return Result{}, fmt.Errorf("schema: decode candidate: %w", err)
	}
	return Validate(values), nil
}

func parseLanguages(values map[string]any) (LanguageKnowledge, Issues) {
	raw, ok := values[FieldLanguages]
	if !ok {
		return Multilingual{}, Issues{{Path: FieldLanguages, Code: CodeRequired, Message: msgLanguagesRequired}}
	}

	var entries []any
	switch list := raw.(type) {
	case []any:
		entries = list
	case []map[string]any:
		entries = make([]any, len(list))
		for i := range list {
			entries[i] = list[i]
		}
	case []Language:
		entries = make([]any, len(list))
		for i, lang := range list {
			entries[i] = map[string]any{FieldLanguageName: lang.Name}
		}
	default:
		return Multilingual{}, Issues{invalidType(FieldLanguages, "array", raw)}
	}

	var issues Issues
	langs := make([]Language, 0, len(entries))
	for idx, entry := range entries {
		entryPath := joinPath(FieldLanguages, strconv.Itoa(idx))
		obj, ok := entry.(map[string]any)
		if !ok {
			issues = append(issues, invalidType(entryPath, "object", entry))
			continue
		}
		name, nameIssues := requiredString(obj, FieldLanguageName, msgLanguageRequired)
		for _, issue := range nameIssues {
			issue.Path = joinPath(entryPath, issue.Path)
			issues = append(issues, issue)
		}
		langs = append(langs, Language{Name: name})
	}
	return Multilingual{Languages: langs}, issues
}

// requiredString reads a non-empty string. Absence and the empty string share
// the caller's message so the form can show one hint for both.
func requiredString(values map[string]any, key, message string) (string, Issues) {
	raw, ok := values[key]
	if !ok {
		return "", Issues{{Path: key, Code: CodeRequired, Message: message}}
	}
	s, ok := raw.(string)
	if !ok {
		return "", Issues{invalidType(key, "string", raw)}
	}
	if s == "" {
		return "", Issues{{Path: key, Code: CodeTooSmall, Message: message}}
	}
	return s, nil
}
