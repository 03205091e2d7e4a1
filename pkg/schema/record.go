package schema

import (
	json "github.com/goccy/go-json"
)

// Field paths understood by the validator and the form controller.
const (
	FieldFirstName           = "firstName"
	FieldHasWorkExperience   = "hasWorkExperience"
	FieldCompanyName         = "companyName"
	FieldKnowsOtherLanguages = "knowsOtherLanguages"
	FieldLanguages           = "languages"
	FieldLanguageName        = "name"
	FieldEducationLevel      = "educationLevel"
	FieldSchoolName          = "schoolName"
	FieldUniversityName      = "universityName"
)

// EducationLevel is the discriminator of the education union.
type EducationLevel string

const (
	NoFormalEducation EducationLevel = "noFormalEducation"
	HighSchoolDiploma EducationLevel = "highSchoolDiploma"
	BachelorsDegree   EducationLevel = "bachelorsDegree"
)

// EducationLevels lists the accepted levels in display order.
func EducationLevels() []EducationLevel {
	return []EducationLevel{NoFormalEducation, HighSchoolDiploma, BachelorsDegree}
}

// Valid reports whether level is one of the known education levels.
func (l EducationLevel) Valid() bool {
	switch l {
	case NoFormalEducation, HighSchoolDiploma, BachelorsDegree:
		return true
	default:
		return false
	}
}

// WorkExperience is the resolved arm of the hasWorkExperience union.
type WorkExperience interface {
	HasWorkExperience() bool
	isWorkExperience()
}

// NoWorkExperience is selected when hasWorkExperience is false.
type NoWorkExperience struct{}

// Employed is selected when hasWorkExperience is true.
type Employed struct {
	CompanyName string
}

func (NoWorkExperience) HasWorkExperience() bool { return false }
func (Employed) HasWorkExperience() bool         { return true }
func (NoWorkExperience) isWorkExperience()       {}
func (Employed) isWorkExperience()               {}

// Language is a single entry of the languages list.
type Language struct {
	Name string `json:"name"`
}

// LanguageKnowledge is the resolved arm of the knowsOtherLanguages union.
type LanguageKnowledge interface {
	KnowsOtherLanguages() bool
	isLanguageKnowledge()
}

// Monolingual is selected when knowsOtherLanguages is false.
type Monolingual struct{}

// Multilingual is selected when knowsOtherLanguages is true.
type Multilingual struct {
	Languages []Language
}

func (Monolingual) KnowsOtherLanguages() bool  { return false }
func (Multilingual) KnowsOtherLanguages() bool { return true }
func (Monolingual) isLanguageKnowledge()       {}
func (Multilingual) isLanguageKnowledge()      {}

// Education is the resolved arm of the educationLevel union.
type Education interface {
	Level() EducationLevel
	isEducation()
}

// NoEducation is selected for noFormalEducation.
type NoEducation struct{}

// HighSchool is selected for highSchoolDiploma.
type HighSchool struct {
	SchoolName string
}

// Bachelors is selected for bachelorsDegree.
type Bachelors struct {
	UniversityName string
}

func (NoEducation) Level() EducationLevel { return NoFormalEducation }
func (HighSchool) Level() EducationLevel  { return HighSchoolDiploma }
func (Bachelors) Level() EducationLevel   { return BachelorsDegree }
func (NoEducation) isEducation()          {}
func (HighSchool) isEducation()           {}
func (Bachelors) isEducation()            {}

// Record is a fully validated form submission.
type Record struct {
	FirstName string
	Work      WorkExperience
	Languages LanguageKnowledge
	Education Education
}

// DefaultValues returns the untyped values a blank form starts with.
func DefaultValues() map[string]any {
	return map[string]any{
		FieldFirstName:           "",
		FieldHasWorkExperience:   false,
		FieldKnowsOtherLanguages: false,
		FieldEducationLevel:      string(NoFormalEducation),
	}
}

type recordJSON struct {
	FirstName           string         `json:"firstName"`
	HasWorkExperience   bool           `json:"hasWorkExperience"`
	CompanyName         *string        `json:"companyName,omitempty"`
	KnowsOtherLanguages bool           `json:"knowsOtherLanguages"`
	Languages           *[]Language    `json:"languages,omitempty"`
	EducationLevel      EducationLevel `json:"educationLevel"`
	SchoolName          *string        `json:"schoolName,omitempty"`
	UniversityName      *string        `json:"universityName,omitempty"`
}

func (r Record) flatten() recordJSON {
	out := recordJSON{FirstName: r.FirstName, EducationLevel: NoFormalEducation}

	if employed, ok := r.Work.(Employed); ok {
		out.HasWorkExperience = true
		name := employed.CompanyName
		out.CompanyName = &name
	}

	if multi, ok := r.Languages.(Multilingual); ok {
		out.KnowsOtherLanguages = true
		langs := append([]Language{}, multi.Languages...)
		out.Languages = &langs
	}

	switch edu := r.Education.(type) {
	case HighSchool:
		out.EducationLevel = HighSchoolDiploma
		name := edu.SchoolName
		out.SchoolName = &name
	case Bachelors:
		out.EducationLevel = BachelorsDegree
		name := edu.UniversityName
		out.UniversityName = &name
	}
	return out
}

// MarshalJSON emits the flat submission object. Only fields of the active
// arms are present.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.flatten())
}

// Values converts the record back into the untyped value map the form
// controller works with.
func (r Record) Values() map[string]any {
	flat := r.flatten()
	out := map[string]any{
		FieldFirstName:           flat.FirstName,
		FieldHasWorkExperience:   flat.HasWorkExperience,
		FieldKnowsOtherLanguages: flat.KnowsOtherLanguages,
		FieldEducationLevel:      string(flat.EducationLevel),
	}
	if flat.CompanyName != nil {
		out[FieldCompanyName] = *flat.CompanyName
	}
	if flat.Languages != nil {
		items := make([]any, 0, len(*flat.Languages))
		for _, lang := range *flat.Languages {
			items = append(items, map[string]any{FieldLanguageName: lang.Name})
		}
		out[FieldLanguages] = items
	}
	if flat.SchoolName != nil {
		out[FieldSchoolName] = *flat.SchoolName
	}
	if flat.UniversityName != nil {
		out[FieldUniversityName] = *flat.UniversityName
	}
	return out
}
