package form

import (
	"github.com/goliatone/go-condform/pkg/schema"
)

// Kind describes the widget family a field needs.
type Kind string

const (
	KindText   Kind = "text"
	KindToggle Kind = "toggle"
	KindChoice Kind = "choice"
	KindList   Kind = "list"
)

// Field declares one top-level form field. The table returned by Fields is
// the single place that states which discriminator controls which group.
type Field struct {
	Path string
	Kind Kind
	// Discriminator marks fields whose value selects a union arm.
	Discriminator bool
	// VisibleWhen is a visibility rule; empty means always visible.
	VisibleWhen string
	// Options lists accepted values for choice fields.
	Options []string
	// Item is the path of the text input inside each list entry.
	Item string
}

var fieldTable = []Field{
	{Path: schema.FieldFirstName, Kind: KindText},
	{Path: schema.FieldHasWorkExperience, Kind: KindToggle, Discriminator: true},
	{Path: schema.FieldCompanyName, Kind: KindText, VisibleWhen: schema.FieldHasWorkExperience + " == true"},
	{Path: schema.FieldKnowsOtherLanguages, Kind: KindToggle, Discriminator: true},
	{Path: schema.FieldLanguages, Kind: KindList, VisibleWhen: schema.FieldKnowsOtherLanguages + " == true", Item: schema.FieldLanguageName},
	{Path: schema.FieldEducationLevel, Kind: KindChoice, Discriminator: true, Options: educationOptions()},
	{Path: schema.FieldSchoolName, Kind: KindText, VisibleWhen: schema.FieldEducationLevel + ` == "` + string(schema.HighSchoolDiploma) + `"`},
	{Path: schema.FieldUniversityName, Kind: KindText, VisibleWhen: schema.FieldEducationLevel + ` == "` + string(schema.BachelorsDegree) + `"`},
}

// Fields returns the form's field table in display order.
func Fields() []Field {
	out := make([]Field, len(fieldTable))
	for i, f := range fieldTable {
		f.Options = append([]string(nil), f.Options...)
		out[i] = f
	}
	return out
}

func lookupField(path string) (Field, bool) {
	for _, f := range fieldTable {
		if f.Path == path {
			return f, true
		}
	}
	return Field{}, false
}

func educationOptions() []string {
	levels := schema.EducationLevels()
	out := make([]string, len(levels))
	for i, level := range levels {
		out[i] = string(level)
	}
	return out
}
