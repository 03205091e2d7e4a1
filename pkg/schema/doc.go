// Package schema declares the shape of a valid profile form submission and
// validates untyped candidate values against it.
//
// The record is the conjunction of a base object (firstName) and three
// independent discriminated unions: work experience keyed by
// hasWorkExperience, language knowledge keyed by knowsOtherLanguages, and
// education keyed by educationLevel. Each union resolves to a tagged variant
// (WorkExperience, LanguageKnowledge, Education) so callers switch on concrete
// arm types instead of probing optional fields. Fields that belong to an
// inactive arm are ignored by validation and stripped from the resolved
// Record.
//
// Validate never fails as a Go function: problems are reported as Issues keyed
// by dotted field paths (for example "languages.1.name") that presentation
// layers can map to inline messages.
package schema
