package models

// LocalizedText holds the French and English variants of a display string.
// French is the reference language of the datasets, so every lookup falls
// back to it before giving up.
type LocalizedText struct {
	FR string `json:"fr"`
	EN string `json:"en"`
}

// In returns the variant for the given two-letter language tag.
// Unknown tags and missing variants fall back to French; a record with no
// French text yields the English one, and an empty value is never an error.
func (t LocalizedText) In(lang string) string {
	if lang == "en" && t.EN != "" {
		return t.EN
	}
	if t.FR != "" {
		return t.FR
	}
	return t.EN
}

// Country is the reference record shared by every topic. It is loaded once
// and is immutable afterwards; merged records copy name, flag and region
// from here, never from the fact side.
type Country struct {
	Code   string        `json:"code"`
	Name   LocalizedText `json:"name"`
	Flag   string        `json:"flag"`
	Region string        `json:"region"`
}
