package models

// TagData printable label view derived from a check-in. Never persisted;
// built fresh per display.
type TagData struct {
	ChildName     string `json:"childName"`
	Code          string `json:"code" example:"AP01P1"`
	AgeGroup      string `json:"ageGroup" example:"3-5"`
	Program       string `json:"program" example:"Session 1"`
	Date          string `json:"date" example:"2025-03-09"`
	Allergies     string `json:"allergies,omitempty"`
	SpecialNeeds  bool   `json:"specialNeeds"`
	GuardianPhone string `json:"guardianPhone,omitempty"`

	// Preview marks a provisional tag whose ordinal is a placeholder. A
	// preview code must never be treated as authoritative.
	Preview bool `json:"preview,omitempty"`
}
