package model

import "github.com/shopspring/decimal"

// ResultMode controls how much of the ranked survivor list is returned.
type ResultMode string

const (
	// ModeBest returns the leading tie group: every survivor whose skill
	// overlap equals the top-ranked record's.
	ModeBest ResultMode = "best"
	// ModeAll returns every survivor, fully sorted.
	ModeAll ResultMode = "all"
)

func (m ResultMode) Valid() bool {
	return m == ModeBest || m == ModeAll
}

// RecommendationOutcome distinguishes a ranked result from the legitimate
// no-match outcome. Neither is an error.
type RecommendationOutcome string

const (
	OutcomeMatch   RecommendationOutcome = "match"
	OutcomeNoMatch RecommendationOutcome = "no_match"
)

// StudentProfile is the input to one recommendation request.
type StudentProfile struct {
	AverageGrade decimal.Decimal `json:"averageGrade"`
	Categories   []string        `json:"categories"`
	Skills       []string        `json:"skills"`
}

// ScoredRecord pairs a surviving catalog record with its overlap counts.
// swagger:model ScoredRecord
type ScoredRecord struct {
	Program         ProgramRecord `json:"program"`
	SkillOverlap    int           `json:"skillOverlap"`
	CategoryOverlap int           `json:"categoryOverlap"`
}

// Recommendation is the ranked response for one profile.
// swagger:model Recommendation
type Recommendation struct {
	Outcome RecommendationOutcome `json:"outcome"`
	Mode    ResultMode            `json:"mode"`
	Matches []ScoredRecord        `json:"matches"`
}
