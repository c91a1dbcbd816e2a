package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Grade bounds for the admission scale used by both datasets and profiles.
var (
	MinAverageGrade = decimal.NewFromFloat(3.0)
	MaxAverageGrade = decimal.NewFromFloat(5.0)
)

// ProgramRecord is one row of the degree catalog, immutable after load.
// swagger:model ProgramRecord
type ProgramRecord struct {
	DegreeName string          `json:"degreeName"`
	Category   string          `json:"category"`
	Skills     []string        `json:"skills"`
	MinGrade   decimal.Decimal `json:"minGrade"`
}

// Categories splits the raw category cell on commas. The datasets carry a
// single category per program today, but the overlap counting tolerates
// multi-category cells the same way the upstream data pipeline did.
func (r ProgramRecord) Categories() []string {
	return SplitTokens(r.Category)
}

// SplitTokens splits a comma-delimited cell into trimmed, deduplicated
// tokens. Empty cells and empty tokens are dropped.
func SplitTokens(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}
