package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTokens(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "Math", []string{"Math"}},
		{"trims each token", " Math , Coding ", []string{"Math", "Coding"}},
		{"collapses duplicates", "Math,Coding,Math", []string{"Math", "Coding"}},
		{"drops empty tokens", "Math,,Coding,", []string{"Math", "Coding"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitTokens(tc.raw))
		})
	}
}

func TestProgramRecordCategories(t *testing.T) {
	rec := ProgramRecord{Category: "Business, Social Sciences"}
	assert.Equal(t, []string{"Business", "Social Sciences"}, rec.Categories())

	single := ProgramRecord{Category: "Engineering"}
	assert.Equal(t, []string{"Engineering"}, single.Categories())
}
