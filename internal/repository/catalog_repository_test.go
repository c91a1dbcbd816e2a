package repository

import (
	"bytes"
	"strings"
	"testing"

	"uni_advisor_backend/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogCSV = `University Degree,Category,Skills,Min Grade
Computer Science,Engineering,"Math, Coding, Math",4.0
Business Administration,Business," Communication ,Economics",3.5
Graphic Design,Arts,,3.2
`

func TestLoadCatalog(t *testing.T) {
	repo, err := LoadCatalog(strings.NewReader(catalogCSV), EncodingUTF8)
	require.NoError(t, err)
	require.Equal(t, 3, repo.Len())

	cs := repo.Records()[0]
	assert.Equal(t, "Computer Science", cs.DegreeName)
	assert.Equal(t, "Engineering", cs.Category)
	// Duplicate skill tokens collapse; whitespace is trimmed.
	assert.Equal(t, []string{"Math", "Coding"}, cs.Skills)
	assert.True(t, cs.MinGrade.Equal(decimal.RequireFromString("4.0")))

	ba := repo.Records()[1]
	assert.Equal(t, []string{"Communication", "Economics"}, ba.Skills)

	// Empty skills cell yields an empty set, not an error.
	assert.Empty(t, repo.Records()[2].Skills)
}

func TestLoadCatalog_MissingColumn(t *testing.T) {
	csv := "University Degree,Category,Min Grade\nCS,Engineering,4.0\n"

	_, err := LoadCatalog(strings.NewReader(csv), EncodingUTF8)
	var schemaErr *util.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Skills", schemaErr.Column)
}

func TestLoadCatalog_BadGrade(t *testing.T) {
	csv := "University Degree,Category,Skills,Min Grade\nCS,Engineering,Math,four\n"

	_, err := LoadCatalog(strings.NewReader(csv), EncodingUTF8)
	var parseErr *util.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Min Grade", parseErr.Column)
	assert.Equal(t, 2, parseErr.Row)
	assert.Equal(t, "four", parseErr.Value)
}

func TestLoadCatalog_Latin1(t *testing.T) {
	// "Ingénierie" with é encoded as Latin-1 0xE9.
	raw := []byte("University Degree,Category,Skills,Min Grade\nG\xe9nie Civil,Ing\xe9nierie,Math,4.1\n")

	repo, err := LoadCatalog(bytes.NewReader(raw), EncodingLatin1)
	require.NoError(t, err)
	require.Equal(t, 1, repo.Len())
	assert.Equal(t, "Génie Civil", repo.Records()[0].DegreeName)
	assert.Equal(t, "Ingénierie", repo.Records()[0].Category)
}

func TestDistinctCategories(t *testing.T) {
	csv := `University Degree,Category,Skills,Min Grade
A,Engineering,Math,4.0
B,Business,Economics,3.5
C,Engineering,Physics,4.2
D,"Business, Social Sciences",Statistics,3.6
`
	repo, err := LoadCatalog(strings.NewReader(csv), EncodingUTF8)
	require.NoError(t, err)

	assert.Equal(t, []string{"Engineering", "Business", "Social Sciences"}, repo.DistinctCategories())
}

func TestSkillsForCategories(t *testing.T) {
	repo, err := LoadCatalog(strings.NewReader(catalogCSV), EncodingUTF8)
	require.NoError(t, err)

	t.Run("empty selection yields empty vocabulary", func(t *testing.T) {
		assert.Empty(t, repo.SkillsForCategories(nil))
	})

	t.Run("union over selected categories", func(t *testing.T) {
		skills := repo.SkillsForCategories([]string{"Engineering", "Business"})
		assert.Equal(t, []string{"Math", "Coding", "Communication", "Economics"}, skills)
	})

	t.Run("unknown category yields empty", func(t *testing.T) {
		assert.Empty(t, repo.SkillsForCategories([]string{"Law"}))
	})

	t.Run("input is trimmed", func(t *testing.T) {
		skills := repo.SkillsForCategories([]string{"  Engineering "})
		assert.Equal(t, []string{"Math", "Coding"}, skills)
	})
}
