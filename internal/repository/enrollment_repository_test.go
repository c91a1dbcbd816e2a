package repository

import (
	"strings"
	"testing"

	"uni_advisor_backend/internal/model"
	"uni_advisor_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enrollmentCSV = `university_degree,year,number_of_students,Female,Male
Computer Science,2020,235,85,150
Computer Science,2019,210,70,140
Medicine,2019,150,90,60
Medicine,2020,155,95,60
`

func TestLoadEnrollment(t *testing.T) {
	repo, err := LoadEnrollment(strings.NewReader(enrollmentCSV), EncodingUTF8)
	require.NoError(t, err)
	require.Equal(t, 4, repo.Len())
}

func TestLoadEnrollment_TotalFallback(t *testing.T) {
	csv := "university_degree,year,Female,Male\nMedicine,2019,90,60\n"

	repo, err := LoadEnrollment(strings.NewReader(csv), EncodingUTF8)
	require.NoError(t, err)

	trends := repo.Trends()
	require.Len(t, trends, 1)
	assert.Equal(t, []model.YearCount{{Year: 2019, Total: 150}}, trends[0].Points)
}

func TestLoadEnrollment_MissingColumn(t *testing.T) {
	csv := "university_degree,year,Female\nMedicine,2019,90\n"

	_, err := LoadEnrollment(strings.NewReader(csv), EncodingUTF8)
	var schemaErr *util.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Male", schemaErr.Column)
}

func TestLoadEnrollment_BadCount(t *testing.T) {
	csv := "university_degree,year,Female,Male\nMedicine,2019,ninety,60\n"

	_, err := LoadEnrollment(strings.NewReader(csv), EncodingUTF8)
	var parseErr *util.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Female", parseErr.Column)
}

func TestDegrees_FirstSeenOrder(t *testing.T) {
	repo, err := LoadEnrollment(strings.NewReader(enrollmentCSV), EncodingUTF8)
	require.NoError(t, err)

	assert.Equal(t, []string{"Computer Science", "Medicine"}, repo.Degrees())
}

func TestGenderBreakdown_SortedByYear(t *testing.T) {
	repo, err := LoadEnrollment(strings.NewReader(enrollmentCSV), EncodingUTF8)
	require.NoError(t, err)

	breakdown := repo.GenderBreakdown("Computer Science")
	assert.Equal(t, []model.YearGenderCount{
		{Year: 2019, Female: 70, Male: 140},
		{Year: 2020, Female: 85, Male: 150},
	}, breakdown)

	assert.Empty(t, repo.GenderBreakdown("Law"))
}

func TestTrends(t *testing.T) {
	repo, err := LoadEnrollment(strings.NewReader(enrollmentCSV), EncodingUTF8)
	require.NoError(t, err)

	trends := repo.Trends()
	require.Len(t, trends, 2)
	assert.Equal(t, "Computer Science", trends[0].Degree)
	assert.Equal(t, []model.YearCount{
		{Year: 2019, Total: 210},
		{Year: 2020, Total: 235},
	}, trends[0].Points)
}
