package service

import (
	"testing"

	"uni_advisor_backend/internal/model"
	"uni_advisor_backend/internal/repository"
	"uni_advisor_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnrollment() *repository.EnrollmentRepository {
	return repository.NewEnrollmentRepository([]model.EnrollmentRecord{
		{Degree: "Computer Science", Year: 2020, Female: 85, Male: 150, Total: 235},
		{Degree: "Computer Science", Year: 2019, Female: 70, Male: 140, Total: 210},
		{Degree: "Medicine", Year: 2019, Female: 90, Male: 60, Total: 150},
	})
}

func TestInsightService_Degrees(t *testing.T) {
	svc := NewInsightService(testEnrollment())
	assert.Equal(t, []string{"Computer Science", "Medicine"}, svc.Degrees())
}

func TestInsightService_GenderBreakdown(t *testing.T) {
	svc := NewInsightService(testEnrollment())

	breakdown, err := svc.GenderBreakdown("Computer Science")
	require.NoError(t, err)
	assert.Equal(t, []model.YearGenderCount{
		{Year: 2019, Female: 70, Male: 140},
		{Year: 2020, Female: 85, Male: 150},
	}, breakdown)
}

func TestInsightService_GenderBreakdown_UnknownDegree(t *testing.T) {
	svc := NewInsightService(testEnrollment())

	_, err := svc.GenderBreakdown("Law")
	assert.ErrorIs(t, err, util.ErrDegreeNotFound)
}

func TestInsightService_EnrollmentTrends(t *testing.T) {
	svc := NewInsightService(testEnrollment())

	trends := svc.EnrollmentTrends()
	require.Len(t, trends, 2)
	assert.Equal(t, "Computer Science", trends[0].Degree)
	assert.Equal(t, []model.YearCount{
		{Year: 2019, Total: 210},
		{Year: 2020, Total: 235},
	}, trends[0].Points)
}
