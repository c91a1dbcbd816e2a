package service

import (
	"uni_advisor_backend/internal/model"
	"uni_advisor_backend/internal/repository"
	"uni_advisor_backend/internal/util"
)

// InsightService shapes the enrollment time series for the dashboard charts.
type InsightService struct {
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewInsightService(enrollmentRepo *repository.EnrollmentRepository) *InsightService {
	return &InsightService{EnrollmentRepo: enrollmentRepo}
}

func (s *InsightService) Degrees() []string {
	return s.EnrollmentRepo.Degrees()
}

// GenderBreakdown returns the per-year Female/Male counts for one degree,
// the pivot behind the gender bar chart.
func (s *InsightService) GenderBreakdown(degree string) ([]model.YearGenderCount, error) {
	breakdown := s.EnrollmentRepo.GenderBreakdown(degree)
	if len(breakdown) == 0 {
		return nil, util.ErrDegreeNotFound
	}
	return breakdown, nil
}

// EnrollmentTrends returns the per-degree totals series behind the trends
// line chart.
func (s *InsightService) EnrollmentTrends() []model.DegreeTrend {
	return s.EnrollmentRepo.Trends()
}
