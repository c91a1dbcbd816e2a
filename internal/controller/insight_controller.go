package controller

import (
	"errors"
	"strings"

	"uni_advisor_backend/internal/service"
	"uni_advisor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	InsightService *service.InsightService
}

func NewInsightController(insightService *service.InsightService) *InsightController {
	return &InsightController{InsightService: insightService}
}

// @Summary List degrees with enrollment history
// @Tags insights
// @Produce json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/insights/degrees [get]
func (c *InsightController) GetDegrees(ctx *gin.Context) {
	util.Success(ctx, c.InsightService.Degrees())
}

// @Summary Enrollment by gender over years for one degree
// @Description Per-year Female/Male student counts for the selected degree, the data behind the gender bar chart.
// @Tags insights
// @Produce json
// @Param degree query string true "degree name"
// @Success 200 {object} util.Response{data=[]model.YearGenderCount}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/insights/gender-breakdown [get]
func (c *InsightController) GetGenderBreakdown(ctx *gin.Context) {
	degree := strings.TrimSpace(ctx.Query("degree"))
	if degree == "" {
		util.BadRequest(ctx, "degree query parameter is required")
		return
	}

	breakdown, err := c.InsightService.GenderBreakdown(degree)
	if err != nil {
		if errors.Is(err, util.ErrDegreeNotFound) {
			util.NotFound(ctx, "no enrollment data for degree "+degree)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, breakdown)
}

// @Summary Enrollment totals over years for every degree
// @Description Per-degree year/total series, the data behind the enrollment trends line chart.
// @Tags insights
// @Produce json
// @Success 200 {object} util.Response{data=[]model.DegreeTrend}
// @Router /api/insights/enrollment-trends [get]
func (c *InsightController) GetEnrollmentTrends(ctx *gin.Context) {
	util.Success(ctx, c.InsightService.EnrollmentTrends())
}
