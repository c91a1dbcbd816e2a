package controller

import (
	"errors"

	"uni_advisor_backend/internal/model"
	"uni_advisor_backend/internal/service"
	"uni_advisor_backend/internal/util"
	"uni_advisor_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

type recommendRequest struct {
	AverageGrade decimal.Decimal `json:"averageGrade"`
	Categories   []string        `json:"categories"`
	Skills       []string        `json:"skills"`
	Mode         string          `json:"mode"` // best | all; empty uses the configured default
}

// @Summary Recommend degree programs for a student profile
// @Description Scores every catalog program against the submitted grade, categories and skills and returns the ranked matches. A profile that matches nothing yields outcome "no_match" with an empty list; that is a valid result, not an error.
// @Tags recommendation
// @Accept json
// @Produce json
// @Param body body recommendRequest true "student profile"
// @Success 200 {object} util.Response{data=model.Recommendation}
// @Failure 400 {object} util.Response
// @Router /api/recommendations [post]
func (c *RecommendationController) Recommend(ctx *gin.Context) {
	var req recommendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile := model.StudentProfile{
		AverageGrade: req.AverageGrade,
		Categories:   req.Categories,
		Skills:       req.Skills,
	}

	result, err := c.RecommendationService.Recommend(profile, model.ResultMode(req.Mode))
	if err != nil {
		var invalid *util.InvalidProfileError
		if errors.As(err, &invalid) {
			monitoring.RecommendationCounter.WithLabelValues("invalid_profile").Inc()
			util.BadRequest(ctx, invalid.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.RecommendationCounter.WithLabelValues(string(result.Outcome)).Inc()
	util.Success(ctx, result)
}
