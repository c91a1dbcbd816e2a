package controller

import (
	"uni_advisor_backend/internal/repository"
	"uni_advisor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	CatalogRepo    *repository.CatalogRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewHealthController(catalogRepo *repository.CatalogRepository, enrollmentRepo *repository.EnrollmentRepository) *HealthController {
	return &HealthController{CatalogRepo: catalogRepo, EnrollmentRepo: enrollmentRepo}
}

// @Summary Health check
// @Description Service status and loaded dataset sizes.
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"datasets": gin.H{
			"catalog":    c.CatalogRepo.Len(),
			"enrollment": c.EnrollmentRepo.Len(),
		},
	})
}
