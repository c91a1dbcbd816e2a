package app

import (
	"uni_advisor_backend/docs"
	"uni_advisor_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		insights := api.Group("/insights")
		{
			insights.GET("/degrees", c.insight.GetDegrees)
			insights.GET("/gender-breakdown", c.insight.GetGenderBreakdown)
			insights.GET("/enrollment-trends", c.insight.GetEnrollmentTrends)
		}

		catalog := api.Group("/catalog")
		{
			catalog.GET("/categories", c.catalog.GetCategories)
			catalog.GET("/skills", c.catalog.GetSkills)
		}

		api.POST("/recommendations", c.recommendation.Recommend)
	}
}
