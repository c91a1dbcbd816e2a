package controller

import (
	"uni_advisor_backend/internal/model"
	"uni_advisor_backend/internal/service"
	"uni_advisor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// @Summary List degree categories
// @Description Every distinct category in the program catalog, for the category selector.
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/catalog/categories [get]
func (c *CatalogController) GetCategories(ctx *gin.Context) {
	util.Success(ctx, c.CatalogService.Categories())
}

// @Summary List skills for selected categories
// @Description Union of required skills over every program in the given categories. The skill selector is populated from this, so skills are always relative to a category selection; no categories means no skills.
// @Tags catalog
// @Produce json
// @Param categories query []string false "category names, repeated or comma-separated"
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/catalog/skills [get]
func (c *CatalogController) GetSkills(ctx *gin.Context) {
	var categories []string
	for _, raw := range ctx.QueryArray("categories") {
		categories = append(categories, model.SplitTokens(raw)...)
	}
	util.Success(ctx, c.CatalogService.SkillsForCategories(categories))
}
