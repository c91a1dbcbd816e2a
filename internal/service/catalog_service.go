package service

import "uni_advisor_backend/internal/repository"

// CatalogService exposes the read-only catalog lookups the selection UI
// needs: the category vocabulary and the skill vocabulary derived from a
// category selection.
type CatalogService struct {
	CatalogRepo *repository.CatalogRepository
}

func NewCatalogService(catalogRepo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{CatalogRepo: catalogRepo}
}

func (s *CatalogService) Categories() []string {
	return s.CatalogRepo.DistinctCategories()
}

func (s *CatalogService) SkillsForCategories(categories []string) []string {
	return s.CatalogRepo.SkillsForCategories(categories)
}
