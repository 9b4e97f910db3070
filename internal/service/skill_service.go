package service

import (
	"context"

	"barterly/internal/models"
	"barterly/internal/repository"
)

// SkillService exposes the read-only skill catalog.
type SkillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService returns a new SkillService.
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

// ListSkills returns every skill, name-ordered.
func (s *SkillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return s.skillRepo.ListSkills(ctx)
}

// ListCategories returns the category tree with subcategories.
func (s *SkillService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.skillRepo.ListCategories(ctx)
}

// SkillsInSubcategory returns the skills under one subcategory.
func (s *SkillService) SkillsInSubcategory(ctx context.Context, subcategoryID uint) ([]models.Skill, error) {
	return s.skillRepo.SkillsInSubcategory(ctx, subcategoryID)
}
