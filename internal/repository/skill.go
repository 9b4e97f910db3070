package repository

import (
	"context"

	"barterly/internal/cache"
	"barterly/internal/models"

	"gorm.io/gorm"
)

// SkillRepository defines read-only access to the skill reference data.
type SkillRepository interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	SkillsInSubcategory(ctx context.Context, subcategoryID uint) ([]models.Skill, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]models.Skill, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if cache.GetJSON(ctx, cache.SkillCatalogKey, &skills) {
		return skills, nil
	}

	if err := r.db.WithContext(ctx).Order("name").Find(&skills).Error; err != nil {
		return nil, translateError(err, "")
	}

	cache.SetJSON(ctx, cache.SkillCatalogKey, skills, cache.SkillCatalogTTL)
	return skills, nil
}

func (r *skillRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if cache.GetJSON(ctx, cache.CategoriesKey, &categories) {
		return categories, nil
	}

	if err := r.db.WithContext(ctx).
		Preload("Subcategories").
		Order("name").
		Find(&categories).Error; err != nil {
		return nil, translateError(err, "")
	}

	cache.SetJSON(ctx, cache.CategoriesKey, categories, cache.SkillCatalogTTL)
	return categories, nil
}

func (r *skillRepository) SkillsInSubcategory(ctx context.Context, subcategoryID uint) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.WithContext(ctx).
		Where("subcategory_id = ?", subcategoryID).
		Order("name").
		Find(&skills).Error; err != nil {
		return nil, translateError(err, "")
	}
	return skills, nil
}

func (r *skillRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]models.Skill, error) {
	result := make(map[uint]models.Skill, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var skills []models.Skill
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&skills).Error; err != nil {
		return nil, translateError(err, "")
	}
	for _, s := range skills {
		result[s.ID] = s
	}
	return result, nil
}
