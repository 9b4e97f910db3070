package repository

import (
	"context"
	"errors"

	"barterly/internal/cache"
	"barterly/internal/models"

	"gorm.io/gorm"
)

// BarterFilter narrows a barter listing.
type BarterFilter struct {
	// Category matches barters whose taught OR wanted skill belongs to the
	// named category. Empty means no filtering.
	Category string
	Limit    int
	Offset   int
}

// BarterRepository defines the interface for barter data operations
type BarterRepository interface {
	Create(ctx context.Context, barter *models.Barter) error
	GetByID(ctx context.Context, id uint) (*models.Barter, error)
	List(ctx context.Context, filter BarterFilter) ([]models.Barter, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Barter, error)
}

type barterRepository struct {
	db *gorm.DB
}

// NewBarterRepository creates a new barter repository
func NewBarterRepository(db *gorm.DB) BarterRepository {
	return &barterRepository{db: db}
}

func (r *barterRepository) Create(ctx context.Context, barter *models.Barter) error {
	if err := r.db.WithContext(ctx).Create(barter).Error; err != nil {
		return translateError(err, "Barter already exists")
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *barterRepository) GetByID(ctx context.Context, id uint) (*models.Barter, error) {
	var barter models.Barter
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("TeachSkill").
		Preload("LearnSkill").
		First(&barter, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Barter", id)
		}
		return nil, translateError(err, "")
	}
	return &barter, nil
}

func (r *barterRepository) List(ctx context.Context, filter BarterFilter) ([]models.Barter, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Barter{}).
		Preload("Owner").
		Preload("TeachSkill").
		Preload("LearnSkill").
		Order("created_at DESC")

	if filter.Category != "" {
		// Match on either side of the exchange.
		query = query.
			Joins("JOIN skills teach ON teach.id = barters.teach_skill_id").
			Joins("JOIN skills learn ON learn.id = barters.learn_skill_id").
			Joins("JOIN categories tc ON tc.id = teach.category_id").
			Joins("JOIN categories lc ON lc.id = learn.category_id").
			Where("tc.name = ? OR lc.name = ?", filter.Category, filter.Category)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var barters []models.Barter
	if err := query.Find(&barters).Error; err != nil {
		return nil, translateError(err, "")
	}
	return barters, nil
}

func (r *barterRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Barter, error) {
	var barters []models.Barter
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("TeachSkill").
		Preload("LearnSkill").
		Order("created_at DESC").
		Find(&barters).Error; err != nil {
		return nil, translateError(err, "")
	}
	return barters, nil
}
