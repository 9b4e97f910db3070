package repository

import (
	"context"
	"errors"

	"barterly/internal/cache"
	"barterly/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	GetSkills(ctx context.Context, userID uint) ([]models.UserSkill, error)
	ReplaceSkills(ctx context.Context, userID uint, skillIDs []uint) error
	GetStats(ctx context.Context, userID uint) (*models.UserStats, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateError(err, "A user with this username or email already exists")
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, translateError(err, "")
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no user; caller decides whether that is an error
		}
		return nil, translateError(err, "")
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "")
	}
	return &user, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, translateError(err, "")
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return translateError(err, "A user with this username or email already exists")
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) GetSkills(ctx context.Context, userID uint) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Skill").
		Find(&skills).Error; err != nil {
		return nil, translateError(err, "")
	}
	return skills, nil
}

// ReplaceSkills swaps the user's whole skill set in one transaction, matching
// the delete-then-insert onboarding flow.
func (r *userRepository) ReplaceSkills(ctx context.Context, userID uint, skillIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserSkill{}).Error; err != nil {
			return err
		}
		for _, skillID := range skillIDs {
			if err := tx.Create(&models.UserSkill{UserID: userID, SkillID: skillID}).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("skills_selected", len(skillIDs) > 0).Error
	})
	if err != nil {
		return translateError(err, "Duplicate skill selection")
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

func (r *userRepository) GetStats(ctx context.Context, userID uint) (*models.UserStats, error) {
	stats := &models.UserStats{}

	var barterCount int64
	if err := r.db.WithContext(ctx).
		Model(&models.Barter{}).
		Where("owner_id = ?", userID).
		Count(&barterCount).Error; err != nil {
		return nil, translateError(err, "")
	}
	stats.BarterCount = int(barterCount)

	var skillCount int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserSkill{}).
		Where("user_id = ?", userID).
		Count(&skillCount).Error; err != nil {
		return nil, translateError(err, "")
	}
	stats.SkillCount = int(skillCount)

	// Aggregate rating is the mean of the user's per-barter self-assessments.
	if barterCount > 0 {
		var avg float64
		if err := r.db.WithContext(ctx).
			Model(&models.Barter{}).
			Where("owner_id = ?", userID).
			Select("AVG(skill_rating)").
			Scan(&avg).Error; err != nil {
			return nil, translateError(err, "")
		}
		stats.Rating = float64(int(avg*10+0.5)) / 10
	}

	return stats, nil
}
