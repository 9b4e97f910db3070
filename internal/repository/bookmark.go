package repository

import (
	"context"

	"barterly/internal/cache"
	"barterly/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookmarkRepository defines the interface for bookmark data operations
type BookmarkRepository interface {
	Add(ctx context.Context, userID, barterID uint) error
	Remove(ctx context.Context, userID, barterID uint) error
	Exists(ctx context.Context, userID, barterID uint) (bool, error)
	ListBarterIDs(ctx context.Context, userID uint) ([]uint, error)
	ListWithBarters(ctx context.Context, userID uint) ([]models.Bookmark, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Add inserts the bookmark, ignoring the write when the pair already exists.
// ON CONFLICT DO NOTHING keeps concurrent toggles from erroring on the
// unique (user_id, barter_id) index.
func (r *bookmarkRepository) Add(ctx context.Context, userID, barterID uint) error {
	bookmark := models.Bookmark{UserID: userID, BarterID: barterID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&bookmark).Error; err != nil {
		return translateError(err, "Barter is already bookmarked")
	}
	cache.InvalidateBookmarks(ctx, userID)
	return nil
}

func (r *bookmarkRepository) Remove(ctx context.Context, userID, barterID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND barter_id = ?", userID, barterID).
		Delete(&models.Bookmark{}).Error; err != nil {
		return translateError(err, "")
	}
	cache.InvalidateBookmarks(ctx, userID)
	return nil
}

func (r *bookmarkRepository) Exists(ctx context.Context, userID, barterID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("user_id = ? AND barter_id = ?", userID, barterID).
		Count(&count).Error; err != nil {
		return false, translateError(err, "")
	}
	return count > 0, nil
}

func (r *bookmarkRepository) ListBarterIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if cache.GetJSON(ctx, cache.BookmarksKey(userID), &ids) {
		return ids, nil
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("user_id = ?", userID).
		Pluck("barter_id", &ids).Error; err != nil {
		return nil, translateError(err, "")
	}

	cache.SetJSON(ctx, cache.BookmarksKey(userID), ids, cache.BookmarksTTL)
	return ids, nil
}

func (r *bookmarkRepository) ListWithBarters(ctx context.Context, userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Barter").
		Preload("Barter.Owner").
		Preload("Barter.TeachSkill").
		Preload("Barter.LearnSkill").
		Order("created_at DESC").
		Find(&bookmarks).Error; err != nil {
		return nil, translateError(err, "")
	}
	return bookmarks, nil
}
