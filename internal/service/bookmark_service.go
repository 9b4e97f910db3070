package service

import (
	"context"
	"time"

	"barterly/internal/models"
	"barterly/internal/repository"
)

// BookmarkService provides saved-barter business logic.
type BookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	barterRepo   repository.BarterRepository
}

// NewBookmarkService returns a new BookmarkService.
func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, barterRepo repository.BarterRepository) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		barterRepo:   barterRepo,
	}
}

// Toggle flips the bookmark for the pair and reports the resulting state:
// true when the barter is now bookmarked, false when it was removed.
func (s *BookmarkService) Toggle(ctx context.Context, userID, barterID uint) (bool, error) {
	if _, err := s.barterRepo.GetByID(ctx, barterID); err != nil {
		return false, err
	}

	exists, err := s.bookmarkRepo.Exists(ctx, userID, barterID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.bookmarkRepo.Remove(ctx, userID, barterID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.bookmarkRepo.Add(ctx, userID, barterID); err != nil {
		return false, err
	}
	return true, nil
}

// List returns the user's saved barters newest-first, decorated with the
// expiry countdown the bookmarks screen shows.
func (s *BookmarkService) List(ctx context.Context, userID uint) ([]models.BookmarkView, error) {
	bookmarks, err := s.bookmarkRepo.ListWithBarters(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]models.BookmarkView, 0, len(bookmarks))
	for _, bm := range bookmarks {
		if bm.Barter == nil {
			continue // barter deleted since it was saved
		}
		b := bm.Barter

		item := models.FeedItem{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
			Mode:        b.Mode,
			DisplayMode: b.Mode.Display(),
			TeachSkill:  models.UnknownSkillName,
			LearnSkill:  models.UnknownSkillName,
			OwnerID:     b.OwnerID,
			OwnerName:   models.AnonymousUserName,
			SkillRating: b.SkillRating,
			TimeAgo:     models.TimeAgo(b.CreatedAt, now),
			IsExpired:   b.IsExpired(now),
			Bookmarked:  true,
			CreatedAt:   b.CreatedAt,
		}
		if b.TeachSkill != nil {
			item.TeachSkill = b.TeachSkill.Name
		}
		if b.LearnSkill != nil {
			item.LearnSkill = b.LearnSkill.Name
		}
		if b.Owner != nil {
			item.OwnerName = b.Owner.Username
			item.OwnerAvatarKey = b.Owner.AvatarKey()
		}

		views = append(views, models.BookmarkView{
			FeedItem:  item,
			ExpiresIn: b.ExpiresIn(now),
		})
	}
	return views, nil
}
