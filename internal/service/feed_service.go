// Package service contains the business logic layer between HTTP handlers
// and repositories.
package service

import (
	"context"
	"time"

	"barterly/internal/cache"
	"barterly/internal/models"
	"barterly/internal/repository"
)

// DefaultFeedPageSize is the feed page size when the client sends no limit.
// Only this page, anonymous and unfiltered, is served from the cache.
const DefaultFeedPageSize = 20

// FeedService assembles the browse feed from barters, skills, users, and the
// viewer's bookmarks.
type FeedService struct {
	barterRepo   repository.BarterRepository
	skillRepo    repository.SkillRepository
	userRepo     repository.UserRepository
	bookmarkRepo repository.BookmarkRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(
	barterRepo repository.BarterRepository,
	skillRepo repository.SkillRepository,
	userRepo repository.UserRepository,
	bookmarkRepo repository.BookmarkRepository,
) *FeedService {
	return &FeedService{
		barterRepo:   barterRepo,
		skillRepo:    skillRepo,
		userRepo:     userRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

// List returns the feed newest-first. viewerID 0 means an anonymous viewer;
// no bookmark decoration is applied. The category filter is applied both in
// the query and by AssembleFeed, which owns the display semantics.
func (s *FeedService) List(ctx context.Context, viewerID uint, category string, limit, offset int) ([]models.FeedItem, error) {
	// The anonymous first page is the hot path; its short TTL bounds the
	// staleness of the time-derived display fields.
	cacheable := viewerID == 0 && category == "" && offset == 0 && limit == DefaultFeedPageSize
	if cacheable {
		var cached []models.FeedItem
		if cache.GetJSON(ctx, cache.BarterFeedKey, &cached) {
			return cached, nil
		}
	}

	barters, err := s.barterRepo.List(ctx, repository.BarterFilter{
		Category: category,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, err
	}

	skillIDs := make([]uint, 0, len(barters)*2)
	userIDs := make([]uint, 0, len(barters))
	for _, b := range barters {
		skillIDs = append(skillIDs, b.TeachSkillID, b.LearnSkillID)
		userIDs = append(userIDs, b.OwnerID)
	}

	skills, err := s.skillRepo.GetByIDs(ctx, skillIDs)
	if err != nil {
		return nil, err
	}

	users := make(map[uint]models.User)
	if rows, err := s.userRepo.GetByIDs(ctx, userIDs); err == nil {
		for _, u := range rows {
			users[u.ID] = u
		}
	} else {
		return nil, err
	}

	categories, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	var bookmarked map[uint]bool
	if viewerID != 0 {
		ids, err := s.bookmarkRepo.ListBarterIDs(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		bookmarked = make(map[uint]bool, len(ids))
		for _, id := range ids {
			bookmarked[id] = true
		}
	}

	items := AssembleFeed(barters, skills, users, categories, bookmarked, category, time.Now())
	if cacheable {
		cache.SetJSON(ctx, cache.BarterFeedKey, items, cache.BarterFeedTTL)
	}
	return items, nil
}

func (s *FeedService) categoryNames(ctx context.Context) (map[uint]string, error) {
	cats, err := s.skillRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names, nil
}

// AssembleFeed is a pure join of the feed's inputs into display records.
// Missing skill or user rows degrade to the documented fallbacks rather than
// dropping the barter. When category is non-empty, only barters whose taught
// or wanted skill belongs to that category survive.
func AssembleFeed(
	barters []models.Barter,
	skills map[uint]models.Skill,
	users map[uint]models.User,
	categories map[uint]string,
	bookmarked map[uint]bool,
	category string,
	now time.Time,
) []models.FeedItem {
	items := make([]models.FeedItem, 0, len(barters))
	for _, b := range barters {
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
			Bookmarked:  bookmarked[b.ID],
			CreatedAt:   b.CreatedAt,
		}

		if s, ok := skills[b.TeachSkillID]; ok {
			item.TeachSkill = s.Name
			item.TeachCategory = categories[s.CategoryID]
		}
		if s, ok := skills[b.LearnSkillID]; ok {
			item.LearnSkill = s.Name
			item.LearnCategory = categories[s.CategoryID]
		}
		if u, ok := users[b.OwnerID]; ok {
			item.OwnerName = u.Username
			item.OwnerAvatarKey = u.AvatarKey()
		}

		if category != "" && item.TeachCategory != category && item.LearnCategory != category {
			continue
		}
		items = append(items, item)
	}
	return items
}
