package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	SkillCatalogKey   = "skills:catalog"
	CategoriesKey     = "skills:categories"
	UserKeyPrefix     = "user:%d"
	BarterFeedKey     = "barters:feed"
	BookmarksPrefix   = "bookmarks:%d"
)

const (
	// Skills are immutable reference data; a long TTL only bounds staleness
	// after a reseed.
	SkillCatalogTTL = time.Hour
	UserTTL         = 5 * time.Minute
	BarterFeedTTL   = time.Minute
	BookmarksTTL    = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func BookmarksKey(userID uint) string {
	return fmt.Sprintf(BookmarksPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, BarterFeedKey)
}

func InvalidateBookmarks(ctx context.Context, userID uint) {
	Invalidate(ctx, BookmarksKey(userID))
}

func InvalidateSkillCatalog(ctx context.Context) {
	Invalidate(ctx, SkillCatalogKey)
	Invalidate(ctx, CategoriesKey)
}
