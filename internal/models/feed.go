package models

import "time"

// Display fallbacks used when a feed or ledger join cannot be resolved.
// A barter is never hidden because its skill or owner row is missing.
const (
	UnknownSkillName  = "Unknown Skill"
	AnonymousUserName = "Anonymous User"
)

// FeedItem is a barter decorated for the browse feed: skill and owner names
// resolved, age and expiry computed, bookmark state for the viewing user.
type FeedItem struct {
	ID             uint       `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Mode           BarterMode `json:"mode"`
	DisplayMode    string     `json:"display_mode"`
	TeachSkill     string     `json:"teach_skill"`
	LearnSkill     string     `json:"learn_skill"`
	TeachCategory  string     `json:"teach_category"`
	LearnCategory  string     `json:"learn_category"`
	OwnerID        uint       `json:"owner_id"`
	OwnerName      string     `json:"owner_name"`
	OwnerAvatarKey string     `json:"owner_avatar_key"`
	SkillRating    int        `json:"skill_rating"`
	TimeAgo        string     `json:"time_ago"`
	IsExpired      bool       `json:"is_expired"`
	Bookmarked     bool       `json:"bookmarked"`
	CreatedAt      time.Time  `json:"created_at"`
}

// BookmarkView is a saved barter on the bookmarks screen, which additionally
// shows the remaining lifetime.
type BookmarkView struct {
	FeedItem
	ExpiresIn string `json:"expires_in"`
}
