package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// BarterMode is how the exchange is conducted.
type BarterMode string

const (
	// BarterModeOnline indicates a remote exchange.
	BarterModeOnline BarterMode = "online"
	// BarterModeOffline indicates an in-person exchange.
	BarterModeOffline BarterMode = "offline"
)

// Valid reports whether the mode is one of the two allowed values.
func (m BarterMode) Valid() bool {
	return m == BarterModeOnline || m == BarterModeOffline
}

// Display returns the human label for the mode.
func (m BarterMode) Display() string {
	if m == BarterModeOffline {
		return "In-person"
	}
	return "Online"
}

const (
	// TitleMaxLen and DescriptionMaxLen bound the create form fields.
	TitleMaxLen       = 100
	DescriptionMaxLen = 150

	// BarterLifetime is how long a posting stays active. Expiry is computed
	// from CreatedAt, never stored.
	BarterLifetime = 30 * 24 * time.Hour
)

// Barter is a posting offering one skill in exchange for learning another.
// Immutable once created; there is no edit path.
type Barter struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	OwnerID      uint       `gorm:"not null;index" json:"owner_id"`
	Title        string     `gorm:"size:100;not null" json:"title"`
	Description  string     `gorm:"size:150;not null" json:"description"`
	Mode         BarterMode `gorm:"type:varchar(10);not null" json:"mode"`
	TeachSkillID uint       `gorm:"not null;index" json:"teach_skill_id"`
	LearnSkillID uint       `gorm:"not null;index" json:"learn_skill_id"`
	// SkillRating is the owner's self-assessment for the taught skill (1-5).
	// It belongs to this posting, not to the user.
	SkillRating int            `gorm:"not null" json:"skill_rating"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Owner      *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	TeachSkill *Skill `gorm:"foreignKey:TeachSkillID" json:"teach_skill,omitempty"`
	LearnSkill *Skill `gorm:"foreignKey:LearnSkillID" json:"learn_skill,omitempty"`
}

// ExpiresAt returns the instant the posting stops being shown as active.
func (b *Barter) ExpiresAt() time.Time {
	return b.CreatedAt.Add(BarterLifetime)
}

// IsExpired reports whether the posting is older than its lifetime at now.
func (b *Barter) IsExpired(now time.Time) bool {
	return now.Sub(b.CreatedAt) > BarterLifetime
}

// TimeAgo renders the posting age for list rows.
func TimeAgo(createdAt, now time.Time) string {
	d := now.Sub(createdAt)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d min ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}

// ExpiresIn renders the remaining lifetime for the saved-barters screen.
func (b *Barter) ExpiresIn(now time.Time) string {
	remaining := b.ExpiresAt().Sub(now)
	switch {
	case remaining <= 0:
		return "Expired"
	case remaining < 24*time.Hour:
		return "Expires today"
	default:
		days := int(remaining.Hours() / 24)
		if days == 1 {
			return "1 day left"
		}
		return fmt.Sprintf("%d days left", days)
	}
}

// Bookmark marks a barter as saved by a user.
// The (UserID, BarterID) pair is unique; toggling flips existence.
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_barter" json:"user_id"`
	BarterID  uint      `gorm:"not null;uniqueIndex:idx_user_barter" json:"barter_id"`
	CreatedAt time.Time `json:"created_at"`

	Barter *Barter `gorm:"foreignKey:BarterID" json:"barter,omitempty"`
}
