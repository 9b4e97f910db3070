// Package models contains data structures for the application's domain models.
package models

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents a registered user of the Barterly application.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"unique;not null" json:"username"`
	Email          string         `gorm:"unique;not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	Bio            string         `json:"bio"`
	SkillsSelected bool           `gorm:"not null;default:false" json:"skills_selected"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Barters        []Barter       `gorm:"foreignKey:OwnerID" json:"barters,omitempty"`
	Skills         []UserSkill    `gorm:"foreignKey:UserID" json:"skills,omitempty"`
}

// AvatarKey returns the Gravatar hash derived from the user's email.
// Clients build the avatar URL as https://www.gravatar.com/avatar/<key>.
func (u *User) AvatarKey() string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(u.Email))))
	return hex.EncodeToString(sum[:])
}

// UserSkill links a user to a skill they can teach.
// A user may hold at most MaxUserSkills rows; saving replaces the whole set.
type UserSkill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_skill" json:"user_id"`
	SkillID   uint      `gorm:"not null;uniqueIndex:idx_user_skill" json:"skill_id"`
	CreatedAt time.Time `json:"created_at"`

	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

// MaxUserSkills is the onboarding limit on selected skills.
const MaxUserSkills = 3

// UserStats aggregates profile-level counters shown on the profile screen.
// Rating is the mean of the user's per-barter skill ratings, one decimal,
// zero when the user has no barters.
type UserStats struct {
	BarterCount int     `json:"barter_count"`
	SkillCount  int     `json:"skill_count"`
	Rating      float64 `json:"rating"`
}
