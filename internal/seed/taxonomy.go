package seed

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barterly/internal/cache"
	"barterly/internal/models"
)

// skillTree is the fixed catalog the app ships with. Names are stable so the
// mobile clients can rely on them; re-running the seeder is idempotent.
var skillTree = map[string]map[string][]string{
	"Development": {
		"Frontend": {"React", "Vue", "CSS", "TypeScript"},
		"Backend":  {"Go", "Python", "Node.js", "PostgreSQL"},
		"Mobile":   {"React Native", "Swift", "Kotlin"},
	},
	"Design": {
		"Visual":  {"Figma", "Illustration", "Branding"},
		"Product": {"UX Research", "Prototyping", "Design Systems"},
	},
	"Marketing": {
		"Growth":  {"SEO", "Paid Ads", "Email Marketing"},
		"Content": {"Copywriting", "Social Media", "Video Marketing"},
	},
	"Writing": {
		"Creative":     {"Fiction", "Poetry", "Screenwriting"},
		"Professional": {"Technical Writing", "Editing", "Journalism"},
	},
	"Music": {
		"Instruments": {"Guitar", "Piano", "Drums", "Violin"},
		"Production":  {"Mixing", "Songwriting", "Music Theory"},
	},
	"Lifestyle": {
		"Languages": {"Spanish", "French", "Japanese", "German"},
		"Wellness":  {"Yoga", "Cooking", "Photography", "Chess"},
	},
}

// Taxonomy inserts the skill catalog, skipping categories that already exist.
// Cached catalog entries are invalidated when anything was inserted.
func Taxonomy(db *gorm.DB) error {
	seeded := false
	for categoryName, subs := range skillTree {
		var category models.Category
		err := db.Where("name = ?", categoryName).First(&category).Error
		if err == nil {
			continue // already seeded
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		seeded = true

		category = models.Category{Name: categoryName}
		if err := db.Create(&category).Error; err != nil {
			return err
		}

		for subName, skills := range subs {
			sub := models.Subcategory{Name: subName, CategoryID: category.ID}
			if err := db.Create(&sub).Error; err != nil {
				return err
			}
			for _, skillName := range skills {
				skill := models.Skill{
					Name:          skillName,
					CategoryID:    category.ID,
					SubcategoryID: sub.ID,
				}
				if err := db.Create(&skill).Error; err != nil {
					return err
				}
			}
		}
	}

	if seeded {
		cache.InvalidateSkillCatalog(context.Background())
	}
	return nil
}
