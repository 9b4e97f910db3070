package database

import "barterly/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.Category{},
		&models.Subcategory{},
		&models.Skill{},
		&models.User{},
		&models.UserSkill{},
		&models.Barter{},
		&models.Bookmark{},
		&models.BarterRequest{},
	}
}
