package models

// Category is a top-level grouping of skills (Development, Design, ...).
// Reference data: seeded once, never mutated by the application.
type Category struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Name          string        `gorm:"unique;not null" json:"name"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories,omitempty"`
}

// Subcategory narrows a category (e.g. Development -> Frontend).
type Subcategory struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	CategoryID uint    `gorm:"not null;index" json:"category_id"`
	Skills     []Skill `gorm:"foreignKey:SubcategoryID" json:"skills,omitempty"`
}

// Skill is a single teachable skill.
type Skill struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	CategoryID    uint   `gorm:"not null;index" json:"category_id"`
	SubcategoryID uint   `gorm:"not null;index" json:"subcategory_id"`

	Category    *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
}
