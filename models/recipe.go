package models

import (
	"gorm.io/gorm"
)

// Recipe is owned by exactly one user; every query must filter on UserID.
type Recipe struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null" json:"userId"`
	Name         string `gorm:"not null" json:"name"`
	Link         string `json:"link"`
	ImageURL     string `json:"imageUrl"`
	BlurDataURL  string `json:"blurDataUrl"` // tiny base64 placeholder shown while the real image loads
	Ingredients  string `json:"ingredients"` // free text, one ingredient per line
	Instructions string `json:"instructions"`
	Favorite     bool   `json:"favorite"`
	Tags         []Tag  `gorm:"many2many:recipe_tags;" json:"tags"`
}

type Tag struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex:idx_user_tag;not null" json:"userId"`
	Name   string `gorm:"uniqueIndex:idx_user_tag;not null" json:"name"`
}
