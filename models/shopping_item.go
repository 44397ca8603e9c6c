package models

import (
	"gorm.io/gorm"
)

// ShoppingItem keeps a back-reference to the recipe it came from (if any) so
// later generations can detect duplicates; it does not own the recipe.
type ShoppingItem struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null" json:"userId"`
	Name         string `gorm:"not null" json:"name"`
	RecipeID     *uint  `json:"recipeId"`
	FromMealPlan bool   `json:"fromMealPlan"` // true when derived from a meal-plan aggregation
	Checked      bool   `json:"checked"`
}
