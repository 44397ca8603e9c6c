package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// MealPlanEntry is one slot of the live week. The composite unique index is
// what keeps a slot from holding two meals under concurrent writes. Soft
// deletes don't free the index, so slot-clearing deletes must be unscoped.
type MealPlanEntry struct {
	gorm.Model
	UserID   uint      `gorm:"uniqueIndex:idx_user_date_meal;not null" json:"userId"`
	Date     time.Time `gorm:"uniqueIndex:idx_user_date_meal;not null" json:"date"`
	MealType string    `gorm:"uniqueIndex:idx_user_date_meal;not null" json:"mealType"`
	RecipeID uint      `gorm:"not null" json:"recipeId"`
	Recipe   Recipe    `json:"recipe"`
}

// SavedMealPlan is a named snapshot of a week. Its entries are copies, so
// editing the live week never touches a saved plan and vice versa.
type SavedMealPlan struct {
	gorm.Model
	UserID      uint                 `gorm:"index;not null" json:"userId"`
	Name        string               `gorm:"not null" json:"name"`
	Description string               `json:"description"`
	WeekStart   time.Time            `json:"weekStart"`
	Entries     []SavedMealPlanEntry `json:"entries"`
}

type SavedMealPlanEntry struct {
	gorm.Model
	SavedMealPlanID uint      `gorm:"index;not null" json:"savedMealPlanId"`
	RecipeID        uint      `gorm:"not null" json:"recipeId"`
	Date            time.Time `json:"date"`
	MealType        string    `json:"mealType"`
}
