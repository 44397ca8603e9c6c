package services

import (
	"errors"
	"time"

	"github.com/Chase-42/recipe-vault-sub002/config"
	"github.com/Chase-42/recipe-vault-sub002/models"
	"github.com/Chase-42/recipe-vault-sub002/utils"

	"gorm.io/gorm"
)

type MealPlanService struct{}

func NewMealPlanService() *MealPlanService {
	return &MealPlanService{}
}

func weekRange(weekStart time.Time) (time.Time, time.Time) {
	start := weekStart.UTC().Truncate(24 * time.Hour)
	return start, start.AddDate(0, 0, 7)
}

// ListWeek returns the live entries for [weekStart, weekStart+6 days].
func (s *MealPlanService) ListWeek(userID uint, weekStart time.Time) ([]models.MealPlanEntry, error) {
	from, to := weekRange(weekStart)
	var entries []models.MealPlanEntry
	err := config.DB.
		Preload("Recipe").
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, meal_type ASC").
		Find(&entries).Error
	return entries, err
}

// AddEntry puts a recipe into a slot, replacing whatever was there. The
// (user, date, mealType) unique index backs this up under concurrency.
func (s *MealPlanService) AddEntry(userID, recipeID uint, date time.Time, mealType string) (*models.MealPlanEntry, error) {
	if !models.ValidMealType(mealType) {
		return nil, utils.NewValidationError("invalid meal type", "mealType")
	}

	var recipe models.Recipe
	if err := config.DB.Where("id = ? AND user_id = ?", recipeID, userID).First(&recipe).Error; err != nil {
		return nil, &utils.NotFoundError{Entity: "recipe"}
	}

	date = date.UTC().Truncate(24 * time.Hour)
	entry := models.MealPlanEntry{
		UserID:   userID,
		RecipeID: recipeID,
		Date:     date,
		MealType: mealType,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Hard delete: a soft-deleted row would still occupy the slot's
		// unique index and reject the insert.
		if err := tx.Unscoped().
			Where("user_id = ? AND date = ? AND meal_type = ?", userID, date, mealType).
			Delete(&models.MealPlanEntry{}).Error; err != nil {
			return err
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	entry.Recipe = recipe
	return &entry, nil
}

// MoveEntry relocates a meal to another slot. Delete and re-key happen in
// one transaction: if anything fails the original entry is untouched, so
// the meal never ends up at neither slot or both.
func (s *MealPlanService) MoveEntry(userID uint, fromDate time.Time, fromMeal string, toDate time.Time, toMeal string) (*models.MealPlanEntry, error) {
	if !models.ValidMealType(fromMeal) || !models.ValidMealType(toMeal) {
		return nil, utils.NewValidationError("invalid meal type", "mealType")
	}

	fromDate = fromDate.UTC().Truncate(24 * time.Hour)
	toDate = toDate.UTC().Truncate(24 * time.Hour)

	var moved models.MealPlanEntry
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var entry models.MealPlanEntry
		if err := tx.Where("user_id = ? AND date = ? AND meal_type = ?", userID, fromDate, fromMeal).
			First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &utils.NotFoundError{Entity: "meal plan entry"}
			}
			return err
		}

		// An occupied target slot is overwritten, not duplicated. Unscoped so
		// the freed slot doesn't linger in the unique index.
		if err := tx.Unscoped().
			Where("user_id = ? AND date = ? AND meal_type = ? AND id <> ?", userID, toDate, toMeal, entry.ID).
			Delete(&models.MealPlanEntry{}).Error; err != nil {
			return err
		}

		entry.Date = toDate
		entry.MealType = toMeal
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}
		moved = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := config.DB.Preload("Recipe").First(&moved, moved.ID).Error; err != nil {
		return nil, err
	}
	return &moved, nil
}

func (s *MealPlanService) DeleteEntry(userID uint, date time.Time, mealType string) error {
	if !models.ValidMealType(mealType) {
		return utils.NewValidationError("invalid meal type", "mealType")
	}
	date = date.UTC().Truncate(24 * time.Hour)

	res := config.DB.Unscoped().
		Where("user_id = ? AND date = ? AND meal_type = ?", userID, date, mealType).
		Delete(&models.MealPlanEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "meal plan entry"}
	}
	return nil
}

// SaveWeekAsPlan snapshots the live week into a named plan. The copies have
// their own lifecycle; later edits to the live week don't touch them.
func (s *MealPlanService) SaveWeekAsPlan(userID uint, name, description string, weekStart time.Time) (*models.SavedMealPlan, error) {
	if name == "" {
		return nil, utils.NewValidationError("missing required field", "name")
	}

	from, to := weekRange(weekStart)
	plan := models.SavedMealPlan{
		UserID:      userID,
		Name:        name,
		Description: description,
		WeekStart:   from,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var entries []models.MealPlanEntry
		if err := tx.Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
			Find(&entries).Error; err != nil {
			return err
		}

		if err := tx.Create(&plan).Error; err != nil {
			return err
		}

		for _, e := range entries {
			copy := models.SavedMealPlanEntry{
				SavedMealPlanID: plan.ID,
				RecipeID:        e.RecipeID,
				Date:            e.Date,
				MealType:        e.MealType,
			}
			if err := tx.Create(&copy).Error; err != nil {
				return err
			}
			plan.Entries = append(plan.Entries, copy)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) ListPlans(userID uint) ([]models.SavedMealPlan, error) {
	var plans []models.SavedMealPlan
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (s *MealPlanService) GetPlan(userID, planID uint) (*models.SavedMealPlan, error) {
	var plan models.SavedMealPlan
	err := config.DB.
		Preload("Entries").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &utils.NotFoundError{Entity: "meal plan"}
		}
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) DeletePlan(userID, planID uint) error {
	plan, err := s.GetPlan(userID, planID)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("saved_meal_plan_id = ?", plan.ID).
			Delete(&models.SavedMealPlanEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(plan).Error
	})
}

// LoadPlanIntoWeek overwrites the live target week with the saved plan's
// entries. This is a destructive replace, not a merge. When targetWeek is
// nil the plan's own week is used; otherwise dates are remapped by their
// day offset from the plan's week start.
func (s *MealPlanService) LoadPlanIntoWeek(userID, planID uint, targetWeek *time.Time) ([]models.MealPlanEntry, error) {
	plan, err := s.GetPlan(userID, planID)
	if err != nil {
		return nil, err
	}

	target := plan.WeekStart
	if targetWeek != nil {
		target = targetWeek.UTC().Truncate(24 * time.Hour)
	}
	from, to := weekRange(target)

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
			Delete(&models.MealPlanEntry{}).Error; err != nil {
			return err
		}

		for _, e := range plan.Entries {
			offset := int(e.Date.Sub(plan.WeekStart).Hours() / 24)
			entry := models.MealPlanEntry{
				UserID:   userID,
				RecipeID: e.RecipeID,
				Date:     from.AddDate(0, 0, offset),
				MealType: e.MealType,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.ListWeek(userID, target)
}
