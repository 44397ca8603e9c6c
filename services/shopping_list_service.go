package services

import (
	"strings"
	"time"

	"github.com/Chase-42/recipe-vault-sub002/config"
	"github.com/Chase-42/recipe-vault-sub002/models"
	"github.com/Chase-42/recipe-vault-sub002/utils"

	"gorm.io/gorm"
)

type ShoppingListService struct {
	planner *MealPlanService
}

func NewShoppingListService(planner *MealPlanService) *ShoppingListService {
	return &ShoppingListService{planner: planner}
}

func (s *ShoppingListService) List(userID uint) ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// Add creates a manual item: no recipe back-reference, not meal-plan
// derived.
func (s *ShoppingListService) Add(userID uint, name string) (*models.ShoppingItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.NewValidationError("missing required field", "name")
	}
	item := models.ShoppingItem{UserID: userID, Name: name}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ShoppingListService) SetChecked(userID, itemID uint, checked bool) (*models.ShoppingItem, error) {
	var item models.ShoppingItem
	if err := config.DB.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		return nil, &utils.NotFoundError{Entity: "shopping item"}
	}
	item.Checked = checked
	if err := config.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ShoppingListService) Delete(userID, itemID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.ShoppingItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &utils.NotFoundError{Entity: "shopping item"}
	}
	return nil
}

func (s *ShoppingListService) ClearChecked(userID uint) (int64, error) {
	res := config.DB.Where("user_id = ? AND checked = ?", userID, true).Delete(&models.ShoppingItem{})
	return res.RowsAffected, res.Error
}

// GeneratedItem is one proposed shopping item from a week's recipes.
// Duplicates are surfaced, never silently merged: the caller decides
// whether to skip, replace or add them.
type GeneratedItem struct {
	Name           string `json:"name"`
	RecipeID       uint   `json:"recipeId"`
	IsDuplicate    bool   `json:"isDuplicate"`
	ExistingItemID *uint  `json:"existingItemId,omitempty"`
}

type GenerationResult struct {
	Items          []GeneratedItem `json:"items"`
	NewCount       int             `json:"newCount"`
	DuplicateCount int             `json:"duplicateCount"`
}

// Generation commit modes.
const (
	GenerateModeSkip    = "skip"    // insert only non-duplicates
	GenerateModeAdd     = "add"     // insert everything, duplicates included
	GenerateModeReplace = "replace" // drop the matching existing items, insert everything
)

func splitIngredients(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// GenerateFromWeek walks every meal entry in the week, splits each recipe's
// ingredient text into lines and compares them case-insensitively against
// the user's unchecked items. Two recipes sharing "salt" produce one
// proposed item flagged as a duplicate candidate, not two.
func (s *ShoppingListService) GenerateFromWeek(userID uint, weekStart time.Time) (*GenerationResult, error) {
	entries, err := s.planner.ListWeek(userID, weekStart)
	if err != nil {
		return nil, err
	}

	var existing []models.ShoppingItem
	if err := config.DB.
		Where("user_id = ? AND checked = ?", userID, false).
		Find(&existing).Error; err != nil {
		return nil, err
	}
	existingByName := make(map[string]uint, len(existing))
	for _, it := range existing {
		existingByName[strings.ToLower(strings.TrimSpace(it.Name))] = it.ID
	}

	result := &GenerationResult{}
	proposed := make(map[string]int) // lowercase name -> index into result.Items

	for _, entry := range entries {
		for _, line := range splitIngredients(entry.Recipe.Ingredients) {
			key := strings.ToLower(line)

			if idx, ok := proposed[key]; ok {
				// Same ingredient from another recipe this week; the first
				// occurrence keeps the back-reference.
				result.Items[idx].IsDuplicate = true
				continue
			}

			item := GeneratedItem{Name: line, RecipeID: entry.RecipeID}
			if id, ok := existingByName[key]; ok {
				existingID := id
				item.IsDuplicate = true
				item.ExistingItemID = &existingID
			}
			proposed[key] = len(result.Items)
			result.Items = append(result.Items, item)
		}
	}

	for _, it := range result.Items {
		if it.IsDuplicate {
			result.DuplicateCount++
		} else {
			result.NewCount++
		}
	}
	return result, nil
}

// ApplyGeneration commits a generation in one transaction; a failure leaves
// the list exactly as it was. Inserted items are tagged as meal-plan
// derived and back-reference their source recipe.
func (s *ShoppingListService) ApplyGeneration(userID uint, weekStart time.Time, mode string) (*GenerationResult, error) {
	switch mode {
	case GenerateModeSkip, GenerateModeAdd, GenerateModeReplace:
	default:
		return nil, utils.NewValidationError("invalid generation mode", "mode")
	}

	result, err := s.GenerateFromWeek(userID, weekStart)
	if err != nil {
		return nil, err
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for _, it := range result.Items {
			if it.IsDuplicate && mode == GenerateModeSkip {
				continue
			}
			if it.ExistingItemID != nil && mode == GenerateModeReplace {
				if err := tx.Where("id = ? AND user_id = ?", *it.ExistingItemID, userID).
					Delete(&models.ShoppingItem{}).Error; err != nil {
					return err
				}
			}

			recipeID := it.RecipeID
			item := models.ShoppingItem{
				UserID:       userID,
				Name:         it.Name,
				RecipeID:     &recipeID,
				FromMealPlan: true,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
