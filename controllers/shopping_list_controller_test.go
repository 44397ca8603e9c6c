package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Chase-42/recipe-vault-sub002/models"
	"github.com/Chase-42/recipe-vault-sub002/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two recipes sharing "salt" in one week must yield a single proposed salt
// item flagged as a duplicate candidate, not two rows.
func TestGenerateEnhanced_SharedIngredientFlaggedOnce(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t, "shopper@example.com")
	r := newTestRouter(t, userID)

	pasta := createTestRecipe(t, userID, "Pasta", "pasta\nsalt")
	curry := createTestRecipe(t, userID, "Curry", "rice\nsalt")
	addMeal(t, r, pasta.ID, "2024-01-01", models.MealTypeLunch)
	addMeal(t, r, curry.ID, "2024-01-02", models.MealTypeDinner)

	rec := doJSON(r, http.MethodGet, "/api/shopping-lists/generate-enhanced?weekStart=2024-01-01", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result services.GenerationResult
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &result))

	var salt []services.GeneratedItem
	for _, it := range result.Items {
		if it.Name == "salt" {
			salt = append(salt, it)
		}
	}
	require.Len(t, salt, 1)
	assert.True(t, salt[0].IsDuplicate)
	assert.Equal(t, 1, result.DuplicateCount)
	assert.Equal(t, 2, result.NewCount)

	// a dry run writes nothing
	rec = doJSON(r, http.MethodGet, "/api/shopping-lists", nil)
	var items []models.ShoppingItem
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &items))
	assert.Empty(t, items)
}

func TestGenerateEnhanced_CommitTagsProvenance(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t, "shopper@example.com")
	r := newTestRouter(t, userID)

	recipe := createTestRecipe(t, userID, "Cereal", "milk\noats")
	addMeal(t, r, recipe.ID, "2024-01-01", models.MealTypeBreakfast)

	rec := doJSON(r, http.MethodPost, "/api/shopping-lists/generate-enhanced", gin.H{
		"weekStart": "2024-01-01",
		"mode":      services.GenerateModeSkip,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(r, http.MethodGet, "/api/shopping-lists", nil)
	var items []models.ShoppingItem
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &items))
	require.Len(t, items, 2)
	for _, it := range items {
		assert.True(t, it.FromMealPlan)
		require.NotNil(t, it.RecipeID)
		assert.Equal(t, recipe.ID, *it.RecipeID)
	}
}

func TestShoppingItemLifecycle(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t, "shopper@example.com")
	r := newTestRouter(t, userID)

	rec := doJSON(r, http.MethodPost, "/api/shopping-lists", gin.H{"name": "milk"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.ShoppingItem
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &item))
	assert.False(t, item.FromMealPlan)

	rec = doJSON(r, http.MethodPatch, "/api/shopping-lists/1", gin.H{"checked": true})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &item))
	assert.True(t, item.Checked)

	rec = doJSON(r, http.MethodDelete, "/api/shopping-lists/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/shopping-lists", nil)
	var items []models.ShoppingItem
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &items))
	assert.Empty(t, items)
}

// A bare DELETE on the collection must not clear anything; the destructive
// intent has to be spelled out with checked=true.
func TestClearChecked_RequiresCheckedParam(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t, "shopper@example.com")
	r := newTestRouter(t, userID)

	rec := doJSON(r, http.MethodPost, "/api/shopping-lists", gin.H{"name": "milk"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(r, http.MethodPatch, "/api/shopping-lists/1", gin.H{"checked": true})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodDelete, "/api/shopping-lists", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Code)

	rec = doJSON(r, http.MethodGet, "/api/shopping-lists", nil)
	var items []models.ShoppingItem
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &items))
	require.Len(t, items, 1, "a rejected clear must not delete anything")

	rec = doJSON(r, http.MethodDelete, "/api/shopping-lists?checked=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/shopping-lists", nil)
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &items))
	assert.Empty(t, items)
}

func TestShoppingListInvalidID(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t, "shopper@example.com")
	r := newTestRouter(t, userID)

	rec := doJSON(r, http.MethodPatch, "/api/shopping-lists/abc", gin.H{"checked": true})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Code)
}
