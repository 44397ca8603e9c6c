package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Chase-42/recipe-vault-sub002/config"
	"github.com/Chase-42/recipe-vault-sub002/models"
	"github.com/Chase-42/recipe-vault-sub002/services"
	"github.com/Chase-42/recipe-vault-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db
}

// newTestRouter wires the API routes with a stub identity instead of the
// JWT middleware.
func newTestRouter(t *testing.T, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := services.NewRealtimeHub()
	planner := services.NewMealPlanService()
	recipeCtl := NewRecipeController(services.NewRecipeService(services.NewScraperService()))
	mealPlanCtl := NewMealPlanController(planner, hub)
	shoppingCtl := NewShoppingListController(services.NewShoppingListService(planner), hub)

	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})

	recipes := api.Group("/recipes")
	{
		recipes.GET("", recipeCtl.List)
		recipes.POST("", recipeCtl.Create)
		recipes.GET("/:id", recipeCtl.Get)
		recipes.PUT("/:id", recipeCtl.Update)
		recipes.DELETE("/:id", recipeCtl.Delete)
		recipes.PATCH("/:id/favorite", recipeCtl.ToggleFavorite)
	}

	plannerGroup := api.Group("/meal-planner")
	{
		plannerGroup.GET("", mealPlanCtl.GetWeek)
		plannerGroup.POST("/meals", mealPlanCtl.AddMeal)
		plannerGroup.PUT("/meals/move", mealPlanCtl.MoveMeal)
		plannerGroup.DELETE("/meals", mealPlanCtl.DeleteMeal)
		plannerGroup.GET("/plans", mealPlanCtl.ListPlans)
		plannerGroup.POST("/plans", mealPlanCtl.SavePlan)
		plannerGroup.PUT("/plans", mealPlanCtl.LoadPlan)
		plannerGroup.GET("/plans/:id", mealPlanCtl.GetPlan)
		plannerGroup.DELETE("/plans/:id", mealPlanCtl.DeletePlan)
	}

	shopping := api.Group("/shopping-lists")
	{
		shopping.GET("", shoppingCtl.List)
		shopping.POST("", shoppingCtl.Add)
		shopping.PATCH("/:id", shoppingCtl.SetChecked)
		shopping.DELETE("/:id", shoppingCtl.Delete)
		shopping.DELETE("", shoppingCtl.ClearChecked)
		shopping.GET("/generate-enhanced", shoppingCtl.Generate)
		shopping.POST("/generate-enhanced", shoppingCtl.ApplyGeneration)
	}

	return r
}

func createTestUser(t *testing.T, email string) uint {
	t.Helper()
	user := models.User{Email: email, Password: "hashed", FullName: "Test User"}
	require.NoError(t, config.DB.Create(&user).Error)
	return user.ID
}

func createTestRecipe(t *testing.T, userID uint, name, ingredients string) models.Recipe {
	t.Helper()
	recipe := models.Recipe{UserID: userID, Name: name, Ingredients: ingredients}
	require.NoError(t, config.DB.Create(&recipe).Error)
	return recipe
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success    bool              `json:"success"`
	Data       json.RawMessage   `json:"data"`
	Error      string            `json:"error"`
	Code       string            `json:"code"`
	Pagination *utils.Pagination `json:"pagination"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func addMeal(t *testing.T, r *gin.Engine, recipeID uint, date, mealType string) {
	t.Helper()
	rec := doJSON(r, http.MethodPost, "/api/meal-planner/meals", gin.H{
		"recipeId": recipeID,
		"date":     date,
		"mealType": mealType,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
