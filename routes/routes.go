package routes

import (
	"time"

	"github.com/Chase-42/recipe-vault-sub002/controllers"
	"github.com/Chase-42/recipe-vault-sub002/middlewares"
	"github.com/Chase-42/recipe-vault-sub002/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(counters middlewares.CounterStore) *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	scraper := services.NewScraperService()
	planner := services.NewMealPlanService()

	recipeCtl := controllers.NewRecipeController(services.NewRecipeService(scraper))
	mealPlanCtl := controllers.NewMealPlanController(planner, hub)
	shoppingCtl := controllers.NewShoppingListController(services.NewShoppingListService(planner), hub)
	realtimeCtl := controllers.NewRealtimeController(hub)

	limit := func(routeKey string, max int, window time.Duration) gin.HandlerFunc {
		return middlewares.RateLimit(counters, middlewares.RateLimitConfig{
			MaxRequests: max,
			Window:      window,
			RouteKey:    routeKey,
		})
	}

	// Public auth routes, throttled harder than the rest.
	auth := r.Group("/auth")
	auth.Use(limit("auth", 10, 15*time.Minute))
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		recipes := api.Group("/recipes")
		recipes.Use(limit("recipes", 100, time.Minute))
		{
			recipes.GET("", recipeCtl.List)
			recipes.POST("", limit("recipes-import", 20, time.Minute), recipeCtl.Create)
			recipes.GET("/:id", recipeCtl.Get)
			recipes.PUT("/:id", recipeCtl.Update)
			recipes.DELETE("/:id", recipeCtl.Delete)
			recipes.PATCH("/:id/favorite", recipeCtl.ToggleFavorite)
			recipes.POST("/:id/image", limit("recipes-image", 20, time.Minute), recipeCtl.UploadImage)
		}

		planner := api.Group("/meal-planner")
		planner.Use(limit("meal-planner", 100, time.Minute))
		{
			planner.GET("", mealPlanCtl.GetWeek)
			planner.POST("/meals", mealPlanCtl.AddMeal)
			planner.PUT("/meals/move", mealPlanCtl.MoveMeal)
			planner.DELETE("/meals", mealPlanCtl.DeleteMeal)
			planner.GET("/plans", mealPlanCtl.ListPlans)
			planner.POST("/plans", mealPlanCtl.SavePlan)
			planner.PUT("/plans", mealPlanCtl.LoadPlan)
			planner.GET("/plans/:id", mealPlanCtl.GetPlan)
			planner.DELETE("/plans/:id", mealPlanCtl.DeletePlan)
		}

		shopping := api.Group("/shopping-lists")
		shopping.Use(limit("shopping-lists", 100, time.Minute))
		{
			shopping.GET("", shoppingCtl.List)
			shopping.POST("", shoppingCtl.Add)
			shopping.PATCH("/:id", shoppingCtl.SetChecked)
			shopping.DELETE("/:id", shoppingCtl.Delete)
			shopping.DELETE("", shoppingCtl.ClearChecked)
			shopping.GET("/generate-enhanced", limit("shopping-generate", 10, time.Minute), shoppingCtl.Generate)
			shopping.POST("/generate-enhanced", limit("shopping-generate", 10, time.Minute), shoppingCtl.ApplyGeneration)
		}

		api.GET("/ws", realtimeCtl.UpdatesWS)
	}

	return r
}
