package controllers

import (
	"net/http"
	"time"

	"github.com/Chase-42/recipe-vault-sub002/middlewares"
	"github.com/Chase-42/recipe-vault-sub002/services"
	"github.com/Chase-42/recipe-vault-sub002/utils"

	"github.com/gin-gonic/gin"
)

type MealPlanController struct {
	planner *services.MealPlanService
	hub     *services.RealtimeHub
}

func NewMealPlanController(planner *services.MealPlanService, hub *services.RealtimeHub) *MealPlanController {
	return &MealPlanController{planner: planner, hub: hub}
}

func (mc *MealPlanController) notify(userID uint, action string) {
	mc.hub.NotifyChange(userID, services.ChangeEvent{Type: "mealplan", Action: action})
}

func (mc *MealPlanController) GetWeek(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	weekStart, err := utils.ParseDateQuery(c, "weekStart")
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	entries, err := mc.planner.ListWeek(userID, weekStart)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, entries)
}

type AddMealInput struct {
	RecipeID uint   `json:"recipeId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	MealType string `json:"mealType" binding:"required"`
}

func (mc *MealPlanController) AddMeal(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	var input AddMealInput
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	date, err := utils.ParseDate("date", input.Date)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	entry, err := mc.planner.AddEntry(userID, input.RecipeID, date, input.MealType)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	mc.notify(userID, "updated")
	utils.RespondSuccess(c, http.StatusCreated, entry)
}

type MoveMealInput struct {
	FromDate     string `json:"fromDate" binding:"required"`
	FromMealType string `json:"fromMealType" binding:"required"`
	ToDate       string `json:"toDate" binding:"required"`
	ToMealType   string `json:"toMealType" binding:"required"`
}

func (mc *MealPlanController) MoveMeal(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	var input MoveMealInput
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	fromDate, err := utils.ParseDate("fromDate", input.FromDate)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	toDate, err := utils.ParseDate("toDate", input.ToDate)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	entry, err := mc.planner.MoveEntry(userID, fromDate, input.FromMealType, toDate, input.ToMealType)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	mc.notify(userID, "updated")
	utils.RespondSuccess(c, http.StatusOK, entry)
}

func (mc *MealPlanController) DeleteMeal(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	date, err := utils.ParseDateQuery(c, "date")
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	mealType := c.Query("mealType")

	if err := mc.planner.DeleteEntry(userID, date, mealType); err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	mc.notify(userID, "deleted")
	utils.RespondSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

type SavePlanInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	WeekStart   string `json:"weekStart" binding:"required"`
}

// SavePlan snapshots the live week under a name.
func (mc *MealPlanController) SavePlan(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	var input SavePlanInput
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	weekStart, err := utils.ParseDate("weekStart", input.WeekStart)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	plan, err := mc.planner.SaveWeekAsPlan(userID, input.Name, input.Description, weekStart)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, gin.H{
		"id":          plan.ID,
		"name":        plan.Name,
		"description": plan.Description,
	})
}

func (mc *MealPlanController) ListPlans(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	plans, err := mc.planner.ListPlans(userID)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, plans)
}

func (mc *MealPlanController) GetPlan(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	plan, err := mc.planner.GetPlan(userID, id)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, plan)
}

func (mc *MealPlanController) DeletePlan(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	if err := mc.planner.DeletePlan(userID, id); err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

type LoadPlanInput struct {
	MealPlanID uint   `json:"mealPlanId" binding:"required"`
	WeekStart  string `json:"weekStart"`
}

// LoadPlan overwrites the live target week with the saved plan's entries.
func (mc *MealPlanController) LoadPlan(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	var input LoadPlanInput
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	var target *time.Time
	if input.WeekStart != "" {
		parsed, err := utils.ParseDate("weekStart", input.WeekStart)
		if err != nil {
			utils.HandleAPIError(c, err)
			return
		}
		target = &parsed
	}

	entries, err := mc.planner.LoadPlanIntoWeek(userID, input.MealPlanID, target)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	mc.notify(userID, "updated")
	utils.RespondSuccess(c, http.StatusOK, entries)
}
