package controllers

import (
	"net/http"

	"github.com/Chase-42/recipe-vault-sub002/middlewares"
	"github.com/Chase-42/recipe-vault-sub002/services"
	"github.com/Chase-42/recipe-vault-sub002/utils"

	"github.com/gin-gonic/gin"
)

type ShoppingListController struct {
	lists *services.ShoppingListService
	hub   *services.RealtimeHub
}

func NewShoppingListController(lists *services.ShoppingListService, hub *services.RealtimeHub) *ShoppingListController {
	return &ShoppingListController{lists: lists, hub: hub}
}

func (sc *ShoppingListController) notify(userID uint, action string) {
	sc.hub.NotifyChange(userID, services.ChangeEvent{Type: "shopping", Action: action})
}

func (sc *ShoppingListController) List(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	items, err := sc.lists.List(userID)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, items)
}

func (sc *ShoppingListController) Add(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	item, err := sc.lists.Add(userID, input.Name)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	sc.notify(userID, "created")
	utils.RespondSuccess(c, http.StatusCreated, item)
}

func (sc *ShoppingListController) SetChecked(c *gin.Context) {
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

	var input struct {
		Checked *bool `json:"checked" binding:"required"`
	}
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	item, err := sc.lists.SetChecked(userID, id, *input.Checked)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	sc.notify(userID, "updated")
	utils.RespondSuccess(c, http.StatusOK, item)
}

func (sc *ShoppingListController) Delete(c *gin.Context) {
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

	if err := sc.lists.Delete(userID, id); err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	sc.notify(userID, "deleted")
	utils.RespondSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// ClearChecked removes every checked item. The checked=true parameter is
// mandatory so a bare DELETE on the collection can't wipe anything.
func (sc *ShoppingListController) ClearChecked(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	if c.Query("checked") != "true" {
		utils.HandleAPIError(c, utils.NewValidationError("expected checked=true", "checked"))
		return
	}

	removed, err := sc.lists.ClearChecked(userID)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	sc.notify(userID, "deleted")
	utils.RespondSuccess(c, http.StatusOK, gin.H{"removed": removed})
}

// Generate is the dry run: it reports what a generation would add and which
// entries collide with existing unchecked items, without writing anything.
func (sc *ShoppingListController) Generate(c *gin.Context) {
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

	result, err := sc.lists.GenerateFromWeek(userID, weekStart)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result)
}

type ApplyGenerationInput struct {
	WeekStart string `json:"weekStart" binding:"required"`
	Mode      string `json:"mode" binding:"required"`
}

func (sc *ShoppingListController) ApplyGeneration(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	var input ApplyGenerationInput
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	weekStart, err := utils.ParseDate("weekStart", input.WeekStart)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	result, err := sc.lists.ApplyGeneration(userID, weekStart, input.Mode)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	sc.notify(userID, "generated")
	utils.RespondSuccess(c, http.StatusCreated, result)
}
