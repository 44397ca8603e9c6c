package controllers

import (
	"net/http"

	"github.com/Chase-42/recipe-vault-sub002/middlewares"
	"github.com/Chase-42/recipe-vault-sub002/services"
	"github.com/Chase-42/recipe-vault-sub002/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	profile, err := services.GetProfile(userID)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	var input struct {
		FullName string `json:"full_name" binding:"required"`
	}
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	profile, err := services.UpdateProfile(userID, input.FullName)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, profile)
}
