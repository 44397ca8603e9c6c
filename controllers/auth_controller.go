package controllers

import (
	"net/http"

	"github.com/Chase-42/recipe-vault-sub002/services"
	"github.com/Chase-42/recipe-vault-sub002/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	if err := services.RegisterUser(input.Email, input.Password, input.FullName); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"message": "registration successful"})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	token, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"token": token})
}

func ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	if err := services.StartPasswordReset(input.Email); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	// Same answer whether or not the account exists.
	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "If the email exists, a reset code has been sent"})
}

func ResetPassword(c *gin.Context) {
	var input struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	if err := services.ResetPassword(input.Token, input.NewPassword); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "Password has been reset"})
}
