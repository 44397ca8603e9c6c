package services

import (
	"time"

	"github.com/Chase-42/recipe-vault-sub002/config"
	"github.com/Chase-42/recipe-vault-sub002/models"
	"github.com/Chase-42/recipe-vault-sub002/utils"
)

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return &utils.RecipeError{Message: "could not create user", Status: 500}
	}
	return nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", &utils.AuthorizationError{Message: "invalid email or password"}
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", &utils.AuthorizationError{Message: "invalid email or password"}
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// StartPasswordReset stores a short-lived reset code and mails it. The
// caller answers the same way whether or not the email exists.
func StartPasswordReset(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, token)
}

func ResetPassword(token, newPassword string) error {
	var user models.User
	if err := config.DB.Where("reset_token = ?", token).First(&user).Error; err != nil {
		return utils.NewValidationError("invalid or expired token", "token")
	}
	if time.Now().After(user.ResetTokenExp) {
		return utils.NewValidationError("invalid or expired token", "token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
