package services

import (
	"github.com/Chase-42/recipe-vault-sub002/config"
	"github.com/Chase-42/recipe-vault-sub002/models"
	"github.com/Chase-42/recipe-vault-sub002/utils"
)

type UserProfile struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func GetProfile(userID uint) (*UserProfile, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, &utils.NotFoundError{Entity: "user"}
	}
	return &UserProfile{ID: user.ID, Email: user.Email, FullName: user.FullName}, nil
}

func UpdateProfile(userID uint, fullName string) (*UserProfile, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, &utils.NotFoundError{Entity: "user"}
	}

	user.FullName = fullName
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &UserProfile{ID: user.ID, Email: user.Email, FullName: user.FullName}, nil
}
