package services

import (
	"fmt"
	"testing"

	"github.com/Chase-42/recipe-vault-sub002/config"
	"github.com/Chase-42/recipe-vault-sub002/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory sqlite database.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or the pool hands out empty :memory: databases
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db
}

func createTestUser(t *testing.T, email string) uint {
	t.Helper()
	user := models.User{Email: email, Password: "hashed", FullName: "Test User"}
	require.NoError(t, config.DB.Create(&user).Error)
	return user.ID
}

func createTestRecipe(t *testing.T, userID uint, name, ingredients string) models.Recipe {
	t.Helper()
	recipe := models.Recipe{
		UserID:      userID,
		Name:        name,
		Ingredients: ingredients,
	}
	require.NoError(t, config.DB.Create(&recipe).Error)
	return recipe
}

func uniqueEmail(t *testing.T) string {
	return fmt.Sprintf("%s@example.com", t.Name())
}
