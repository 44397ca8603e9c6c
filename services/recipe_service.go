package services

import (
	"errors"
	"strings"

	"github.com/Chase-42/recipe-vault-sub002/config"
	"github.com/Chase-42/recipe-vault-sub002/models"
	"github.com/Chase-42/recipe-vault-sub002/utils"

	"gorm.io/gorm"
)

type RecipeService struct {
	scraper *ScraperService
}

func NewRecipeService(scraper *ScraperService) *RecipeService {
	return &RecipeService{scraper: scraper}
}

type RecipeInput struct {
	Name         string   `json:"name"`
	Link         string   `json:"link"`
	Ingredients  string   `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Tags         []string `json:"tags"`
}

// ImportFromLink creates a recipe from an external URL. Scraping is best
// effort: a dead sidecar or an unscrapable page still yields a recipe, just
// a sparser one.
func (s *RecipeService) ImportFromLink(userID uint, link, name string) (*models.Recipe, error) {
	recipe := models.Recipe{
		UserID: userID,
		Name:   name,
		Link:   link,
	}

	if scraped, err := s.scraper.Scrape(link); err == nil {
		if recipe.Name == "" {
			recipe.Name = scraped.Name
		}
		recipe.Instructions = scraped.Instructions
		recipe.Ingredients = strings.Join(scraped.Ingredients, "\n")
		if scraped.ImageURL != "" {
			recipe.ImageURL = scraped.ImageURL
			if blur, err := utils.FetchBlurDataURL(scraped.ImageURL); err == nil {
				recipe.BlurDataURL = blur
			}
		}
	}
	if recipe.Name == "" {
		recipe.Name = link
	}

	if err := config.DB.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Create(userID uint, in RecipeInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		UserID:       userID,
		Name:         in.Name,
		Link:         in.Link,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		return replaceTags(tx, &recipe, in.Tags)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, recipe.ID)
}

// List returns the caller's recipes with search, sort and pagination.
func (s *RecipeService) List(userID uint, search, sortBy string, offset, limit int) ([]models.Recipe, int64, error) {
	q := config.DB.Model(&models.Recipe{}).Where("user_id = ?", userID)
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch sortBy {
	case "oldest":
		q = q.Order("created_at ASC")
	case "favorites":
		q = q.Order("favorite DESC, created_at DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var recipes []models.Recipe
	err := q.Preload("Tags").Offset(offset).Limit(limit).Find(&recipes).Error
	return recipes, total, err
}

func (s *RecipeService) Get(userID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := config.DB.
		Preload("Tags").
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &utils.NotFoundError{Entity: "recipe"}
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Update(userID, recipeID uint, in RecipeInput) (*models.Recipe, error) {
	recipe, err := s.Get(userID, recipeID)
	if err != nil {
		return nil, err
	}

	recipe.Name = in.Name
	recipe.Link = in.Link
	recipe.Ingredients = in.Ingredients
	recipe.Instructions = in.Instructions

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		return replaceTags(tx, recipe, in.Tags)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, recipeID)
}

func (s *RecipeService) Delete(userID, recipeID uint) error {
	recipe, err := s.Get(userID, recipeID)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}

func (s *RecipeService) ToggleFavorite(userID, recipeID uint) (*models.Recipe, error) {
	recipe, err := s.Get(userID, recipeID)
	if err != nil {
		return nil, err
	}
	recipe.Favorite = !recipe.Favorite
	if err := config.DB.Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// SetImage stores the uploaded image URL and recomputes the placeholder.
func (s *RecipeService) SetImage(userID, recipeID uint, imageURL string) (*models.Recipe, error) {
	recipe, err := s.Get(userID, recipeID)
	if err != nil {
		return nil, err
	}

	recipe.ImageURL = imageURL
	if blur, err := utils.FetchBlurDataURL(imageURL); err == nil {
		recipe.BlurDataURL = blur
	}

	if err := config.DB.Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// replaceTags swaps the recipe's tag set for the given names, creating tags
// the user doesn't have yet.
func replaceTags(tx *gorm.DB, recipe *models.Recipe, names []string) error {
	if names == nil {
		return nil
	}
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var tag models.Tag
		if err := tx.Where("user_id = ? AND name = ?", recipe.UserID, name).
			FirstOrCreate(&tag, models.Tag{UserID: recipe.UserID, Name: name}).Error; err != nil {
			return err
		}
		tags = append(tags, tag)
	}
	return tx.Model(recipe).Association("Tags").Replace(tags)
}
