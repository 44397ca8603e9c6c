package controllers

import (
	"net/http"
	"strconv"

	"github.com/Chase-42/recipe-vault-sub002/middlewares"
	"github.com/Chase-42/recipe-vault-sub002/services"
	"github.com/Chase-42/recipe-vault-sub002/utils"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	recipes *services.RecipeService
}

func NewRecipeController(recipes *services.RecipeService) *RecipeController {
	return &RecipeController{recipes: recipes}
}

const defaultPageSize = 12

func (rc *RecipeController) List(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}

	recipes, total, err := rc.recipes.List(userID, c.Query("search"), c.Query("sortBy"), offset, limit)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	utils.RespondPage(c, http.StatusOK, recipes, utils.NewPagination(total, offset, limit))
}

type CreateRecipeInput struct {
	Link         string   `json:"link"`
	Name         string   `json:"name"`
	Ingredients  string   `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Tags         []string `json:"tags"`
}

// Create either imports from a link (scraping the page for details) or
// stores a fully specified recipe.
func (rc *RecipeController) Create(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	var input CreateRecipeInput
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	if input.Link == "" && input.Name == "" {
		utils.HandleAPIError(c, utils.NewValidationError("link or name is required", "link", "name"))
		return
	}

	if input.Link != "" && input.Ingredients == "" && input.Instructions == "" {
		recipe, err := rc.recipes.ImportFromLink(userID, input.Link, input.Name)
		if err != nil {
			utils.HandleAPIError(c, err)
			return
		}
		utils.RespondSuccess(c, http.StatusCreated, recipe)
		return
	}

	recipe, err := rc.recipes.Create(userID, services.RecipeInput{
		Name:         input.Name,
		Link:         input.Link,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		Tags:         input.Tags,
	})
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, recipe)
}

func (rc *RecipeController) Get(c *gin.Context) {
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

	recipe, err := rc.recipes.Get(userID, id)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, recipe)
}

func (rc *RecipeController) Update(c *gin.Context) {
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
		Name         string   `json:"name" binding:"required"`
		Link         string   `json:"link"`
		Ingredients  string   `json:"ingredients"`
		Instructions string   `json:"instructions"`
		Tags         []string `json:"tags"`
	}
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	recipe, err := rc.recipes.Update(userID, id, services.RecipeInput{
		Name:         input.Name,
		Link:         input.Link,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		Tags:         input.Tags,
	})
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, recipe)
}

func (rc *RecipeController) Delete(c *gin.Context) {
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

	if err := rc.recipes.Delete(userID, id); err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (rc *RecipeController) ToggleFavorite(c *gin.Context) {
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

	recipe, err := rc.recipes.ToggleFavorite(userID, id)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, recipe)
}

type UploadImageInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadImage pushes a base64 data URL to S3 and stores the public URL plus
// a fresh blur placeholder on the recipe.
func (rc *RecipeController) UploadImage(c *gin.Context) {
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

	var input UploadImageInput
	if err := bindJSON(c, &input); err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	url, err := utils.UploadBase64Image(input.ImageBase64, strconv.FormatUint(uint64(id), 10))
	if err != nil {
		utils.HandleAPIError(c, &utils.RecipeError{Message: "image upload failed", Status: http.StatusBadGateway})
		return
	}

	recipe, err := rc.recipes.SetImage(userID, id, url)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, recipe)
}
