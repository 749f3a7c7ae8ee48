package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/models"
)

type CategoryProvider interface {
	List() ([]models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(slug string) error
}

func GetCategories(repo CategoryProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		categories, err := repo.List()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func GetCategory(repo CategoryProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		category, err := repo.GetBySlug(ctx.Param("slug"))
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, category)
	}
}

func CreateCategory(repo CategoryProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var category models.Category
		if err := ctx.ShouldBindJSON(&category); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if err := repo.Create(&category); err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, category)
	}
}

func UpdateCategory(repo CategoryProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		category, err := repo.GetBySlug(ctx.Param("slug"))
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}

		var input struct {
			Name string `json:"name" binding:"required"`
			Slug string `json:"slug" binding:"required"`
		}
		if err := ctx.ShouldBindJSON(&input); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		category.Name = input.Name
		category.Slug = input.Slug
		if err := repo.Update(category); err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, category)
	}
}

func DeleteCategory(repo CategoryProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := repo.Delete(ctx.Param("slug")); err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category deleted successfully."})
	}
}
