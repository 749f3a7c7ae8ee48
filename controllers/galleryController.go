package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vikash-vatika/vatika-api/models"
)

type GalleryProvider interface {
	List() ([]models.GalleryImage, error)
	GetByID(id uint) (*models.GalleryImage, error)
	ListFeatured() ([]models.GalleryImage, error)
	ListByCategory(categoryID uint) ([]models.GalleryImage, error)
	Create(image *models.GalleryImage) error
	Update(image *models.GalleryImage) error
	Delete(id uint) error
}

func GetGalleryImages(repo GalleryProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		images, err := repo.List()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch gallery images", err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"images": images})
	}
}

func GetGalleryImage(repo GalleryProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		imageID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		image, err := repo.GetByID(imageID)
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, image)
	}
}

func GetFeaturedGalleryImages(repo GalleryProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		images, err := repo.ListFeatured()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch featured gallery images", err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"images": images})
	}
}

// GetGalleryImagesByCategory requires a category_id query parameter; its
// absence is a client error, not an empty result.
func GetGalleryImagesByCategory(repo GalleryProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		categoryIDStr := ctx.Query("category_id")
		if categoryIDStr == "" {
			sendErrorResponse(ctx, http.StatusBadRequest, "category_id query parameter is required")
			return
		}
		categoryID, err := strconv.Atoi(categoryIDStr)
		if err != nil || categoryID < 1 {
			respondWithError(ctx, http.StatusBadRequest, "Invalid category_id", err)
			return
		}

		images, err := repo.ListByCategory(uint(categoryID))
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch gallery images", err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"images": images})
	}
}

// CreateGalleryImage stores the uploaded file first, then the record that
// points at it.
func CreateGalleryImage(repo GalleryProvider, uploader FileUploader) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		title := ctx.PostForm("title")
		if title == "" {
			sendErrorResponse(ctx, http.StatusBadRequest, "title is required")
			return
		}

		file, err := ctx.FormFile("image")
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "An image file is required", err)
			return
		}

		image := models.GalleryImage{
			Title:       title,
			Description: ctx.PostForm("description"),
			Featured:    ctx.PostForm("featured") == "true",
		}
		if categoryIDStr := ctx.PostForm("category_id"); categoryIDStr != "" {
			categoryID, err := strconv.Atoi(categoryIDStr)
			if err != nil || categoryID < 1 {
				respondWithError(ctx, http.StatusBadRequest, "Invalid category_id", err)
				return
			}
			id := uint(categoryID)
			image.CategoryID = &id
		}

		url, err := uploader.Upload(ctx.Request.Context(), file, "gallery")
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to upload "+file.Filename, err)
			return
		}
		image.Url = url

		if err := repo.Create(&image); err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, image)
	}
}

func UpdateGalleryImage(repo GalleryProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		imageID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		image, err := repo.GetByID(imageID)
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}

		var input struct {
			Title       string `json:"title" binding:"required"`
			Description string `json:"description"`
			CategoryID  *uint  `json:"categoryId"`
			Featured    bool   `json:"featured"`
		}
		if err := ctx.ShouldBindJSON(&input); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		image.Title = input.Title
		image.Description = input.Description
		image.CategoryID = input.CategoryID
		image.Featured = input.Featured
		if err := repo.Update(image); err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, image)
	}
}

func DeleteGalleryImage(repo GalleryProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		imageID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		if err := repo.Delete(imageID); err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Gallery image deleted successfully."})
	}
}
