package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vikash-vatika/vatika-api/models"
	"github.com/vikash-vatika/vatika-api/repositories"
)

type ProductProvider interface {
	List(offset, limit int, search string) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	ListFeatured() ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}

type ImageAttacher interface {
	AttachImages(productID uint, payloads []repositories.ImagePayload, requestedPrimary bool) ([]models.ProductImage, error)
}

// FileUploader is the storage collaborator: raw upload bytes in, durable
// URL out.
type FileUploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader, keyPrefix string) (string, error)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id < 1 {
		respondWithError(ctx, http.StatusBadRequest, "Invalid "+name, err)
		return 0, false
	}
	return uint(id), true
}

func GetProducts(repo ProductProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))
		if limit < 1 {
			limit = 12
		}
		offset := (page - 1) * limit

		products, total, err := repo.List(offset, limit, ctx.Query("search"))
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"products": products,
			"metadata": gin.H{
				"total": total,
				"page":  page,
				"limit": limit,
			},
		})
	}
}

func GetProduct(repo ProductProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		product, err := repo.GetByID(productID)
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, product)
	}
}

func GetFeaturedProducts(repo ProductProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		products, err := repo.ListFeatured()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch featured products", err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func CreateProduct(repo ProductProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var product models.Product
		if err := ctx.ShouldBindJSON(&product); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if err := repo.Create(&product); err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, product)
	}
}

func UpdateProduct(repo ProductProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		product, err := repo.GetByID(productID)
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}

		var input struct {
			Name        string          `json:"name" binding:"required"`
			Description string          `json:"description" binding:"required"`
			Price       decimal.Decimal `json:"price"`
			CategoryID  uint            `json:"categoryId" binding:"required"`
			Featured    bool            `json:"featured"`
		}
		if err := ctx.ShouldBindJSON(&input); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.CategoryID = input.CategoryID
		product.Featured = input.Featured
		if err := repo.Update(product); err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, product)
	}
}

func DeleteProduct(repo ProductProvider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		if err := repo.Delete(productID); err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully."})
	}
}

// UploadProductImages takes a multipart batch, pushes every file to the
// storage service, then attaches the whole batch in one atomic call. One
// failed upload rejects the batch before any database row is written.
func UploadProductImages(repo ProductProvider, images ImageAttacher, uploader FileUploader) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		product, err := repo.GetByID(productID)
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}

		form, err := ctx.MultipartForm()
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
			return
		}

		files := form.File["images"]
		if len(files) == 0 {
			respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
			return
		}
		requestedPrimary := ctx.PostForm("is_primary") == "true"

		keyPrefix := "products/" + strconv.Itoa(int(product.ID))
		payloads := make([]repositories.ImagePayload, 0, len(files))
		for _, file := range files {
			url, err := uploader.Upload(ctx.Request.Context(), file, keyPrefix)
			if err != nil {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to upload "+file.Filename, err)
				return
			}
			payloads = append(payloads, repositories.ImagePayload{Url: url})
		}

		attached, err := images.AttachImages(product.ID, payloads, requestedPrimary)
		if err != nil {
			respondWithServiceError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, gin.H{"images": attached})
	}
}
