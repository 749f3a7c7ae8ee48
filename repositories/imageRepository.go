package repositories

import (
	"errors"

	"github.com/vikash-vatika/vatika-api/models"
	"gorm.io/gorm"
)

var ErrEmptyImageBatch = errors.New("no images in upload batch")

// ImagePayload is one uploaded file already turned into a durable URL by the
// storage service.
type ImagePayload struct {
	Url string
}

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// buildImageBatch maps a batch of payloads onto rows. When requestedPrimary
// is set only the first image of the batch becomes primary; the rest are
// always stored unflagged.
func buildImageBatch(productID uint, payloads []ImagePayload, requestedPrimary bool) []models.ProductImage {
	images := make([]models.ProductImage, len(payloads))
	for index, payload := range payloads {
		images[index] = models.ProductImage{
			ProductID: productID,
			Url:       payload.Url,
			IsPrimary: requestedPrimary && index == 0,
		}
	}
	return images
}

// AttachImages stores a batch of images for one product. When
// requestedPrimary is set, every existing image of the product is demoted
// first, keeping at most one primary image per product across calls. Demote
// and inserts share one transaction so a failed batch leaves the product's
// image set untouched.
func (r *ImageRepository) AttachImages(productID uint, payloads []ImagePayload, requestedPrimary bool) ([]models.ProductImage, error) {
	if len(payloads) == 0 {
		return nil, ErrEmptyImageBatch
	}

	images := buildImageBatch(productID, payloads, requestedPrimary)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if requestedPrimary {
			if err := tx.Model(&models.ProductImage{}).
				Where("product_id = ? AND is_primary = ?", productID, true).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		for i := range images {
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) ListByProduct(productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	if err := r.db.Where("product_id = ?", productID).Order("id").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
