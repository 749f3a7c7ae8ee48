package repositories

import (
	"errors"

	"github.com/vikash-vatika/vatika-api/models"
	"gorm.io/gorm"
)

var ErrGalleryImageNotFound = errors.New("gallery image not found")

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) List() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := r.db.Order("id").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GalleryRepository) GetByID(id uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *GalleryRepository) ListFeatured() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := r.db.Where("featured = ?", true).Order("id").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GalleryRepository) ListByCategory(categoryID uint) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := r.db.Where("category_id = ?", categoryID).Order("id").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GalleryRepository) Create(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

func (r *GalleryRepository) Update(image *models.GalleryImage) error {
	return r.db.Save(image).Error
}

func (r *GalleryRepository) Delete(id uint) error {
	result := r.db.Unscoped().Delete(&models.GalleryImage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGalleryImageNotFound
	}
	return nil
}
