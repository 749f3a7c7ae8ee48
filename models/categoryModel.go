package models

import "gorm.io/gorm"

// Category groups products and gallery images. Deleting a category takes
// its products with it, while gallery images only lose the link.
type Category struct {
	gorm.Model
	Name          string         `json:"name" binding:"required"`
	Slug          string         `json:"slug" binding:"required" gorm:"size:100;uniqueIndex"`
	Products      []Product      `json:"products,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	GalleryImages []GalleryImage `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}
