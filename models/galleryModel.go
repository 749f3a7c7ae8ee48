package models

import "gorm.io/gorm"

type GalleryImage struct {
	gorm.Model
	Title       string `json:"title"`
	Url         string `json:"url"`
	CategoryID  *uint  `json:"categoryId"`
	Description string `json:"description"`
	Featured    bool   `json:"featured"`
}
