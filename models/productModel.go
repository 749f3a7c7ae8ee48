package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductImage is one stored image of a product. At most one image per
// product carries IsPrimary; the attach path keeps that invariant.
type ProductImage struct {
	gorm.Model
	ProductID uint   `json:"productId"`
	Url       string `json:"url"`
	IsPrimary bool   `json:"isPrimary"`
}

type Product struct {
	gorm.Model
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
	Featured    bool            `json:"featured"`
	Images      []ProductImage  `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
