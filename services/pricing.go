package services

import (
	"github.com/shopspring/decimal"
	"github.com/vikash-vatika/vatika-api/models"
)

// SnapshotPrice returns the price to record on an order item at the moment
// the order is created. The value is copied onto the item and stays fixed
// even if the product price changes later.
func SnapshotPrice(product *models.Product) decimal.Decimal {
	return product.Price
}
