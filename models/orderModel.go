package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether status is one of the four known values.
// The status field is a flat enumeration; any known value may follow any
// other.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	UserID      uint            `json:"userId"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:decimal(10,2)"`
	Status      string          `json:"status" gorm:"size:20;default:pending"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	EventDate   *datatypes.Date `json:"eventDate,omitempty"`
	EventType   string          `json:"eventType,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Items       []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem references the product it was bought as, but Price is a copy of
// the price at order time. Later product price changes never touch it.
type OrderItem struct {
	gorm.Model
	OrderID   uint            `json:"orderId"`
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity" gorm:"default:1"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
}
