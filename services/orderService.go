package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vikash-vatika/vatika-api/models"
	"github.com/vikash-vatika/vatika-api/policies"
	"gorm.io/datatypes"
)

var (
	ErrNoOrderItems     = errors.New("order must contain at least one item")
	ErrInvalidQuantity  = errors.New("order item quantity must be a positive integer")
	ErrInvalidStatus    = errors.New("unknown order status")
	ErrInvalidEventDate = errors.New("event date must be formatted YYYY-MM-DD")
)

const eventDateLayout = "2006-01-02"

// parseEventDate turns an optional plain-date string into a DATE column
// value. Empty means no event date.
func parseEventDate(value string) (*datatypes.Date, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(eventDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidEventDate, value)
	}
	date := datatypes.Date(parsed)
	return &date, nil
}

type OrderItemInput struct {
	ProductID uint            `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderInput struct {
	TotalAmount decimal.Decimal  `json:"totalAmount" binding:"required"`
	Phone       string           `json:"phone" binding:"required"`
	Address     string           `json:"address" binding:"required"`
	EventDate   string           `json:"eventDate"`
	EventType   string           `json:"eventType"`
	Notes       string           `json:"notes"`
	Items       []OrderItemInput `json:"items" binding:"required"`
}

type OrderStore interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	ListAll() ([]models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	UpdateStatus(id uint, status string) error
}

type ProductFinder interface {
	GetByID(id uint) (*models.Product, error)
}

type OrderService struct {
	orders   OrderStore
	products ProductFinder
}

func NewOrderService(orders OrderStore, products ProductFinder) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// CreateOrder builds the order aggregate for the calling identity and
// persists it in one unit. The owner is always the caller, whatever the
// request body claims. Item prices come from the client; an item without a
// price gets a snapshot of the product's current price instead.
func (s *OrderService) CreateOrder(identity *models.Identity, input OrderInput) (*models.Order, error) {
	if err := policies.Authorize(identity, policies.ActionCreate, policies.ResourceOrder, 0); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, ErrNoOrderItems
	}
	eventDate, err := parseEventDate(input.EventDate)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:      identity.UserID,
		TotalAmount: input.TotalAmount,
		Status:      models.OrderStatusPending,
		Phone:       input.Phone,
		Address:     input.Address,
		EventDate:   eventDate,
		EventType:   input.EventType,
		Notes:       input.Notes,
	}

	for _, item := range input.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			return nil, fmt.Errorf("%w (product %d)", ErrInvalidQuantity, item.ProductID)
		}

		product, err := s.products.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}

		price := item.Price
		if price.IsZero() {
			price = SnapshotPrice(product)
		}

		order.Items = append(order.Items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  quantity,
			Price:     price,
		})
	}

	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrder(identity *models.Identity, id uint) (*models.Order, error) {
	if identity == nil {
		return nil, policies.ErrAuthentication
	}
	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := policies.Authorize(identity, policies.ActionRetrieve, policies.ResourceOrder, order.UserID); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns every order for an admin and only the caller's own
// orders for anyone else, newest first.
func (s *OrderService) ListOrders(identity *models.Identity) ([]models.Order, error) {
	if identity == nil {
		return nil, policies.ErrAuthentication
	}
	if identity.IsAdmin() {
		return s.orders.ListAll()
	}
	return s.orders.ListByUser(identity.UserID)
}

// UpdateStatus sets the order status. Status is the only mutable field after
// creation; the value must be one of the known statuses, but any known
// status may follow any other.
func (s *OrderService) UpdateStatus(identity *models.Identity, id uint, status string) (*models.Order, error) {
	if identity == nil {
		return nil, policies.ErrAuthentication
	}
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w %q", ErrInvalidStatus, status)
	}

	order, err := s.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := policies.Authorize(identity, policies.ActionUpdate, policies.ResourceOrder, order.UserID); err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}
