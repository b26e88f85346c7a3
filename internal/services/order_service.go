// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shoply/storefront/internal/database"
	"github.com/shoply/storefront/internal/models"
	"github.com/shoply/storefront/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type OrderItemRequest struct {
	Name    string    `json:"name" validate:"required"`
	Qty     int       `json:"qty" validate:"required,min=1"`
	Image   string    `json:"image"`
	Price   float64   `json:"price" validate:"gte=0"`
	Product uuid.UUID `json:"product" validate:"required"`
}

type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required"`
	TotalPrice      float64                `json:"totalPrice" validate:"required,gt=0"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder writes the order row and its item rows in one transaction.
// There is no inventory reservation and no idempotency key; a client that
// resubmits after a transient failure can create a duplicate order.
func (s *OrderService) CreateOrder(userID uuid.UUID, req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if len(req.OrderItems) == 0 {
		return nil, errors.New("No order items")
	}

	order := &models.Order{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		TotalPrice:      req.TotalPrice,
	}

	for _, item := range req.OrderItems {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			Name:      item.Name,
			Qty:       item.Qty,
			Image:     item.Image,
			Price:     item.Price,
			ProductID: item.Product,
		})
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// GetUserOrders returns the caller's orders, newest first.
func (s *OrderService) GetUserOrders(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).
		Preload("OrderItems").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// GetOrder returns a single order, visible only to its owner or an admin.
func (s *OrderService) GetOrder(id uuid.UUID, userID uuid.UUID, isAdmin bool) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("OrderItems").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.UserID != userID && !isAdmin {
		return nil, errors.New("Order not found")
	}

	return &order, nil
}
