// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	UserID          uuid.UUID       `json:"user" gorm:"type:uuid;not null;index"`
	OrderItems      []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod   string          `json:"paymentMethod" gorm:"size:50;not null"`
	TotalPrice      float64         `json:"totalPrice" gorm:"type:decimal(10,2);not null"`
	IsPaid          bool            `json:"isPaid" gorm:"default:false"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `json:"isDelivered" gorm:"default:false"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
}

// OrderItem is a snapshot of a product at checkout time, decoupled from the
// live Product row so historical orders stay stable when products change.
type OrderItem struct {
	ID        uuid.UUID `json:"-" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Qty       int       `json:"qty" gorm:"not null"`
	Image     string    `json:"image" gorm:"size:512"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	ProductID uuid.UUID `json:"product" gorm:"type:uuid;not null"`
}
