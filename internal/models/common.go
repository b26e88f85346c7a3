// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Address is the optional address stored on a user profile.
type Address struct {
	Street  string `json:"street" gorm:"size:255"`
	City    string `json:"city" gorm:"size:100"`
	State   string `json:"state" gorm:"size:100"`
	ZipCode string `json:"zipCode" gorm:"size:20"`
	Country string `json:"country" gorm:"size:100"`
}

// ShippingAddress is the address snapshotted onto an order at checkout.
type ShippingAddress struct {
	Address    string `json:"address" gorm:"size:255"`
	City       string `json:"city" gorm:"size:100"`
	PostalCode string `json:"postalCode" gorm:"size:20"`
	Country    string `json:"country" gorm:"size:100"`
}

// Payment methods are recorded as labels only; no processor is invoked.
const (
	PaymentMethodCreditCard     = "credit-card"
	PaymentMethodPayPal         = "paypal"
	PaymentMethodCashOnDelivery = "cash-on-delivery"
)
