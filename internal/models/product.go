// internal/models/product.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name        string         `json:"name" gorm:"size:255;not null;index"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string         `json:"category" gorm:"size:100;not null;index"`
	Brand       string         `json:"brand" gorm:"size:100;not null"`
	Stock       int            `json:"stock" gorm:"not null;default:0"`
	Image       string         `json:"image" gorm:"size:512;not null"`
	Gallery     pq.StringArray `json:"gallery,omitempty" gorm:"type:text[]"`
	Rating      float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	NumReviews  int            `json:"numReviews" gorm:"default:0"`

	// Reviews are owned by the product and ordered by creation time.
	Reviews []Review `json:"reviews" gorm:"foreignKey:ProductID"`
}

// Review is never independently addressable; it lives and dies with its product.
type Review struct {
	ID        uuid.UUID `json:"-" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"user" gorm:"type:uuid;not null"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
}
