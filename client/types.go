// Package client provides a typed Go client for the storefront API,
// along with local session, authentication, and shopping cart state.
package client

import "time"

// User is the account shape returned by the API. The password hash is
// never present on the wire.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image"`
	Gallery     []string  `json:"gallery"`
	Rating      float64   `json:"rating"`
	NumReviews  int       `json:"numReviews"`
	Reviews     []Review  `json:"reviews"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Review struct {
	User      string    `json:"user"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type Order struct {
	ID              string          `json:"id"`
	User            string          `json:"user"`
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalPrice      float64         `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type OrderItem struct {
	Name    string  `json:"name"`
	Qty     int     `json:"qty"`
	Image   string  `json:"image"`
	Price   float64 `json:"price"`
	Product string  `json:"product"`
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// AuthResponse is the body returned by the register and login endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProductList is the paginated body returned by the product listing endpoint.
type ProductList struct {
	Products    []Product `json:"products"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}
