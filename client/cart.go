// client/cart.go
package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const (
	// Orders above this subtotal ship free.
	freeShippingThreshold = 50.0
	standardShippingRate  = 5.99
)

var ErrEmptyCart = errors.New("cart is empty")

// CartItem is one line in the cart: a product snapshot plus quantity.
type CartItem struct {
	Product string  `json:"product"`
	Name    string  `json:"name"`
	Image   string  `json:"image"`
	Price   float64 `json:"price"`
	Qty     int     `json:"qty"`
}

// Cart holds the local shopping cart. Lines are keyed by product ID and
// keep their insertion order. When a file path is configured the cart is
// persisted after every mutation, best-effort; persistence failures
// never affect the in-memory state.
type Cart struct {
	mu    sync.Mutex
	path  string
	items []CartItem
}

// NewCart creates a cart backed by the given file path, loading any
// previously persisted contents. An empty path keeps the cart in memory
// only.
func NewCart(path string) *Cart {
	c := &Cart{path: path}
	c.load()
	return c
}

// DefaultCartPath returns the cart file location under the user's
// config directory.
func DefaultCartPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "storefront", "cart.json"), nil
}

func (c *Cart) load() {
	if c.path == "" {
		return
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}
	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return
	}
	c.items = items
}

func (c *Cart) persist() {
	if c.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return
	}
	data, err := json.Marshal(c.items)
	if err != nil {
		return
	}
	os.WriteFile(c.path, data, 0o600)
}

// AddItem puts qty units of the product in the cart. Adding a product
// that is already present increments its quantity instead of creating a
// second line. A qty below 1 counts as 1.
func (c *Cart) AddItem(p Product, qty int) {
	if qty < 1 {
		qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product == p.ID {
			c.items[i].Qty += qty
			c.persist()
			return
		}
	}

	c.items = append(c.items, CartItem{
		Product: p.ID,
		Name:    p.Name,
		Image:   p.Image,
		Price:   p.Price,
		Qty:     qty,
	})
	c.persist()
}

// UpdateQuantity sets the quantity of an existing line. A qty below 1
// removes the line, equivalent to RemoveItem. Unknown product IDs are
// ignored.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	if qty < 1 {
		c.RemoveItem(productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product == productID {
			c.items[i].Qty = qty
			c.persist()
			return
		}
	}
}

// RemoveItem drops the line for the product. Removing a product that is
// not in the cart is a no-op.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persist()
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Qty
	}
	return count
}

// Total returns the cart subtotal, recomputed from the lines on every
// call.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return subtotal(c.items)
}

func subtotal(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

// ShippingCost returns the shipping charge for a given subtotal.
func ShippingCost(subtotal float64) float64 {
	if subtotal > freeShippingThreshold {
		return 0
	}
	return standardShippingRate
}

// Checkout places an order for the current cart contents. The order
// total is the cart subtotal plus shipping. On success the cart is
// cleared; on failure it is left intact so the caller can retry.
func (c *Cart) Checkout(api *Client, shipping ShippingAddress, paymentMethod string) (*Order, error) {
	c.mu.Lock()
	if len(c.items) == 0 {
		c.mu.Unlock()
		return nil, ErrEmptyCart
	}

	orderItems := make([]OrderItem, len(c.items))
	for i, item := range c.items {
		orderItems[i] = OrderItem{
			Name:    item.Name,
			Qty:     item.Qty,
			Image:   item.Image,
			Price:   item.Price,
			Product: item.Product,
		}
	}
	sub := subtotal(c.items)
	c.mu.Unlock()

	order, err := api.CreateOrder(CreateOrderInput{
		OrderItems:      orderItems,
		ShippingAddress: shipping,
		PaymentMethod:   paymentMethod,
		TotalPrice:      sub + ShippingCost(sub),
	})
	if err != nil {
		return nil, err
	}

	c.Clear()
	return order, nil
}
