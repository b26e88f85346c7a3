// client/cart_test.go
package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CartTestSuite struct {
	suite.Suite
	cart *Cart
}

func (suite *CartTestSuite) SetupTest() {
	suite.cart = NewCart("")
}

func (suite *CartTestSuite) TestAddItemMergesExistingLine() {
	phone := Product{ID: "p1", Name: "Phone", Price: 10}

	suite.cart.AddItem(phone, 2)
	suite.cart.AddItem(phone, 3)

	items := suite.cart.Items()
	require.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), 5, items[0].Qty)
	assert.Equal(suite.T(), 5, suite.cart.ItemCount())
}

func (suite *CartTestSuite) TestAddItemPreservesInsertionOrder() {
	suite.cart.AddItem(Product{ID: "p1", Name: "Phone", Price: 10}, 1)
	suite.cart.AddItem(Product{ID: "p2", Name: "Case", Price: 5}, 1)
	suite.cart.AddItem(Product{ID: "p1", Name: "Phone", Price: 10}, 1)

	items := suite.cart.Items()
	require.Len(suite.T(), items, 2)
	assert.Equal(suite.T(), "p1", items[0].Product)
	assert.Equal(suite.T(), "p2", items[1].Product)
}

func (suite *CartTestSuite) TestAddItemClampsQuantityToOne() {
	suite.cart.AddItem(Product{ID: "p1", Price: 10}, 0)

	items := suite.cart.Items()
	require.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), 1, items[0].Qty)
}

func (suite *CartTestSuite) TestTotalRecomputedFromLines() {
	suite.cart.AddItem(Product{ID: "p1", Price: 10}, 2)
	suite.cart.AddItem(Product{ID: "p2", Price: 5}, 3)

	assert.InDelta(suite.T(), 35.0, suite.cart.Total(), 0.001)

	suite.cart.UpdateQuantity("p2", 1)
	assert.InDelta(suite.T(), 25.0, suite.cart.Total(), 0.001)
}

func (suite *CartTestSuite) TestUpdateQuantityToZeroEqualsRemove() {
	suite.cart.AddItem(Product{ID: "p1", Price: 10}, 2)
	suite.cart.AddItem(Product{ID: "p2", Price: 5}, 1)

	suite.cart.UpdateQuantity("p1", 0)
	suite.cart.RemoveItem("p2")

	assert.Empty(suite.T(), suite.cart.Items())
	assert.Zero(suite.T(), suite.cart.Total())
}

func (suite *CartTestSuite) TestUpdateQuantityUnknownProductIgnored() {
	suite.cart.AddItem(Product{ID: "p1", Price: 10}, 1)

	suite.cart.UpdateQuantity("missing", 5)

	items := suite.cart.Items()
	require.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), 1, items[0].Qty)
}

func (suite *CartTestSuite) TestRemoveItemIdempotent() {
	suite.cart.AddItem(Product{ID: "p1", Price: 10}, 1)

	suite.cart.RemoveItem("p1")
	suite.cart.RemoveItem("p1")

	assert.Empty(suite.T(), suite.cart.Items())
}

func (suite *CartTestSuite) TestClear() {
	suite.cart.AddItem(Product{ID: "p1", Price: 10}, 2)
	suite.cart.Clear()

	assert.Empty(suite.T(), suite.cart.Items())
	assert.Zero(suite.T(), suite.cart.ItemCount())
}

func (suite *CartTestSuite) TestPersistenceAcrossReload() {
	path := filepath.Join(suite.T().TempDir(), "cart.json")

	cart := NewCart(path)
	cart.AddItem(Product{ID: "p1", Name: "Phone", Price: 10}, 2)
	cart.AddItem(Product{ID: "p2", Name: "Case", Price: 5}, 1)

	reloaded := NewCart(path)
	items := reloaded.Items()
	require.Len(suite.T(), items, 2)
	assert.Equal(suite.T(), "p1", items[0].Product)
	assert.Equal(suite.T(), 2, items[0].Qty)
	assert.InDelta(suite.T(), 25.0, reloaded.Total(), 0.001)
}

func TestCartSuite(t *testing.T) {
	suite.Run(t, new(CartTestSuite))
}

func TestShippingCost(t *testing.T) {
	assert.InDelta(t, 5.99, ShippingCost(0), 0.001)
	assert.InDelta(t, 5.99, ShippingCost(50), 0.001)
	assert.InDelta(t, 0.0, ShippingCost(50.01), 0.001)
	assert.InDelta(t, 0.0, ShippingCost(120), 0.001)
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	var received CreateOrderInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Order{
			ID:         "order-1",
			TotalPrice: received.TotalPrice,
		})
	}))
	defer server.Close()

	api := NewClient(server.URL)
	cart := NewCart("")
	cart.AddItem(Product{ID: "p1", Name: "Phone", Price: 20, Image: "/uploads/phone.jpg"}, 2)

	order, err := cart.Checkout(api, ShippingAddress{
		Address:    "456 Main Street",
		City:       "Los Angeles",
		PostalCode: "90210",
		Country:    "USA",
	}, "credit-card")
	require.NoError(t, err)

	// Subtotal 40 is under the free shipping threshold.
	assert.InDelta(t, 45.99, order.TotalPrice, 0.001)
	assert.InDelta(t, 45.99, received.TotalPrice, 0.001)
	require.Len(t, received.OrderItems, 1)
	assert.Equal(t, "p1", received.OrderItems[0].Product)
	assert.Equal(t, 2, received.OrderItems[0].Qty)
	assert.Empty(t, cart.Items())
}

func TestCheckoutFreeShippingAboveThreshold(t *testing.T) {
	var received CreateOrderInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Order{ID: "order-2", TotalPrice: received.TotalPrice})
	}))
	defer server.Close()

	api := NewClient(server.URL)
	cart := NewCart("")
	cart.AddItem(Product{ID: "p1", Price: 30}, 2)

	order, err := cart.Checkout(api, ShippingAddress{}, "paypal")
	require.NoError(t, err)
	assert.InDelta(t, 60.0, order.TotalPrice, 0.001)
}

func TestCheckoutFailureLeavesCartIntact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Order must contain at least one item"})
	}))
	defer server.Close()

	api := NewClient(server.URL)
	cart := NewCart("")
	cart.AddItem(Product{ID: "p1", Price: 10}, 2)

	_, err := cart.Checkout(api, ShippingAddress{}, "credit-card")
	require.Error(t, err)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Qty)
}

func TestCheckoutEmptyCart(t *testing.T) {
	api := NewClient("http://localhost:0")
	cart := NewCart("")

	_, err := cart.Checkout(api, ShippingAddress{}, "credit-card")
	assert.ErrorIs(t, err, ErrEmptyCart)
}
