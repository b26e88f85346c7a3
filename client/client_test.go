// client/client_test.go
package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProductsQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "6", r.URL.Query().Get("limit"))
		assert.Equal(t, "Audio", r.URL.Query().Get("category"))
		assert.Equal(t, "sony", r.URL.Query().Get("search"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProductList{
			Products:    []Product{{ID: "p1", Name: "Sony WH-1000XM5"}},
			TotalPages:  3,
			CurrentPage: 2,
		})
	}))
	defer server.Close()

	api := NewClient(server.URL)
	list, err := api.GetProducts(ProductQuery{Page: 2, Limit: 6, Category: "Audio", Search: "sony"})
	require.NoError(t, err)

	assert.Equal(t, 2, list.CurrentPage)
	assert.Equal(t, 3, list.TotalPages)
	require.Len(t, list.Products, 1)
	assert.LessOrEqual(t, len(list.Products), 6)
	assert.Equal(t, "Sony WH-1000XM5", list.Products[0].Name)
}

func TestGetProductsOmitsZeroParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProductList{Products: []Product{}, TotalPages: 1, CurrentPage: 1})
	}))
	defer server.Close()

	api := NewClient(server.URL)
	_, err := api.GetProducts(ProductQuery{})
	require.NoError(t, err)
}

func TestBearerTokenAttached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(User{ID: "u1", Name: "John Doe"})
	}))
	defer server.Close()

	api := NewClient(server.URL, WithTokenSource(func() string { return "test-token" }))
	user, err := api.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]string{"Audio", "Electronics"})
	}))
	defer server.Close()

	api := NewClient(server.URL, WithTokenSource(func() string { return "" }))
	categories, err := api.GetCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Audio", "Electronics"}, categories)
}

func TestErrorMessageDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	}))
	defer server.Close()

	api := NewClient(server.URL)
	_, err := api.Login("john@example.com", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestErrorMessageFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	api := NewClient(server.URL)
	_, err := api.GetProduct("p1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "request failed with status 500", apiErr.Message)
}

func TestCreateProductMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "Phone", r.FormValue("name"))
		assert.Equal(t, "999.99", r.FormValue("price"))
		assert.Equal(t, "5", r.FormValue("stock"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "phone.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Product{ID: "p1", Name: "Phone", Image: "/uploads/phone.jpg"})
	}))
	defer server.Close()

	api := NewClient(server.URL)
	product, err := api.CreateProduct(CreateProductInput{
		Name:        "Phone",
		Description: "A phone",
		Price:       999.99,
		Category:    "Electronics",
		Brand:       "Apple",
		Stock:       5,
		Image:       strings.NewReader("fake image bytes"),
		ImageName:   "phone.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/phone.jpg", product.Image)
}

func TestDeleteProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/products/p1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Product removed"})
	}))
	defer server.Close()

	api := NewClient(server.URL)
	require.NoError(t, api.DeleteProduct("p1"))
}
