// client/client.go
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// TokenSource supplies the bearer token attached to authenticated
// requests. An empty return means the request goes out unauthenticated.
type TokenSource func() string

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is a typed HTTP client for the storefront API.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithTokenSource sets the bearer token source for authenticated requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.token = ts
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource replaces the bearer token source after construction.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.token = ts
}

func (c *Client) do(method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) doJSON(method, path string, query url.Values, in, out interface{}) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}
	return c.do(method, path, query, body, contentType, out)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	}
	return apiErr
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(in RegisterInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(http.MethodPost, "/api/auth/register", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(email, password string) (*AuthResponse, error) {
	in := map[string]string{
		"email":    email,
		"password": password,
	}
	var out AuthResponse
	if err := c.doJSON(http.MethodPost, "/api/auth/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductQuery is the set of filters accepted by the product listing
// endpoint. Zero values are omitted from the query string.
type ProductQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

func (c *Client) GetProducts(q ProductQuery) (*ProductList, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}

	var out ProductList
	if err := c.do(http.MethodGet, "/api/products", query, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProduct(id string) (*Product, error) {
	var out Product
	if err := c.do(http.MethodGet, "/api/products/"+id, nil, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProductInput is the multipart payload for product creation.
// Image and ImageName are optional; when set, the image is uploaded
// alongside the product fields.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	Stock       int
	Image       io.Reader
	ImageName   string
}

func (c *Client) CreateProduct(in CreateProductInput) (*Product, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"price":       strconv.FormatFloat(in.Price, 'f', -1, 64),
		"category":    in.Category,
		"brand":       in.Brand,
		"stock":       strconv.Itoa(in.Stock),
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, err
		}
	}

	if in.Image != nil {
		part, err := w.CreateFormFile("image", in.ImageName)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, in.Image); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	var out Product
	if err := c.do(http.MethodPost, "/api/products", nil, &buf, w.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProductInput carries partial product updates. Nil fields are
// left unchanged on the server.
type UpdateProductInput struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    string   `json:"category,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Image       string   `json:"image,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`
}

func (c *Client) UpdateProduct(id string, in UpdateProductInput) (*Product, error) {
	var out Product
	if err := c.doJSON(http.MethodPut, "/api/products/"+id, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(id string) error {
	return c.do(http.MethodDelete, "/api/products/"+id, nil, nil, "", nil)
}

func (c *Client) GetCategories() ([]string, error) {
	var out []string
	if err := c.do(http.MethodGet, "/api/categories", nil, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOrderInput is the payload for order placement. TotalPrice must
// equal the item subtotal plus shipping; the server re-validates it.
type CreateOrderInput struct {
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalPrice      float64         `json:"totalPrice"`
}

func (c *Client) CreateOrder(in CreateOrderInput) (*Order, error) {
	var out Order
	if err := c.doJSON(http.MethodPost, "/api/orders", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrders() ([]Order, error) {
	var out []Order
	if err := c.do(http.MethodGet, "/api/orders", nil, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(id string) (*Order, error) {
	var out Order
	if err := c.do(http.MethodGet, "/api/orders/"+id, nil, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetProfile() (*User, error) {
	var out User
	if err := c.do(http.MethodGet, "/api/users/profile", nil, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfileInput carries partial profile updates. Empty fields are
// left unchanged on the server.
type UpdateProfileInput struct {
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Password string   `json:"password,omitempty"`
	Address  *Address `json:"address,omitempty"`
}

func (c *Client) UpdateProfile(in UpdateProfileInput) (*User, error) {
	var out User
	if err := c.doJSON(http.MethodPut, "/api/users/profile", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
