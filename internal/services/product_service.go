// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/shoply/storefront/internal/models"
	"github.com/shoply/storefront/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Brand       string   `json:"brand" validate:"required"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Image       string   `json:"image" validate:"required"`
	Gallery     []string `json:"gallery,omitempty"`
}

// UpdateProductRequest uses pointers so absent fields are left untouched.
// Bounds are revalidated here regardless of any client-side constraints.
type UpdateProductRequest struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category    string   `json:"category,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Image       string   `json:"image,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ListProducts pages through the catalog. Category is an equality filter and
// search is a case-insensitive substring match over name and description.
// Results are ordered newest first; there is no caller-supplied sort.
func (s *ProductService) ListProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order("created_at DESC")
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Reviews", func(db *gorm.DB) *gorm.DB {
		return db.Order("reviews.created_at ASC")
	}).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Brand:       req.Brand,
		Stock:       req.Stock,
		Image:       req.Image,
		Gallery:     pq.StringArray(req.Gallery),
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("Product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, errors.New("Price must not be negative")
		}
		updates["price"] = *req.Price
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Brand != "" {
		updates["brand"] = req.Brand
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, errors.New("Stock must not be negative")
		}
		updates["stock"] = *req.Stock
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.Gallery != nil {
		updates["gallery"] = pq.StringArray(req.Gallery)
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.db.Preload("Reviews").First(&product, id)

	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("Product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Soft delete
	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *ProductService) GetCategories() ([]string, error) {
	var categories []string
	if err := s.db.Model(&models.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}
