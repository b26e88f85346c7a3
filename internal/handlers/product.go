// internal/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoply/storefront/internal/services"
	"github.com/shoply/storefront/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

// productListResponse is the listing envelope the storefront consumes.
type productListResponse struct {
	Products    interface{} `json:"products"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productService.ListProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	totalPages := utils.TotalPages(total, params.Limit)
	c.JSON(http.StatusOK, productListResponse{
		Products:    products,
		TotalPages:  totalPages,
		CurrentPage: utils.ClampPage(params.Page, totalPages),
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, product)
}

// POST /api/products
//
// Multipart form: product fields plus an "image" file that becomes the
// primary image URL after upload.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid price")
		return
	}

	stock, err := strconv.Atoi(c.DefaultPostForm("stock", "0"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid stock")
		return
	}

	req := services.CreateProductRequest{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Category:    c.PostForm("category"),
		Brand:       c.PostForm("brand"),
		Stock:       stock,
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read image file")
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, "Invalid image file")
		return
	}

	result, err := h.storageService.UploadFile(file, fileHeader, services.ProductImageOptions())
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	req.Image = result.URL

	// The image is stored before the row exists; drop it again if the
	// product never materializes.
	if fieldErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(fieldErrors) > 0 {
		h.storageService.DeleteFile(result.Key)
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		h.storageService.DeleteFile(result.Key)
		utils.BadRequestResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, product)
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if fieldErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(fieldErrors) > 0 {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, product)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}

// GET /api/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.productService.GetCategories()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if categories == nil {
		categories = []string{}
	}

	c.JSON(http.StatusOK, categories)
}
