// internal/handlers/order.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoply/storefront/internal/models"
	"github.com/shoply/storefront/internal/services"
	"github.com/shoply/storefront/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if fieldErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(fieldErrors) > 0 {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	order, err := h.orderService.CreateOrder(userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GET /api/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	orders, err := h.orderService.GetUserOrders(userID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(orderID, userID, utils.GetIsAdminFromContext(c))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, order)
}
