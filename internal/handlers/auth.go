// internal/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoply/storefront/internal/services"
	"github.com/shoply/storefront/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if fieldErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(fieldErrors) > 0 {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	authResponse, err := h.authService.Register(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, authResponse)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if fieldErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(fieldErrors) > 0 {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	authResponse, err := h.authService.Login(&req)
	if err != nil {
		utils.UnauthorizedResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, authResponse)
}
