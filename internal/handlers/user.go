// internal/handlers/user.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoply/storefront/internal/services"
	"github.com/shoply/storefront/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GET /api/users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
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

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		utils.NotFoundResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

// PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
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

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if fieldErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(fieldErrors) > 0 {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}
