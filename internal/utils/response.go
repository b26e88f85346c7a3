// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error bodies carry a single human-readable message; clients surface it as-is.
type ErrorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

func BadRequestResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	ErrorResponse(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Not authorized"
	}
	ErrorResponse(c, http.StatusUnauthorized, message)
}

func ForbiddenResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Admin access required"
	}
	ErrorResponse(c, http.StatusForbidden, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	ErrorResponse(c, http.StatusNotFound, message)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, message)
}

func ValidationErrorResponse(c *gin.Context, errors []FieldError) {
	message := "Invalid input"
	if len(errors) > 0 {
		message = errors[0].Message
	}
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message, Errors: errors})
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if userIDStr, ok := userID.(string); ok {
			return userIDStr, true
		}
	}
	return "", false
}

func GetIsAdminFromContext(c *gin.Context) bool {
	if isAdmin, exists := c.Get("is_admin"); exists {
		if flag, ok := isAdmin.(bool); ok {
			return flag
		}
	}
	return false
}
