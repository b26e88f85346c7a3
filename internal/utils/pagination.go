// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaginationParams struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Search   string `json:"search"`
	Category string `json:"category"`
}

func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	search := c.Query("search")
	category := c.Query("category")

	// Validate and set defaults
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return PaginationParams{
		Page:     page,
		Limit:    limit,
		Search:   search,
		Category: category,
	}
}

func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	offset := (params.Page - 1) * params.Limit
	return db.Offset(offset).Limit(params.Limit)
}

// TotalPages never reports fewer than one page so currentPage <= totalPages
// holds even for an empty result set.
func TotalPages(total int64, limit int) int {
	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// ClampPage caps the reported page at the page count, so a request past
// the end of the catalog still satisfies currentPage <= totalPages.
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		return totalPages
	}
	return page
}
