package utils

import (
	"github.com/gin-gonic/gin"
)

// Pagination is the metadata block attached to list responses.
type Pagination struct {
	Total           int64 `json:"total"`
	Offset          int   `json:"offset"`
	Limit           int   `json:"limit"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	TotalPages      int   `json:"totalPages"`
	CurrentPage     int   `json:"currentPage"`
}

func NewPagination(total int64, offset, limit int) Pagination {
	if limit <= 0 {
		limit = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	currentPage := offset/limit + 1
	return Pagination{
		Total:           total,
		Offset:          offset,
		Limit:           limit,
		HasNextPage:     int64(offset+limit) < total,
		HasPreviousPage: offset > 0,
		TotalPages:      totalPages,
		CurrentPage:     currentPage,
	}
}

func RespondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func RespondPage(c *gin.Context, status int, data any, p Pagination) {
	c.JSON(status, gin.H{"success": true, "data": data, "pagination": p})
}

func RespondError(c *gin.Context, status int, message, code string) {
	body := gin.H{"success": false, "error": message}
	if code != "" {
		body["code"] = code
	}
	c.JSON(status, body)
}
