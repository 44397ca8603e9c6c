package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ParseUintParam validates a numeric path segment before any query runs.
// "/api/recipes/abc" fails here with a ValidationError, never in the DB.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, NewValidationError("invalid numeric identifier", name)
	}
	return uint(id), nil
}

// ParseDate parses a YYYY-MM-DD value into a UTC-midnight time.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, NewValidationError("invalid date, expected YYYY-MM-DD", field)
	}
	return t.UTC(), nil
}

// ParseDateQuery reads a required date query parameter.
func ParseDateQuery(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, NewValidationError("missing query parameter", name)
	}
	return ParseDate(name, raw)
}
