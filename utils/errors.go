package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ValidationError reports malformed or missing input. Fields names the
// offending fields when they are known.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
	}
	return e.Message
}

func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// AuthorizationError means the request carries no resolvable user identity.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return e.Message
}

// NotFoundError covers both truly absent rows and rows owned by someone
// else; callers cannot tell the two apart.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// RecipeError is the generic domain error. Status overrides the default 500
// when set.
type RecipeError struct {
	Message string
	Status  int
}

func (e *RecipeError) Error() string {
	return e.Message
}

// HandleAPIError is the single translator every route funnels errors
// through. It maps the taxonomy to a status code and always answers with
// the uniform envelope, so no failure leaks a raw 500.
func HandleAPIError(c *gin.Context, err error) {
	var (
		vErr  *ValidationError
		aErr  *AuthorizationError
		nfErr *NotFoundError
		rErr  *RecipeError
	)
	switch {
	case errors.As(err, &vErr):
		RespondError(c, http.StatusBadRequest, vErr.Error(), "VALIDATION_ERROR")
	case errors.As(err, &aErr):
		RespondError(c, http.StatusUnauthorized, aErr.Error(), "UNAUTHORIZED")
	case errors.As(err, &nfErr):
		RespondError(c, http.StatusNotFound, nfErr.Error(), "NOT_FOUND")
	case errors.As(err, &rErr):
		status := rErr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		RespondError(c, status, rErr.Message, "")
	case errors.Is(err, gorm.ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "record not found", "NOT_FOUND")
	default:
		RespondError(c, http.StatusInternalServerError, "internal server error", "")
	}
}
