package controllers

import (
	"errors"

	"github.com/Chase-42/recipe-vault-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON wraps ShouldBindJSON so binding failures become ValidationErrors
// that enumerate the offending fields.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			fields := make([]string, 0, len(vErrs))
			for _, fe := range vErrs {
				fields = append(fields, fe.Field())
			}
			return utils.NewValidationError("invalid request body", fields...)
		}
		return utils.NewValidationError("invalid request body")
	}
	return nil
}
