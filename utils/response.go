// File: /utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   int               `json:"code"`
	Errors []ValidationError `json:"validation_errors"`
}

func SendValidationErrors(c *gin.Context, errs []ValidationError) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  "Validation failed",
		Code:   http.StatusBadRequest,
		Errors: errs,
	})
}
