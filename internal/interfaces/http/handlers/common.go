// Package handlers implements the HTTP endpoint handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openamr/amr/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps application errors to HTTP status codes. Internal errors
// are masked to avoid leaking details.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, ErrorResponse{Code: code.String(), Message: message})
}
