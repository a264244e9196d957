// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response helpers shared by all endpoints. Error
// responses always use ErrorResponse; the items endpoint writes the router's
// JSON body verbatim so that HTTP and Lambda callers receive identical bytes.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-items-api/internal/domain"
	"github.com/tbourn/go-items-api/internal/http/middleware"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Error string `json:"error" example:"MethodNotAllowed"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"Unsupported HTTP method"`
}

// fail aborts the request with a structured error. 5xx responses are logged
// with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("error", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Error:     code,
		Message:   msg,
	})
}

// Fail is the exported variant of fail() for router-level fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// write sends a router Response as-is.
func write(c *gin.Context, resp domain.Response) {
	c.Data(resp.StatusCode, contentTypeJSON, []byte(resp.Body))
}
