// Package response writes the JSON error envelope shared by all handlers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned in ErrorResponse.
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeNotFound          = "NOT_FOUND"
	CodeAlreadyExists     = "ALREADY_EXISTS"
	CodeInUse             = "IN_USE"
	CodeReferenceNotFound = "REFERENCE_NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInternal          = "INTERNAL_ERROR"
)

// ErrorResponse is the error body of every failed request.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Error writes an error response.
func Error(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// InvalidRequest writes a 400 INVALID_REQUEST response.
func InvalidRequest(c *gin.Context, message string) {
	Error(c, CodeInvalidRequest, message, http.StatusBadRequest)
}

// NotFound writes a 404 NOT_FOUND response.
func NotFound(c *gin.Context, message string) {
	Error(c, CodeNotFound, message, http.StatusNotFound)
}

// Conflict writes a 409 response with the given code.
func Conflict(c *gin.Context, code string, message string) {
	Error(c, code, message, http.StatusConflict)
}

// Internal writes a 500 INTERNAL_ERROR response.
func Internal(c *gin.Context) {
	Error(c, CodeInternal, "internal server error", http.StatusInternalServerError)
}
