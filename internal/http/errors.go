package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stable error codes surfaced to clients.
const (
	ErrCodeInvalidRequest = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized   = "ERR_UNAUTHORIZED"
	ErrCodeForbidden      = "ERR_FORBIDDEN"
	ErrCodeInternalError  = "ERR_INTERNAL_ERROR"

	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeEmailExists        = "ERR_EMAIL_EXISTS"
	ErrCodePasswordMismatch   = "ERR_PASSWORD_MISMATCH"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"

	ErrCodeUserNotFound      = "ERR_USER_NOT_FOUND"
	ErrCodePostNotFound      = "ERR_POST_NOT_FOUND"
	ErrCodeEmptyContent      = "ERR_EMPTY_CONTENT"
	ErrCodeEmptyName         = "ERR_EMPTY_NAME"
	ErrCodeCannotDeleteAdmin = "ERR_CANNOT_DELETE_ADMIN"
)

// APIError is the uniform error response body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse writes a uniform error body with the given status.
func ErrorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

func Forbidden(c *gin.Context, code, message string) {
	ErrorResponse(c, http.StatusForbidden, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// InvalidPayload reports a request body that failed binding.
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}
