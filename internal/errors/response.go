package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// developmentMode controls whether 500 responses include the underlying
// error message. Set once at startup.
var developmentMode bool

// SetDevelopmentMode toggles error detail exposure on internal errors.
func SetDevelopmentMode(enabled bool) {
	developmentMode = enabled
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Error   string `json:"error"`            // error code for frontend mapping
	Message string `json:"message"`          // human-readable message
	Detail  string `json:"detail,omitempty"` // underlying cause, development mode only
}

// RespondWithError writes a standard error response
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// Shorthand helpers for the common cases

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, AuthUnauthorized, message)
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

// Conflict reports a duplicate unique field. Responds 400 to match the
// public API contract (clients treat duplicates as input errors).
func Conflict(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "Too many requests, please try again later"
	}
	RespondWithError(c, http.StatusTooManyRequests, RateLimitExceeded, message)
}

// InternalError writes a 500 response. The underlying error message is
// included only in development mode; it is always logged server-side.
func InternalError(c *gin.Context, err error) {
	resp := ErrorResponse{
		Error:   InternalServerError,
		Message: "Something went wrong!",
	}
	if developmentMode && err != nil {
		resp.Detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// ValidationError carries field-level validation failures
type ValidationError struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func RespondWithValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationError{
		Error:   ValidationInvalidInput,
		Message: "Invalid input",
		Fields:  fields,
	})
}
