package errors

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a user-facing message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseStoreError converts a persistence error into a user-facing code and
// message without leaking driver internals.
func ParseStoreError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Something went wrong!"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	errLower := strings.ToLower(err.Error())

	// Unique constraint violations (postgres 23505, sqlite "UNIQUE constraint failed")
	if strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint") {
		return parseDuplicateKeyError(errLower)
	}

	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "Service temporarily unavailable, please try again later",
		}
	}

	return ErrorInfo{Code: InternalServerError, Message: "Something went wrong!"}
}

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	errLower := strings.ToLower(err.Error())
	return strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint")
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "slug") {
		return ErrorInfo{Code: ProductSlugExists, Message: "An item with this name already exists"}
	}
	if strings.Contains(errLower, "categories") && strings.Contains(errLower, "name") {
		return ErrorInfo{Code: CategoryNameExists, Message: "Category already exists"}
	}
	if strings.Contains(errLower, "email") {
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "Email already in use"}
	}
	return ErrorInfo{Code: ResourceAlreadyExists, Message: "Record already exists"}
}

func notFoundMessage(context string) string {
	switch {
	case strings.Contains(context, "category"):
		return "Category not found"
	case strings.Contains(context, "product"):
		return "Product not found"
	case strings.Contains(context, "combo"):
		return "Combo not found"
	case strings.Contains(context, "order"):
		return "Order not found"
	case strings.Contains(context, "contact"):
		return "Contact message not found"
	case strings.Contains(context, "banner"):
		return "Banner not found"
	case strings.Contains(context, "admin"):
		return "Admin not found"
	default:
		return "Resource not found"
	}
}

// BindingFieldErrors maps a gin binding failure to per-field messages for
// the validation error envelope. Non-validator errors (malformed JSON and
// the like) produce a single request-level entry.
func BindingFieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["request"] = "Malformed request body"
		return fields
	}

	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "This field is required"
		case "email":
			fields[name] = "Must be a valid email address"
		case "min":
			fields[name] = "Value is below the allowed minimum"
		case "max":
			fields[name] = "Value exceeds the allowed maximum"
		case "gt", "gte":
			fields[name] = "Value is below the allowed minimum"
		case "lt", "lte":
			fields[name] = "Value exceeds the allowed maximum"
		case "oneof":
			fields[name] = "Value is not one of the allowed options"
		default:
			fields[name] = "Invalid value"
		}
	}

	return fields
}

// RespondWithBindingError converts a gin binding failure into the
// field-level validation envelope.
func RespondWithBindingError(c *gin.Context, err error) {
	RespondWithValidationError(c, BindingFieldErrors(err))
}
