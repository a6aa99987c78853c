package errors

import (
	"net/http"

	"light3d/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrCatalogUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"CATALOG_UNAVAILABLE",
		"Catalog could not be loaded",
		"",
	)

	// Cart-related errors
	ErrVariantNotOnProduct = NewBaseError(
		http.StatusBadRequest,
		"VARIANT_NOT_ON_PRODUCT",
		"Selected option does not belong to this product",
		"",
	)

	ErrCartSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"CART_SAVE_FAILED",
		"Cart could not be saved",
		"",
	)

	// Checkout-related errors
	ErrCheckoutValidation = NewBaseError(
		http.StatusBadRequest,
		"CHECKOUT_VALIDATION",
		"Some fields need your attention",
		"",
	)

	ErrCheckoutWrongStep = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_WRONG_STEP",
		"This action is not available at the current checkout step",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusConflict,
		"CART_EMPTY",
		"Your cart is empty",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request",
		"",
	)
)

// NewStorageError creates an error for a failed storage operation.
func NewStorageError(err error, message string) *BaseError {
	details := ""
	if err != nil {
		details = err.Error()
	}

	return NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_ERROR",
		message,
		details,
	)
}
