package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Partner (PARTNER) ----

func ErrPartnerNotFound() *AppError {
	return New("PARTNER_001", "Partner not found", http.StatusNotFound)
}

// ---- Orders (ORDER) ----

func ErrOrderNotFound() *AppError {
	return New("ORDER_001", "Order not found", http.StatusNotFound)
}

func ErrInvalidOrderState(status string) *AppError {
	return New("ORDER_002", fmt.Sprintf("Order cannot transition from status %q", status), http.StatusConflict)
}

func ErrAcceptanceInProgress() *AppError {
	return New("ORDER_003", "Order acceptance already in progress", http.StatusConflict)
}

// ---- Commission calculation (COMM) ----

func ErrInvalidOrderValue() *AppError {
	return New("COMM_001", "Order value must be positive", http.StatusBadRequest)
}

func ErrInvalidCategory(category string) *AppError {
	return New("COMM_002", fmt.Sprintf("Invalid category %q", category), http.StatusBadRequest)
}

func ErrInvalidOrderType(orderType string) *AppError {
	return New("COMM_003", fmt.Sprintf("Invalid order type %q", orderType), http.StatusBadRequest)
}

func ErrEmptyItems() *AppError {
	return New("COMM_004", "At least one order item is required", http.StatusBadRequest)
}

// ---- Ledger (LEDGER) ----

func ErrCommissionAlreadyApplied() *AppError {
	return New("LEDGER_001", "Commission already applied for order", http.StatusConflict)
}

func ErrInsufficientCommissionBalance() *AppError {
	return New("LEDGER_002", "Insufficient commission balance for rollback", http.StatusUnprocessableEntity)
}

func ErrInvalidAmount() *AppError {
	return New("LEDGER_003", "Invalid amount", http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrPayloadTooLarge is returned when a request body exceeds the limit.
func ErrPayloadTooLarge() *AppError {
	return New("VAL_002", "Request body too large", http.StatusRequestEntityTooLarge)
}

// Validation returns a 400 validation error with the given message.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
