package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("PARTNER_001", "Partner not found", http.StatusNotFound),
			expected: "[PARTNER_001] Partner not found",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("LEDGER_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"PartnerNotFound", ErrPartnerNotFound(), "PARTNER_001", 404},
		{"OrderNotFound", ErrOrderNotFound(), "ORDER_001", 404},
		{"InvalidOrderState", ErrInvalidOrderState("cancelled"), "ORDER_002", 409},
		{"AcceptanceInProgress", ErrAcceptanceInProgress(), "ORDER_003", 409},
		{"InvalidOrderValue", ErrInvalidOrderValue(), "COMM_001", 400},
		{"InvalidCategory", ErrInvalidCategory("toys"), "COMM_002", 400},
		{"InvalidOrderType", ErrInvalidOrderType("rent"), "COMM_003", 400},
		{"EmptyItems", ErrEmptyItems(), "COMM_004", 400},
		{"AlreadyApplied", ErrCommissionAlreadyApplied(), "LEDGER_001", 409},
		{"InsufficientBalance", ErrInsufficientCommissionBalance(), "LEDGER_002", 422},
		{"InvalidAmount", ErrInvalidAmount(), "LEDGER_003", 400},
		{"Validation", Validation("bad input"), "VAL_001", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	lockErr := ErrLockTimeout(inner)
	assert.Equal(t, "SYS_002", lockErr.Code)
	assert.Equal(t, 503, lockErr.HTTPStatus)

	rl := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", rl.Code)
	assert.Equal(t, 429, rl.HTTPStatus)

	internal := InternalError(inner)
	assert.Equal(t, "SYS_001", internal.Code)
	assert.True(t, errors.Is(internal, inner))
}

func TestMessagesCarryContext(t *testing.T) {
	assert.Contains(t, ErrInvalidCategory("toys").Message, "toys")
	assert.Contains(t, ErrInvalidOrderState("rejected").Message, "rejected")
}
