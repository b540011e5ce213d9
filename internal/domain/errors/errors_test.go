package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerError_IsMatchesKind(t *testing.T) {
	err := New(KindMissingField, "supplier", "in transactions need a supplier")

	assert.True(t, errors.Is(err, ErrMissingField))
	assert.True(t, errors.Is(err, &LedgerError{Kind: KindMissingField, Field: "supplier"}))
	assert.False(t, errors.Is(err, &LedgerError{Kind: KindMissingField, Field: "customer"}))
	assert.False(t, errors.Is(err, ErrInsufficientStock))
}

func TestLedgerError_IsThroughWrap(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", New(KindInsufficientStock, "quantity", ""))

	assert.True(t, errors.Is(err, ErrInsufficientStock))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
}

func TestLedgerError_ErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *LedgerError
		want string
	}{
		{name: "kind only", err: New(KindProductNotFound, "", ""), want: "PRODUCT_NOT_FOUND"},
		{name: "with field", err: New(KindMissingField, "supplier", ""), want: "MISSING_FIELD (supplier)"},
		{name: "with detail", err: Newf(KindInsufficientStock, "quantity", "available %d, requested %d", 15, 20), want: "INSUFFICIENT_STOCK (quantity): available 15, requested 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestLedgerError_UnknownKindIsInternal(t *testing.T) {
	err := New(Kind("SOMETHING_ELSE"), "", "")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "Internal error", err.Message())
}
