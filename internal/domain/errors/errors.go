// Package errors defines the error taxonomy surfaced by the inventory core.
package errors

import (
	"fmt"
	"net/http"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Kind classifies a ledger or command failure.
type Kind string

const (
	KindProductNotFound          Kind = "PRODUCT_NOT_FOUND"
	KindProductExists            Kind = "PRODUCT_EXISTS"
	KindInvalidProduct           Kind = "INVALID_PRODUCT"
	KindInvalidQuantity          Kind = "INVALID_QUANTITY"
	KindMissingField             Kind = "MISSING_FIELD"
	KindInsufficientStock        Kind = "INSUFFICIENT_STOCK"
	KindInvalidTransactionType   Kind = "INVALID_TRANSACTION_TYPE"
	KindInvalidWarehouseTransfer Kind = "INVALID_WAREHOUSE_TRANSFER"
	KindTransactionNotFound      Kind = "TRANSACTION_NOT_FOUND"
	KindWarehouseNotFound        Kind = "WAREHOUSE_NOT_FOUND"
	KindWarehouseExists          Kind = "WAREHOUSE_EXISTS"
	KindInvalidWarehouse         Kind = "INVALID_WAREHOUSE"
	KindCapacityExceeded         Kind = "WAREHOUSE_CAPACITY_EXCEEDED"
	KindInvalidPage              Kind = "INVALID_PAGE"
	KindVersionConflict          Kind = "VERSION_CONFLICT"
	KindUserNotFound             Kind = "USER_NOT_FOUND"
	KindInvalidRole              Kind = "INVALID_ROLE"
	KindInvalidCredentials       Kind = "INVALID_CREDENTIALS"
	KindUserInactive             Kind = "USER_INACTIVE"
	KindMalformedCommand         Kind = "MALFORMED_COMMAND"
)

var kindMeta = map[Kind]struct {
	httpCode int
	message  string
}{
	KindProductNotFound:          {http.StatusNotFound, "Product not found"},
	KindProductExists:            {http.StatusConflict, "A product with this id already exists"},
	KindInvalidProduct:           {http.StatusUnprocessableEntity, "Product data is invalid"},
	KindInvalidQuantity:          {http.StatusUnprocessableEntity, "Quantity must be greater than zero"},
	KindMissingField:             {http.StatusUnprocessableEntity, "A required field is missing"},
	KindInsufficientStock:        {http.StatusConflict, "Not enough stock for this transaction"},
	KindInvalidTransactionType:   {http.StatusUnprocessableEntity, "Unknown transaction type"},
	KindInvalidWarehouseTransfer: {http.StatusUnprocessableEntity, "Source and destination warehouses are invalid"},
	KindTransactionNotFound:      {http.StatusNotFound, "Transaction not found"},
	KindWarehouseNotFound:        {http.StatusNotFound, "Warehouse not found"},
	KindWarehouseExists:          {http.StatusConflict, "A warehouse with this id already exists"},
	KindInvalidWarehouse:         {http.StatusUnprocessableEntity, "Warehouse data is invalid"},
	KindCapacityExceeded:         {http.StatusConflict, "Warehouse capacity would be exceeded"},
	KindInvalidPage:              {http.StatusBadRequest, "Unknown page"},
	KindVersionConflict:          {http.StatusConflict, "The inventory changed since it was read"},
	KindUserNotFound:             {http.StatusNotFound, "User not found"},
	KindInvalidRole:              {http.StatusBadRequest, "Unknown role"},
	KindInvalidCredentials:       {http.StatusUnauthorized, "Invalid username or password"},
	KindUserInactive:             {http.StatusForbidden, "User account is disabled"},
	KindMalformedCommand:         {http.StatusInternalServerError, "Malformed command"},
}

// LedgerError is a typed, expected failure of a command. It carries enough
// structure (kind + offending field) for a client to render its own message.
type LedgerError struct {
	Kind   Kind
	Field  string
	Detail string
}

// New creates a LedgerError of the given kind.
func New(kind Kind, field, detail string) *LedgerError {
	return &LedgerError{Kind: kind, Field: field, Detail: detail}
}

// Newf creates a LedgerError with a formatted detail.
func Newf(kind Kind, field, format string, args ...any) *LedgerError {
	return New(kind, field, fmt.Sprintf(format, args...))
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	msg := string(e.Kind)
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Is matches on Kind, and on Field when the target names one.
func (e *LedgerError) Is(target error) bool {
	t, ok := target.(*LedgerError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind && (t.Field == "" || t.Field == e.Field)
}

// HTTPCode returns the HTTP status code
func (e *LedgerError) HTTPCode() int {
	if meta, ok := kindMeta[e.Kind]; ok {
		return meta.httpCode
	}

	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *LedgerError) ErrorCode() string {
	return string(e.Kind)
}

// Message returns the user-friendly error message
func (e *LedgerError) Message() string {
	if meta, ok := kindMeta[e.Kind]; ok {
		return meta.message
	}

	return "Internal error"
}

// Details returns detailed error information
func (e *LedgerError) Details() string {
	return e.Detail
}

// FieldName returns the offending field, if any.
func (e *LedgerError) FieldName() string {
	return e.Field
}

// Sentinels for errors.Is. They carry no field, so they match any field.
var (
	ErrProductNotFound          = &LedgerError{Kind: KindProductNotFound}
	ErrProductExists            = &LedgerError{Kind: KindProductExists}
	ErrInvalidProduct           = &LedgerError{Kind: KindInvalidProduct}
	ErrInvalidQuantity          = &LedgerError{Kind: KindInvalidQuantity}
	ErrMissingField             = &LedgerError{Kind: KindMissingField}
	ErrInsufficientStock        = &LedgerError{Kind: KindInsufficientStock}
	ErrInvalidTransactionType   = &LedgerError{Kind: KindInvalidTransactionType}
	ErrInvalidWarehouseTransfer = &LedgerError{Kind: KindInvalidWarehouseTransfer}
	ErrTransactionNotFound      = &LedgerError{Kind: KindTransactionNotFound}
	ErrWarehouseNotFound        = &LedgerError{Kind: KindWarehouseNotFound}
	ErrWarehouseExists          = &LedgerError{Kind: KindWarehouseExists}
	ErrInvalidWarehouse         = &LedgerError{Kind: KindInvalidWarehouse}
	ErrCapacityExceeded         = &LedgerError{Kind: KindCapacityExceeded}
	ErrInvalidPage              = &LedgerError{Kind: KindInvalidPage}
	ErrVersionConflict          = &LedgerError{Kind: KindVersionConflict}
	ErrUserNotFound             = &LedgerError{Kind: KindUserNotFound}
	ErrInvalidRole              = &LedgerError{Kind: KindInvalidRole}
	ErrInvalidCredentials       = &LedgerError{Kind: KindInvalidCredentials}
	ErrUserInactive             = &LedgerError{Kind: KindUserInactive}
	ErrMalformedCommand         = &LedgerError{Kind: KindMalformedCommand}
)
