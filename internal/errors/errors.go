// Package errors combines stdlib errors with pkg/errors so callers get
// stack traces on wrap without importing two packages.
package errors

import (
	stderrors "errors"

	domainerrors "warehouse/internal/domain/errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap returns an error annotating err with a stack trace and the supplied message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// AsAppError returns the first AppError in err's tree.
func AsAppError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// Field returns the offending field named by a domain error, or "".
func Field(err error) string {
	var fielded interface{ FieldName() string }
	if stderrors.As(err, &fielded) {
		return fielded.FieldName()
	}

	return ""
}
