// Package errors is the error toolkit for config loading, seed loading and
// the HTTP server. Matching goes through the standard library; anything
// created or wrapped here records a stack trace via pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error without a stack trace, for sentinel values.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether err or anything it wraps matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Join combines independent failures, such as every problem found in one
// seed file, into a single error.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrapf adds a formatted message and a stack trace to err. It returns nil
// when err is nil.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err. It returns nil when err is nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf builds a new error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
