// Package errors provides the error foundation shared by all layers:
// a Kind for coarse classification (mapped to transport status codes by
// inbound adapters) and a stable Code for precise, client-actionable
// identification.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error for transport mapping and retry decisions.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindForbidden    Kind = "forbidden"
	KindUnauthorized Kind = "unauthorized"
	KindThrottled    Kind = "throttled"
	KindUnavailable  Kind = "unavailable"
	KindDomain       Kind = "domain"
	KindInternal     Kind = "internal"
)

// Code is a stable, machine-readable error identifier.
type Code string

// Error is the concrete error type carried across layer boundaries.
type Error struct {
	kind    Kind
	code    Code
	message string
	cause   error
}

// New creates a new Error with the given kind, code and message.
func New(kind Kind, code Code, message string) *Error {
	return &Error{
		kind:    kind,
		code:    code,
		message: message,
	}
}

// Newf creates a new Error with a formatted message.
func Newf(kind Kind, code Code, format string, args ...any) *Error {
	return New(kind, code, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Code() Code      { return e.code }
func (e *Error) Message() string { return e.message }
func (e *Error) Unwrap() error   { return e.cause }

// Is matches two Errors by code, so wrapped copies still satisfy
// errors.Is against the package-level sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	return e.code == t.code
}

// WithCause returns a copy of the error carrying the underlying cause.
// The receiver is not mutated; sentinels stay shareable.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		kind:    e.kind,
		code:    e.code,
		message: e.message,
		cause:   cause,
	}
}

// WithMessagef returns a copy of the error with a more specific message.
func (e *Error) WithMessagef(format string, args ...any) *Error {
	return &Error{
		kind:    e.kind,
		code:    e.code,
		message: fmt.Sprintf(format, args...),
		cause:   e.cause,
	}
}

// KindOf extracts the Kind from an error chain. Unknown errors are
// classified as internal.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// CodeOf extracts the Code from an error chain, or "" if none.
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.code
	}
	return ""
}

// MessageOf extracts the safe-to-expose message from an error chain.
// Unknown errors get a generic message so internals never leak out.
func MessageOf(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.message
	}
	return "internal error"
}

// Kind predicates.

func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
func IsForbidden(err error) bool    { return KindOf(err) == KindForbidden }
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }
func IsThrottled(err error) bool    { return KindOf(err) == KindThrottled }
func IsUnavailable(err error) bool  { return KindOf(err) == KindUnavailable }
