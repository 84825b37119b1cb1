// Package domainerrors defines the code-carrying error type returned by
// every service operation. Handlers translate codes to HTTP statuses;
// the code string itself is the wire-level error identifier.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error. The string value is what clients see
// in the "error" field of an error envelope.
type Code string

const (
	// Transport and validation failures.
	CodeBadRequest   Code = "bad_request"
	CodeInvalidInput Code = "invalid_input"

	// Referential failures.
	CodeNotFound  Code = "not_found"
	CodeNotMember Code = "not_member"

	// Business-rule failures.
	CodeAlreadyMember Code = "already_member"
	CodeNotAdmin      Code = "not_admin"
	CodeAlreadyAdmin  Code = "already_admin"
	CodeLastAdmin     Code = "last_admin"
	CodeGroupClosed   Code = "group_closed"
	CodeForbidden     Code = "forbidden"

	// Unexpected failures. Details are never sent to clients.
	CodeInternal Code = "internal_error"
)

// Error carries a classification code, a human-readable message safe to
// show callers, and an optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New builds a domain error without a cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// HasCode reports whether err is (or wraps) a domain error with the
// given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// anything that is not a domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the caller-safe message from err. Non-domain
// errors yield an empty message so internals never leak.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}

// ToHTTPStatus maps a code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound, CodeNotMember:
		return http.StatusNotFound
	case CodeAlreadyMember, CodeAlreadyAdmin, CodeLastAdmin, CodeGroupClosed:
		return http.StatusConflict
	case CodeNotAdmin, CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
