// Package errors provides centralized error definitions and error handling
// utilities for the Toyhaven client. It defines domain-specific error types,
// sentinel errors, and classification helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - APIError: a request the backend rejected or failed to answer
//   - SessionError: errors related to the persisted session lifecycle
//   - PaymentError: errors raised by the hosted-payment flow
//
// Semantic errors represent common error conditions:
//   - ValidationError: invalid local input, the request was never sent
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrUnauthorized) { ... }
//
//	var apiErr *errors.APIError
//	if errors.As(err, &apiErr) { ... }
//
//	if errors.IsAuthFailure(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Session-related sentinel errors
var (
	// ErrNotLoggedIn indicates that no session is present.
	ErrNotLoggedIn = New("not logged in")
	// ErrSessionExpired indicates that the persisted token failed validation.
	ErrSessionExpired = New("session expired")
	// ErrCredentialsNotFound indicates that no persisted credentials exist.
	ErrCredentialsNotFound = New("credentials not found")
)

// Request-related sentinel errors
var (
	// ErrUnauthorized indicates that the backend rejected the bearer token.
	ErrUnauthorized = New("unauthorized")
	// ErrConnection indicates that the backend could not be reached.
	ErrConnection = New("connection failed")
)

// Checkout-related sentinel errors
var (
	// ErrCartEmpty indicates that order placement was attempted with no cart lines.
	ErrCartEmpty = New("cart is empty")
	// ErrNoAddress indicates that no shipping address could be resolved.
	ErrNoAddress = New("no shipping address")
	// ErrPaymentNotConfigured indicates that the hosted-payment provider is not configured.
	ErrPaymentNotConfigured = New("payment provider not configured")
	// ErrPaymentCancelled indicates that the buyer backed out of the hosted flow.
	ErrPaymentCancelled = New("payment cancelled")
)

// APIError represents a request the backend rejected or failed to answer.
// Status is the HTTP status code (0 when the request never completed) and
// Message carries the server-provided text when the response envelope
// included one.
type APIError struct {
	Status   int
	Message  string
	Endpoint string
	cause    error
}

// NewAPIError creates a new APIError.
func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// WrapAPIError creates an APIError around a transport-level failure.
func WrapAPIError(endpoint string, cause error) *APIError {
	return &APIError{Endpoint: endpoint, cause: cause}
}

// WithEndpoint adds the request path to the error context.
func (e *APIError) WithEndpoint(endpoint string) *APIError {
	e.Endpoint = endpoint
	return e
}

// Error returns the formatted error message.
func (e *APIError) Error() string {
	var parts []string
	if e.Status != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.Status))
	}
	if e.Endpoint != "" {
		parts = append(parts, fmt.Sprintf("endpoint=%s", e.Endpoint))
	}

	prefix := "api error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("api error [%s]", strings.Join(parts, ", "))
	}

	switch {
	case e.Message != "" && e.cause != nil:
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.cause)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", prefix, e.Message)
	case e.cause != nil:
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	default:
		return prefix
	}
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Is checks if this error matches the target.
func (e *APIError) Is(target error) bool {
	if _, ok := target.(*APIError); ok {
		return true
	}
	if target == ErrUnauthorized && e.Status == http.StatusUnauthorized {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// UserMessage returns text safe to surface in the UI: the server-provided
// message when present, otherwise the given fallback.
func (e *APIError) UserMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// SessionError represents errors related to the persisted session lifecycle.
type SessionError struct {
	Scope   string // "user" or "admin"
	message string
	cause   error
}

// NewSessionError creates a new SessionError.
func NewSessionError(scope, message string, cause error) *SessionError {
	return &SessionError{Scope: scope, message: message, cause: cause}
}

// Error returns the formatted error message.
func (e *SessionError) Error() string {
	prefix := "session error"
	if e.Scope != "" {
		prefix = fmt.Sprintf("session error [scope=%s]", e.Scope)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying error.
func (e *SessionError) Unwrap() error { return e.cause }

// Is checks if this error matches the target.
func (e *SessionError) Is(target error) bool {
	if _, ok := target.(*SessionError); ok {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// PaymentError represents errors raised by the hosted-payment flow.
type PaymentError struct {
	OrderID string // provider order id, when one was issued
	message string
	cause   error
}

// NewPaymentError creates a new PaymentError.
func NewPaymentError(message string, cause error) *PaymentError {
	return &PaymentError{message: message, cause: cause}
}

// WithOrderID adds the provider order id to the error context.
func (e *PaymentError) WithOrderID(id string) *PaymentError {
	e.OrderID = id
	return e
}

// Error returns the formatted error message.
func (e *PaymentError) Error() string {
	prefix := "payment error"
	if e.OrderID != "" {
		prefix = fmt.Sprintf("payment error [order=%s]", e.OrderID)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error { return e.cause }

// Is checks if this error matches the target.
func (e *PaymentError) Is(target error) bool {
	if _, ok := target.(*PaymentError); ok {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// ValidationError represents invalid local input. The offending request is
// never sent; the message is surfaced inline next to the field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error [field=%s]: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// IsAuthFailure reports whether err means the current session is no longer
// valid and the user should be sent back to login.
func IsAuthFailure(err error) bool {
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrNotLoggedIn) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	return false
}

// IsConnectionFailure reports whether err means the backend never answered.
// These surface as a generic message with manual retry only.
func IsConnectionFailure(err error) bool {
	if errors.Is(err, ErrConnection) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 0
	}
	return false
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// UserMessage extracts text safe to show in the UI from any error produced
// by this codebase, falling back to the given default.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage(fallback)
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	if err != nil && IsConnectionFailure(err) {
		return fallback
	}
	return fallback
}
