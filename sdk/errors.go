package sdk

import (
	"errors"
	"fmt"
)

// Common errors returned by the SDK. These can be used with errors.Is()
// to check for specific error conditions.
//
// Example:
//
//	_, err := client.Products(ctx, sdk.ByID(4312001), nil)
//	if errors.Is(err, sdk.ErrMissingAPIKey) {
//	    // No API key was configured
//	} else if errors.Is(err, sdk.ErrService) {
//	    // The request reached the network and failed
//	}
var (
	// ErrMissingAPIKey is returned when no API key is configured
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidArgument is returned when an argument combination is
	// not supported by the upstream API
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrService is returned for any failure while communicating with
	// the Best Buy APIs
	ErrService = errors.New("service error")

	// ErrClientClosed is returned when an operation is attempted on a
	// closed client
	ErrClientClosed = errors.New("client is closed")
)

// AuthorizationError indicates the client has no usable API key.
// It is returned before any URL is built or network I/O is performed.
//
// Example:
//
//	var authErr *sdk.AuthorizationError
//	if errors.As(err, &authErr) {
//	    log.Fatal(authErr)
//	}
type AuthorizationError struct {
	// Message describes how to obtain and supply a key
	Message string
}

// Error implements the error interface
func (e *AuthorizationError) Error() string {
	return e.Message
}

// Is implements errors.Is support for ErrMissingAPIKey
func (e *AuthorizationError) Is(target error) bool {
	return errors.Is(target, ErrMissingAPIKey)
}

// newAuthorizationError creates the canonical missing-key error
func newAuthorizationError() *AuthorizationError {
	return &AuthorizationError{
		Message: "a Best Buy developer API key is required; register for one at " +
			"developer.bestbuy.com and pass it via sdk.NewConfig(apiKey) or sdk.ConfigFromEnv()",
	}
}

// InvalidArgumentError indicates the caller supplied an argument
// combination the upstream API does not support, such as requesting
// also-viewed recommendations without a SKU. It is returned before any
// network I/O is performed.
type InvalidArgumentError struct {
	// Message names the invalid combination
	Message string
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is implements errors.Is support for ErrInvalidArgument
func (e *InvalidArgumentError) Is(target error) bool {
	return errors.Is(target, ErrInvalidArgument)
}

// ServiceError indicates a failure while communicating with the Best
// Buy APIs. All transport-level failures are wrapped uniformly: network
// errors, non-2xx responses, and unreadable or undecodable bodies.
//
// The underlying cause is available through errors.Unwrap, and the HTTP
// status code is set when a response was received.
//
// Example:
//
//	var svcErr *sdk.ServiceError
//	if errors.As(err, &svcErr) {
//	    log.Printf("request to %s failed (status %d): %v",
//	        svcErr.URL, svcErr.StatusCode, svcErr.Unwrap())
//	}
type ServiceError struct {
	// Message is a human-readable description of the failure
	Message string
	// URL is the full URL of the failed request, when known
	URL string
	// StatusCode is the HTTP status code, or 0 if no response was received
	StatusCode int
	// wrapped is the underlying error, if any
	wrapped error
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("service error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("service error: %s", e.Message)
}

// Unwrap returns the underlying error
func (e *ServiceError) Unwrap() error {
	return e.wrapped
}

// Is implements errors.Is support for ErrService
func (e *ServiceError) Is(target error) bool {
	return errors.Is(target, ErrService)
}

// newServiceError wraps a transport failure
func newServiceError(message, url string, statusCode int, wrapped error) *ServiceError {
	return &ServiceError{
		Message:    message,
		URL:        url,
		StatusCode: statusCode,
		wrapped:    wrapped,
	}
}

// IsAuthorization reports whether err represents a missing or empty
// API key.
func IsAuthorization(err error) bool {
	var authErr *AuthorizationError
	return errors.As(err, &authErr)
}

// IsInvalidArgument reports whether err represents an argument
// combination rejected before any request was made.
func IsInvalidArgument(err error) bool {
	var argErr *InvalidArgumentError
	return errors.As(err, &argErr)
}

// IsService reports whether err represents a failure communicating
// with the service.
func IsService(err error) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr)
}
