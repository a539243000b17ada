package servicedesk

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationFailed is a rejected login the service desk gave no
	// more specific reason for.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrManualLoginRequired means the account has to sign in through the
	// browser once before API logins are accepted.
	ErrManualLoginRequired = errors.New("manual browser login required")
	ErrTransport           = errors.New("service desk request failed")
	ErrEncode              = errors.New("failed to encode login request")
	ErrDecode              = errors.New("failed to decode login response")
	// ErrUserInfoMissing is a 2xx login response without a usable user group.
	ErrUserInfoMissing = errors.New("user info missing from login response")
)

// ResponseError is a non-2xx login response. Kind is ErrManualLoginRequired
// or ErrAuthenticationFailed.
type ResponseError struct {
	Kind       error
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s (status %d): %s", e.Kind, e.StatusCode, e.Body)
}

func (e *ResponseError) Unwrap() error {
	return e.Kind
}
