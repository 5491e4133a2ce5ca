package oauth

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedCallback = errors.New("callback is missing the code or state parameter")
	ErrStateMismatch     = errors.New("callback state does not match the pending authorization state")
)

// ProviderError is an error the authorization server reported on the
// callback redirect, before any token exchange took place.
type ProviderError struct {
	Code        string
	Description string
}

func newProviderError(code string) *ProviderError {
	var desc string

	switch code {
	case "access_denied":
		desc = "the user declined the authorization request"
	case "invalid_scope":
		desc = "one or more requested scopes are invalid or unknown to the provider"
	case "server_error":
		desc = "the authorization server encountered an unexpected error"
	default:
		desc = fmt.Sprintf("the authorization server returned an unrecognized error code %q", code)
	}

	return &ProviderError{Code: code, Description: desc}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider declined authorization (%s): %s", e.Code, e.Description)
}

// ExchangeError wraps a failure to turn an authorization code into a token:
// network errors, non-200 responses, and bodies without an access_token.
type ExchangeError struct {
	Err error
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("token exchange failed: %v", e.Err)
}

func (e *ExchangeError) Unwrap() error {
	return e.Err
}

// APIError wraps a failed bearer-authed API call, including responses that
// came back without the field the caller needed.
type APIError struct {
	Endpoint string
	Err      error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api call to %s failed: %v", e.Endpoint, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
