package vk

import (
	"errors"
	"fmt"
)

// Static error definitions for better error handling.
var (
	// ErrInvalidParameter indicates that a required argument is unset or empty.
	// Operations fail with it before any remote call is issued.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
)

// Well-known API error codes of the audio section.
const (
	// ErrorCodeUnknown is returned when the remote side failed for an unspecified reason.
	ErrorCodeUnknown = 1
	// ErrorCodeAuthFailed is returned when the access token is missing, expired, or revoked.
	ErrorCodeAuthFailed = 5
	// ErrorCodeTooManyRequests is returned when the per-token request rate is exceeded.
	ErrorCodeTooManyRequests = 6
	// ErrorCodeCaptchaNeeded is returned when the remote side demands captcha confirmation.
	ErrorCodeCaptchaNeeded = 14
	// ErrorCodeAccessDenied is returned when the token lacks rights to the requested content.
	ErrorCodeAccessDenied = 15
	// ErrorCodeParamMissing is returned when the remote side rejects the parameter set.
	ErrorCodeParamMissing = 100
)

// Error represents an error envelope returned by the API in place of a response.
// It passes through the binding unchanged.
type Error struct {
	// Code is the numeric API error code.
	Code int `json:"error_code"`
	// Message is the human-readable description supplied by the API.
	Message string `json:"error_msg"`
	// RequestParams echoes the parameters of the failed request as the API received them.
	RequestParams []ErrorRequestParam `json:"request_params"`
}

// ErrorRequestParam is one echoed request parameter inside an API error envelope.
type ErrorRequestParam struct {
	// Key is the parameter name.
	Key string `json:"key"`
	// Value is the parameter value as received by the API.
	Value string `json:"value"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// AsAPIError unwraps err into an *Error when the failure originated
// from the remote API rather than the transport.
func AsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
