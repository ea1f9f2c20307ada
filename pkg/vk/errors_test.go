package vk

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestError_Error tests the rendered message of an API error envelope.
func TestError_Error(t *testing.T) {
	t.Parallel()

	err := &Error{
		Code:    ErrorCodeAuthFailed,
		Message: "User authorization failed: invalid access_token.",
	}

	assert.Equal(t, "api error 5: User authorization failed: invalid access_token.", err.Error())
}

// TestAsAPIError tests unwrapping API errors from wrapped chains.
func TestAsAPIError(t *testing.T) {
	t.Parallel()

	apiErr := &Error{Code: ErrorCodeTooManyRequests, Message: "Too many requests per second"}
	wrapped := fmt.Errorf("audio.search: %w", apiErr)

	unwrapped, ok := AsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorCodeTooManyRequests, unwrapped.Code)

	_, ok = AsAPIError(ErrInvalidParameter)
	assert.False(t, ok)
}
