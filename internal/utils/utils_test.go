//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatTrackDuration tests the FormatTrackDuration function.
func TestFormatTrackDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seconds  uint32
		expected string
	}{
		{
			name:     "zero duration",
			seconds:  0,
			expected: "0:00",
		},
		{
			name:     "under a minute",
			seconds:  7,
			expected: "0:07",
		},
		{
			name:     "typical track",
			seconds:  187,
			expected: "3:07",
		},
		{
			name:     "exactly one minute",
			seconds:  60,
			expected: "1:00",
		},
		{
			name:     "just under an hour",
			seconds:  3599,
			expected: "59:59",
		},
		{
			name:     "over an hour",
			seconds:  3765,
			expected: "1:02:45",
		},
		{
			name:     "long mix",
			seconds:  7200,
			expected: "2:00:00",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := FormatTrackDuration(tt.seconds)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "json response",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "json with charset",
			contentType: "application/json; charset=utf-8",
			expected:    true,
		},
		{
			name:        "form-encoded request body",
			contentType: "application/x-www-form-urlencoded",
			expected:    true,
		},
		{
			name:        "plain text",
			contentType: "text/plain",
			expected:    true,
		},
		{
			name:        "html page",
			contentType: "text/html; charset=us-ascii",
			expected:    true,
		},
		{
			name:        "unsupported charset",
			contentType: "text/plain; charset=koi8-r",
			expected:    false,
		},
		{
			name:        "binary audio",
			contentType: "audio/mpeg",
			expected:    false,
		},
		{
			name:        "octet stream",
			contentType: "application/octet-stream",
			expected:    false,
		},
		{
			name:        "malformed content type",
			contentType: ";;",
			expected:    false,
		},
		{
			name:        "empty content type",
			contentType: "",
			expected:    false,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := IsTextContentType(tt.contentType)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestMap tests the Map function.
func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("int64 ids to strings", func(t *testing.T) {
		t.Parallel()

		input := []int64{-42, 0, 67859194}
		result := Map(input, func(v int64) string {
			return strconv.FormatInt(v, 10)
		})

		assert.Equal(t, []string{"-42", "0", "67859194"}, result)
	})

	t.Run("empty slice", func(t *testing.T) {
		t.Parallel()

		result := Map([]string{}, func(v string) int {
			return len(v)
		})

		assert.Empty(t, result)
		assert.NotNil(t, result)
	})
}
