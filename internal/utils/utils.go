package utils

import (
	"fmt"
	"mime"
	"regexp"
	"strings"
)

// textContentTypePatterns is a slice of regular expressions that match content types
// considered to be text-based. This covers "text/*", JSON API responses,
// and the form-encoded request bodies sent to the API.
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile("^application/json$"),
	regexp.MustCompile(`^application/x-www-form-urlencoded$`),
}

// FormatTrackDuration renders a track length given in seconds
// in the familiar player notation: "3:07", or "1:02:45" for tracks over an hour.
func FormatTrackDuration(seconds uint32) string {
	const secondsPerMinute, minutesPerHour = 60, 60

	minutes := seconds / secondsPerMinute
	remainder := seconds % secondsPerMinute

	if hours := minutes / minutesPerHour; hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes%minutesPerHour, remainder)
	}

	return fmt.Sprintf("%d:%02d", minutes, remainder)
}

// IsTextContentType checks if the given content type represents a text-based format.
// It supports common text content types like "text/*", "application/json",
// and "application/x-www-form-urlencoded".
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// Map applies a transformation function to each element of a slice and returns a new slice with the results.
func Map[E, S any](v []E, transformFunc func(E) S) []S {
	result := make([]S, len(v))
	for i := range v {
		result[i] = transformFunc(v[i])
	}

	return result
}
