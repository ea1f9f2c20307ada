package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is the default User-Agent string used for HTTP requests.
	// The API does not care about browser mimicry, so the client identifies itself honestly.
	DefaultUserAgent = "vk-audio-cli/1.0"
)
