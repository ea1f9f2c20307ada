package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider supplies the User-Agent string sent with outgoing HTTP requests.
type UserAgentProvider interface {
	// GetUserAgent returns the User-Agent string to send.
	GetUserAgent() string
}

// SimpleUserAgentProvider is a UserAgentProvider that always answers with the
// same User-Agent string, fixed when the provider is constructed.
type SimpleUserAgentProvider struct {
	// userAgent is the User-Agent string handed out by GetUserAgent.
	userAgent string
}

// NewSimpleUserAgentProvider creates and returns a SimpleUserAgentProvider
// that serves the given User-Agent string.
func NewSimpleUserAgentProvider(userAgent string) UserAgentProvider {
	return &SimpleUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns the configured User-Agent string.
// It implements the UserAgentProvider interface.
func (p *SimpleUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}
