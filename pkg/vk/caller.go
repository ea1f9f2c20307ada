package vk

//go:generate $MOCKGEN -source=caller.go -destination=mocks/caller_mock.go

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Caller executes one remote API method: it receives the method name and the
// assembled parameter set and returns the decoded reply. Implementations own
// everything below the binding: authentication, transport, retries, rate
// limiting. Failures propagate to the operation's caller unchanged.
type Caller interface {
	// Call invokes the named method with the given parameter set.
	Call(ctx context.Context, method string, params *RequestParams) (Response, error)
}

// APICaller is the default Caller: one HTTP POST per call against the
// official method endpoint, form-encoded parameters, JSON envelope decoding.
// It attaches the access token, the protocol version, and the response
// language only when the operation's parameter set does not already pin them.
type APICaller struct {
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// baseURL is the method endpoint prefix, without a trailing slash.
	baseURL string
	// accessToken is the authorization token attached to every call.
	accessToken string
	// version is the protocol version attached when an operation does not pin one.
	version string
	// language selects the language of localized reply fields, empty for the account default.
	language string
}

// APICallerOptions configures NewAPICaller.
type APICallerOptions struct {
	// AccessToken is the authorization token attached to every call.
	AccessToken string
	// BaseURL overrides the method endpoint prefix. Empty selects the official endpoint.
	BaseURL string
	// Version is the default protocol version. Empty selects DefaultAPIVersion.
	Version string
	// Language selects the language of localized reply fields. Empty means the account default.
	Language string
	// HTTPClient performs the requests. Nil selects a client with DefaultRequestTimeout.
	HTTPClient *http.Client
}

const (
	// DefaultBaseURL is the official method endpoint prefix.
	DefaultBaseURL = "https://api.vk.com/method"

	// DefaultAPIVersion is the protocol version used when neither the options
	// nor an operation pin one.
	DefaultAPIVersion = "5.21"

	// DefaultRequestTimeout bounds one round trip of the default HTTP client.
	DefaultRequestTimeout = 60 * time.Second
)

// Reserved parameter keys the caller fills in unless an operation already did.
const (
	paramAccessToken = "access_token"
	paramVersion     = "v"
	paramLanguage    = "lang"
)

// NewAPICaller creates and returns a new instance of APICaller.
func NewAPICaller(opts APICallerOptions) Caller {
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	version := opts.Version
	if version == "" {
		version = DefaultAPIVersion
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultRequestTimeout}
	}

	return &APICaller{
		httpClient:  httpClient,
		baseURL:     baseURL,
		accessToken: opts.AccessToken,
		version:     version,
		language:    opts.Language,
	}
}

// Call invokes the named method with the given parameter set.
// It implements the Caller interface.
func (c *APICaller) Call(ctx context.Context, method string, params *RequestParams) (Response, error) {
	if params == nil {
		params = NewRequestParams()
	}

	// Complete the parameter set on a copy so the operation's view stays untouched.
	completed := params.clone()

	if c.accessToken != "" && !completed.Has(paramAccessToken) {
		completed.SetString(paramAccessToken, c.accessToken)
	}

	if !completed.Has(paramVersion) {
		completed.SetString(paramVersion, c.version)
	}

	if c.language != "" && !completed.Has(paramLanguage) {
		completed.SetString(paramLanguage, c.language)
	}

	route, err := url.JoinPath(c.baseURL, method)
	if err != nil {
		return Response{}, fmt.Errorf("failed to build method URL: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, route, strings.NewReader(completed.Encode()))
	if err != nil {
		return Response{}, err
	}

	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return Response{}, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var envelope struct {
		Response json.RawMessage `json:"response"`
		Error    *Error          `json:"error"`
	}

	if err = json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return Response{}, fmt.Errorf("failed to decode response envelope: %w", err)
	}

	if envelope.Error != nil {
		return Response{}, envelope.Error
	}

	return NewResponse(envelope.Response), nil
}
