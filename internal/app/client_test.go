package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y0ung3r/vk/internal/config"
	http_transport "github.com/y0ung3r/vk/internal/transport/http"
)

// TestNewAudioClient tests that the assembled client carries the configured
// credentials and the injected User-Agent all the way to the wire.
func TestNewAudioClient(t *testing.T) {
	t.Parallel()

	var (
		lastUserAgent string
		lastForm      map[string]string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		lastUserAgent = r.UserAgent()

		lastForm = make(map[string]string, len(r.PostForm))
		for key := range r.PostForm {
			lastForm[key] = r.PostForm.Get(key)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response": 3}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		AccessToken: "test_token",
		APIVersion:  "5.21",
		Language:    "en",
		APIBaseURL:  server.URL,
	}

	client := newAudioClient(cfg)

	count, err := client.GetCount(context.Background(), 67859194)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	assert.Equal(t, http_transport.DefaultUserAgent, lastUserAgent)
	assert.Equal(t, "test_token", lastForm["access_token"])
	assert.Equal(t, "5.21", lastForm["v"])
	assert.Equal(t, "en", lastForm["lang"])
	assert.Equal(t, "67859194", lastForm["owner_id"])
}
