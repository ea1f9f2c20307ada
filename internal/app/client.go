package app

import (
	"context"
	"net/http"

	"github.com/y0ung3r/vk/internal/config"
	"github.com/y0ung3r/vk/internal/logger"
	http_transport "github.com/y0ung3r/vk/internal/transport/http"
	"github.com/y0ung3r/vk/internal/utils"
	"github.com/y0ung3r/vk/pkg/vk"
)

// newAudioClient assembles the audio API client from the configuration.
// The HTTP client carries the User-Agent injector and, on debug level,
// the request/response dump transport.
func newAudioClient(cfg *config.Config) vk.AudioClient {
	timeout := http_transport.DefaultTimeout
	if cfg.ParsedRequestTimeout > 0 {
		timeout = cfg.ParsedRequestTimeout
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
		Timeout: timeout,
	}

	caller := vk.NewAPICaller(vk.APICallerOptions{
		AccessToken: cfg.AccessToken,
		BaseURL:     cfg.APIBaseURL,
		Version:     cfg.APIVersion,
		Language:    cfg.Language,
		HTTPClient:  httpClient,
	})

	return vk.NewAudioClient(caller)
}

// printAudios logs a numbered track listing.
func printAudios(ctx context.Context, audios []*vk.Audio) {
	for i, audio := range audios {
		logger.Infof(ctx, "%3d. %s - %s (%s)",
			i+1, audio.Artist, audio.Title, utils.FormatTrackDuration(audio.Duration))
	}
}
