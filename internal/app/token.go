package app

import (
	"context"
	"strings"

	"github.com/y0ung3r/vk/internal/config"
	"github.com/y0ung3r/vk/internal/logger"
)

// ExecuteConfigSetTokenCommand executes the config set-token command.
// It stores the access token in the configuration file, rewriting only
// the token value and keeping the rest of the file as it was.
func ExecuteConfigSetTokenCommand(ctx context.Context, cfg *config.Config, token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		logger.Fatal(ctx, "Access token cannot be empty")
		return
	}

	cfg.AccessToken = token

	if err := config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
		return
	}

	logger.Info(ctx, "Access token updated.")
	logger.Info(ctx, "Try listing your audios:")
	logger.Info(ctx, "vk get 1")
	logger.Info(ctx, "")
	logger.Info(ctx, "Or search for a track:")
	logger.Info(ctx, "vk search \"Bohemian Rhapsody\"")
}
