package app

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/y0ung3r/vk/internal/config"
	"github.com/y0ung3r/vk/internal/logger"
)

// ExecuteCountCommand executes the count command.
// It prints the total number of audios on the owner's list.
func ExecuteCountCommand(ctx context.Context, cfg *config.Config, ownerID int64) {
	client := newAudioClient(cfg)

	count, err := client.GetCount(ctx, ownerID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to count audios of owner %d: %v", ownerID, err)
	}

	logger.Infof(ctx, "Owner %d has %s audios.", ownerID, humanize.Comma(count))
}
