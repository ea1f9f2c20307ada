package app

import (
	"context"

	"github.com/y0ung3r/vk/internal/config"
	"github.com/y0ung3r/vk/internal/logger"
	"github.com/y0ung3r/vk/pkg/vk"
)

// GetCommandOptions narrows the get command.
type GetCommandOptions struct {
	// AlbumID restricts the listing to one album.
	AlbumID uint64
	// Count limits the number of printed audios.
	Count uint32
	// Offset skips that many audios.
	Offset uint32
}

// ExecuteGetCommand executes the get command.
// It lists the audios of the given owner, a user by positive id
// or a community by negative id.
func ExecuteGetCommand(ctx context.Context, cfg *config.Config, ownerID int64, opts *GetCommandOptions) {
	if opts == nil {
		opts = &GetCommandOptions{}
	}

	client := newAudioClient(cfg)

	result, err := client.Get(ctx, ownerID, &vk.AudioGetOptions{
		AlbumID:  opts.AlbumID,
		NeedUser: true,
		Count:    opts.Count,
		Offset:   opts.Offset,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to list audios of owner %d: %v", ownerID, err)
	}

	if result.User != nil {
		logger.Infof(ctx, "Audios of %s:", result.User.DisplayName())
	}

	printAudios(ctx, result.Audios)
}
