package app

import (
	"context"

	"github.com/y0ung3r/vk/internal/config"
	"github.com/y0ung3r/vk/internal/logger"
	"github.com/y0ung3r/vk/pkg/vk"
)

// PopularCommandOptions narrows the popular command.
type PopularCommandOptions struct {
	// GenreID restricts the listing to one genre. Zero means all genres.
	GenreID uint32
	// OnlyEng restricts the listing to foreign tracks only.
	OnlyEng bool
	// Count limits the number of printed audios.
	Count uint32
	// Offset skips that many audios.
	Offset uint32
}

// ExecutePopularCommand executes the popular command.
// It prints tracks popular across the service.
func ExecutePopularCommand(ctx context.Context, cfg *config.Config, opts *PopularCommandOptions) {
	if opts == nil {
		opts = &PopularCommandOptions{}
	}

	client := newAudioClient(cfg)

	audios, err := client.GetPopular(ctx, &vk.AudioPopularOptions{
		OnlyEng: opts.OnlyEng,
		GenreID: vk.Genre(opts.GenreID),
		Count:   opts.Count,
		Offset:  opts.Offset,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to list popular tracks: %v", err)
	}

	printAudios(ctx, audios)
}
