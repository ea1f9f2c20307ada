package app

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/y0ung3r/vk/internal/config"
	"github.com/y0ung3r/vk/internal/logger"
	"github.com/y0ung3r/vk/pkg/vk"
)

// SearchCommandOptions narrows the search command.
type SearchCommandOptions struct {
	// Count limits the number of printed matches.
	Count uint32
	// Offset skips that many matches.
	Offset uint32
	// Lyrics searches in lyrics instead of artist and title only.
	Lyrics bool
}

// ExecuteSearchCommand executes the search command.
// It finds audios matching the query and prints the page
// together with the total match count.
func ExecuteSearchCommand(ctx context.Context, cfg *config.Config, query string, opts *SearchCommandOptions) {
	if opts == nil {
		opts = &SearchCommandOptions{}
	}

	client := newAudioClient(cfg)

	result, err := client.Search(ctx, query, &vk.AudioSearchOptions{
		AutoComplete: true,
		Lyrics:       opts.Lyrics,
		Count:        opts.Count,
		Offset:       opts.Offset,
	})
	if err != nil {
		logger.Fatalf(ctx, "Search failed: %v", err)
	}

	logger.Infof(ctx, "Found %s tracks matching %q:", humanize.Comma(result.TotalCount), query)
	printAudios(ctx, result.Audios)
}
