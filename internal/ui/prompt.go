package ui

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/daite/pdl/internal/config"
	"github.com/daite/pdl/internal/feed"
)

const detailExcerptRunes = 80

func feedOptions(feeds []config.Feed) []Option {
	return lo.Map(feeds, func(f config.Feed, _ int) Option {
		return Option{Label: f.Name, Detail: f.URL}
	})
}

func episodeOptions(episodes []feed.Episode) []Option {
	return lo.Map(episodes, func(ep feed.Episode, i int) Option {
		return Option{
			Label:  fmt.Sprintf("%d. %s", i+1, ep.Title),
			Detail: episodeDetail(ep),
		}
	})
}

func episodeDetail(ep feed.Episode) string {
	parts := make([]string, 0, 3)
	if ep.Published != nil {
		parts = append(parts, ep.Published.Format("02 Jan 2006"))
	}
	if ep.Duration != "" {
		parts = append(parts, ep.Duration)
	}
	if excerpt := feed.PlainDescription(ep, detailExcerptRunes); excerpt != "" {
		parts = append(parts, excerpt)
	}
	return strings.Join(parts, " · ")
}

// SelectFeed prompts for one of the configured feeds and returns its index.
func SelectFeed(feeds []config.Feed) (int, error) {
	return Select("Select a podcast:", feedOptions(feeds))
}

// SelectEpisode prompts for one of the fetched episodes and returns its
// index.
func SelectEpisode(episodes []feed.Episode) (int, error) {
	return Select("Select the episode you want to download:", episodeOptions(episodes))
}
