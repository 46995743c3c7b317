package feed

import "time"

// Episode is one downloadable entry of a feed. Only Title and MediaURL
// drive the download flow; the rest is display metadata carried along from
// the RSS item.
type Episode struct {
	Title       string
	MediaURL    string
	Description string // raw HTML as published in the feed
	Published   *time.Time
	Duration    string // iTunes duration, free-form ("45:10" or seconds)
}
