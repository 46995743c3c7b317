package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither environment nor feeds file override them.
const (
	DefaultEpisodeLimit = 10
	DefaultDownloadDir  = "podcast-downloads"
)

// Environment variables recognized by Load.
const (
	EnvDownloadDir  = "PDL_DOWNLOAD_DIR"
	EnvEpisodeLimit = "PDL_EPISODE_LIMIT"
	EnvFeedsFile    = "PDL_FEEDS_FILE"
)

// Feed is one named RSS source in the registry.
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Config carries everything the selection and download flow needs. It is
// built once at startup and passed down explicitly; nothing reads it as
// process-wide state.
type Config struct {
	Feeds        []Feed
	EpisodeLimit int
	DownloadDir  string
}

// DefaultFeeds returns the compiled-in feed registry.
func DefaultFeeds() []Feed {
	return []Feed{
		{Name: "Cozy Up (Doctor)", URL: "https://omny.fm/shows/cozy-up/playlists/doctor.rss"},
	}
}

// LoadEnv loads environment variables from a .env file if one exists near
// the working directory. Missing files are not an error; the environment
// may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load builds the Config: compiled-in defaults, then the feeds file (if
// any), then environment overrides. Invalid values fail immediately.
func Load() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Feeds:        DefaultFeeds(),
		EpisodeLimit: DefaultEpisodeLimit,
		DownloadDir:  DefaultDownloadDir,
	}

	if path := feedsFilePath(); path != "" {
		feeds, err := LoadFeedsFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Feeds = feeds
	}

	if v := strings.TrimSpace(os.Getenv(EnvDownloadDir)); v != "" {
		cfg.DownloadDir = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvEpisodeLimit)); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return nil, fmt.Errorf("invalid %s value %q: must be a positive integer", EnvEpisodeLimit, v)
		}
		cfg.EpisodeLimit = limit
	}

	return cfg, nil
}

// feedsFilePath resolves the feeds file to use: the explicit env override,
// or ./feeds.yaml when it exists.
func feedsFilePath() string {
	if v := strings.TrimSpace(os.Getenv(EnvFeedsFile)); v != "" {
		return v
	}
	if _, err := os.Stat("feeds.yaml"); err == nil {
		return "feeds.yaml"
	}
	return ""
}

type feedsFile struct {
	Feeds []Feed `yaml:"feeds"`
}

// LoadFeedsFile reads a YAML feed registry. The file must contain at least
// one feed, and every feed needs a name and an http(s) URL; order is
// preserved.
func LoadFeedsFile(path string) ([]Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feeds file %s: %w", path, err)
	}

	var parsed feedsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse feeds file %s: %w", path, err)
	}

	if len(parsed.Feeds) == 0 {
		return nil, fmt.Errorf("feeds file %s contains no feeds", path)
	}

	for i, f := range parsed.Feeds {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("feeds file %s: feed %d has no name", path, i+1)
		}
		if err := validateFeedURL(f.URL); err != nil {
			return nil, fmt.Errorf("feeds file %s: feed %q: %w", path, f.Name, err)
		}
	}

	return parsed.Feeds, nil
}

func validateFeedURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("feed URL is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid feed URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid feed URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid feed URL %q: missing host", raw)
	}
	return nil
}
