package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daite/pdl/cmd/pdl/cmd/feeds"
	"github.com/daite/pdl/cmd/pdl/cmd/version"
	"github.com/daite/pdl/internal/config"
	"github.com/daite/pdl/internal/downloader"
	"github.com/daite/pdl/internal/feed"
	"github.com/daite/pdl/internal/logger"
	"github.com/daite/pdl/internal/output"
	"github.com/daite/pdl/internal/ui"
	"github.com/daite/pdl/internal/util/files"
)

var Verbose bool

var (
	episodeLimit int
	downloadDir  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pdl",
	Short: "An interactive podcast downloader for the terminal",
	Long: `pdl fetches a podcast RSS feed, lets you pick an episode with the arrow
keys, and streams it into your download directory with a progress bar.
Feeds come from the built-in registry or a feeds.yaml next to the binary.`,
	Version:       version.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(feeds.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.Flags().IntVarP(&episodeLimit, "limit", "n", config.DefaultEpisodeLimit,
		"how many recent episodes to offer")
	rootCmd.Flags().StringVarP(&downloadDir, "dir", "d", config.DefaultDownloadDir,
		"directory to save downloaded episodes")
}

func run(cmd *cobra.Command) error {
	log := logger.New(Verbose)
	defer logger.MustSync(log)

	printer := output.NewPrinter(output.UseColors())

	cfg, err := config.Load()
	if err != nil {
		printer.Error("%v", err)
		return err
	}

	// Flags win over the environment and the feeds file.
	if cmd.Flags().Changed("limit") {
		if episodeLimit < 1 {
			err := fmt.Errorf("limit must be at least 1, got %d", episodeLimit)
			printer.Error("%v", err)
			return err
		}
		cfg.EpisodeLimit = episodeLimit
	}
	if cmd.Flags().Changed("dir") {
		cfg.DownloadDir = downloadDir
	}

	printer.Banner("🎙 Podcast Downloader")

	selected := cfg.Feeds[0]
	if len(cfg.Feeds) > 1 {
		idx, err := ui.SelectFeed(cfg.Feeds)
		if err != nil {
			return finishPrompt(printer, err)
		}
		selected = cfg.Feeds[idx]
	}

	log.Debug("feed chosen",
		zap.String("name", selected.Name),
		zap.String("url", selected.URL))
	printer.Info("Fetching %s…", selected.Name)

	episodes, err := feed.NewFetcher(log).Fetch(cmd.Context(), selected.URL, cfg.EpisodeLimit)
	if err != nil {
		printer.Error("%v", err)
		return err
	}
	if len(episodes) == 0 {
		printer.Warning("No downloadable episodes in %s", selected.Name)
		return nil
	}

	idx, err := ui.SelectEpisode(episodes)
	if err != nil {
		return finishPrompt(printer, err)
	}
	episode := episodes[idx]

	printer.Print("%s", printer.Bold(episode.Title))
	if summary := feed.PlainDescription(episode, 200); summary != "" {
		printer.Print("%s", printer.Dim(summary))
	}

	name := files.SanitizeFileName(episode.Title) + "." + files.ExtensionFromURL(episode.MediaURL)

	fs := afero.NewOsFs()
	if err := files.EnsureDir(fs, cfg.DownloadDir); err != nil {
		printer.Error("%v", err)
		return err
	}
	dest := filepath.Join(cfg.DownloadDir, name)

	reporter := downloader.NewBarReporter(downloader.BarConfig{
		Enabled: downloader.ShouldShowProgress(false),
		Label:   name,
	})

	session, err := downloader.New(fs, reporter, log).Download(cmd.Context(), episode.MediaURL, dest)
	if err != nil {
		printer.Error("%v", err)
		if session.Received > 0 {
			printer.Warning("Partial file left at %s (%s)", dest, output.FormatBytes(session.Received))
		}
		return err
	}

	printer.Success("Saved %s (%s)", dest, output.FormatBytes(session.Received))
	return nil
}

// finishPrompt turns a cancelled prompt into a clean exit; anything else is
// a real error.
func finishPrompt(printer *output.Printer, err error) error {
	if errors.Is(err, ui.ErrCancelled) {
		printer.Info("Nothing downloaded.")
		return nil
	}
	printer.Error("%v", err)
	return err
}
