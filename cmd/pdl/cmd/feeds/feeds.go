package feeds

import (
	"github.com/spf13/cobra"

	"github.com/daite/pdl/internal/config"
	"github.com/daite/pdl/internal/output"
)

// Cmd represents the feeds command
var Cmd = &cobra.Command{
	Use:   "feeds",
	Short: "List the configured podcast feeds",
	Long: `List the podcast feeds pdl knows about: the built-in registry, or the
contents of feeds.yaml when one is present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		table := output.NewTableWithWriter(cmd.OutOrStdout(), []string{"Name", "URL"})
		for _, f := range cfg.Feeds {
			table.AddRow([]string{f.Name, f.URL})
		}
		table.Render()
		return nil
	},
}
