package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release string baked into the binary.
const Version = "v0.1.0"

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pdl",
	Long:  `All software has versions. This is pdl's.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printVersion()
		return nil
	},
}

func printVersion() {
	fmt.Println(Version)
}
