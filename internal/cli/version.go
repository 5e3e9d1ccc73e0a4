package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set during build with ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("prism %s (%s)\n", Version, GitCommit)
	},
}
