// Version command for the pebbl CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootVersion is stamped at build time via -ldflags.
var rootVersion = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pebbl version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pebbl", rootVersion)
	},
}
