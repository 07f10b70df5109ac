// Package main provides the pebbl CLI: document generation from model
// snapshots and entity extraction from existing documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// verbose switches the logger to development output.
	verbose bool

	// logger is initialized before any subcommand runs.
	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pebbl",
	Short: "pebbl generates and inspects FLAC3D model documents",
	Long: `pebbl encodes geomechanical model snapshots (JSON or YAML) into the
line-oriented .f3dat configuration text consumed by the FLAC3D-family
simulators, and extracts per-entity field maps back out of existing
documents.`,
	PersistentPreRunE: initRun,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: .pebbl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}

// initRun wires the logger and configuration before command execution.
func initRun(cmd *cobra.Command, args []string) error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	return loadConfig(configFile)
}
