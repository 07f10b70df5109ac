// Extract command for the pebbl CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pebbl "github.com/SMArndt/CavrocPebbl"
)

var (
	extractObject  string
	extractSection string
)

var extractCmd = &cobra.Command{
	Use:   "extract <document-file>",
	Short: "Extract entity field maps from a generated document",
	Long: `Extract parses an existing .f3dat document and recovers the entities
of one object category as JSON field maps. --object selects the key
prefix (e.g. Domain, Fault, step) and --section the reference table
section resolving the expected keys.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractObject, "object", "Domain", "object key prefix to extract")
	extractCmd.Flags().StringVar(&extractSection, "section", "domain", "reference table section")
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	lib, err := pebbl.DefaultReferenceLibrary()
	if err != nil {
		return fmt.Errorf("reference library: %w", err)
	}
	section := lib.Section(extractSection)
	if section.Len() == 0 {
		return fmt.Errorf("unknown reference section %q", extractSection)
	}

	ex := pebbl.NewExtractor(lib, logger)
	entities := ex.Extract(strings.Split(string(data), "\n"), extractObject, section)
	logger.Info("entities recovered",
		zap.String("object", extractObject),
		zap.Int("count", len(entities)))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(entities)
}
