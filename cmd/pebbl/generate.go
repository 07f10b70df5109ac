// Generate command for the pebbl CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	pebbl "github.com/SMArndt/CavrocPebbl"
)

var (
	generateOutputDir string
	generatePrefix    string
	generateStdout    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <model-file>",
	Short: "Generate a .f3dat document from a model snapshot",
	Long: `Generate reads a model snapshot (JSON or YAML, selected by file
extension), renders the full document and writes it next to the snapshot
or into --output-dir. The output filename derives from the project name.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "o", "", "directory for the generated document (default: config output_dir)")
	generateCmd.Flags().StringVar(&generatePrefix, "prefix", "", "command prefix for emitted lines (default: config prefix)")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "write the document to stdout instead of a file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	model, err := readModel(args[0])
	if err != nil {
		return err
	}

	lib, err := pebbl.DefaultReferenceLibrary()
	if err != nil {
		return fmt.Errorf("reference library: %w", err)
	}

	prefix := generatePrefix
	if !cmd.Flags().Changed("prefix") {
		prefix = cfg.GetString(cfgKeyPrefix)
	}
	text := pebbl.Generate(model, lib, pebbl.GenerateOptions{
		Prefix: prefix,
		Logger: logger,
	})

	if generateStdout {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	dir := generateOutputDir
	if dir == "" {
		dir = cfg.GetString(cfgKeyOutputDir)
	}
	name := pebbl.OutputFilename(model.Project.ID, model.Project.Name, rootVersion)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	logger.Info("document written",
		zap.String("path", path),
		zap.Int("bytes", len(text)))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// readModel loads a snapshot file, decoding by extension.
func readModel(path string) (*pebbl.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var model pebbl.Model
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &model); err != nil {
			return nil, fmt.Errorf("parse yaml model: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &model); err != nil {
			return nil, fmt.Errorf("parse json model: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported model format %q", filepath.Ext(path))
	}
	return &model, nil
}
