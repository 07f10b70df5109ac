// Config loading for the pebbl CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = ".pebbl"
	configFileType = "yaml"

	// Config keys.
	cfgKeyPrefix    = "prefix"
	cfgKeyOutputDir = "output_dir"

	// Default command prefix on emitted lines.
	defaultPrefix = ""
)

// cfg holds the merged configuration for the current run.
var cfg *viper.Viper

// loadConfig reads the CLI configuration with Viper. A missing config
// file is not an error; defaults apply.
func loadConfig(path string) error {
	v := viper.New()
	v.SetDefault(cfgKeyPrefix, defaultPrefix)
	v.SetDefault(cfgKeyOutputDir, ".")
	v.SetEnvPrefix("PEBBL")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	cfg = v
	return nil
}
