// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pindrop CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pindrop/internal/logging"
	"github.com/pdiddy/pindrop/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value
// for key, otherwise the empty string.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the pindrop CLI. The root command runs
// the export itself; there is no separate subcommand for it.
var rootCmd = &cobra.Command{
	Use:   "pindrop",
	Short: "Convert Pinboard bookmarks into a Raindrop.io import file",
	Long: `pindrop exports a complete Pinboard account as a CSV file that
Raindrop.io's importer understands. It fetches every bookmark through the
Pinboard v1 API, maps each field onto Raindrop's import columns, and
writes the result atomically.

Records that cannot be represented (no URL, unparseable timestamps) are
skipped and reported on stderr; the rest of the export proceeds. The API
token resolves from --pinboard-token, then PINDROP_PINBOARD_TOKEN, then
the config file, then .secrets/pinboard-token.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runExport,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logging.SetVerbose()
		}

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pindrop.yaml or ~/.config/pindrop/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pindrop")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pindrop"))
		}
	}

	viper.SetEnvPrefix("PINDROP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
