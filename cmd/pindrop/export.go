// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pindrop/internal/convert"
	"github.com/pdiddy/pindrop/internal/pinboard"
	"github.com/pdiddy/pindrop/internal/raindrop"
	"github.com/pdiddy/pindrop/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "pindrop/0.1"
)

func init() {
	rootCmd.Flags().StringP("output", "o", "", "destination CSV file (required)")
	rootCmd.Flags().StringP("pinboard-token", "t", "", "Pinboard API token (username:HEX)")
	rootCmd.Flags().StringP("raindrop-folder", "f", "", "Raindrop folder for every imported bookmark")
	rootCmd.Flags().StringSliceP("user-tags", "u", nil, "extra tags appended to every bookmark")
	rootCmd.Flags().BoolP("clean-description", "c", false, "flatten multi-line descriptions to one line")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	rootCmd.Flags().String("report", "", "write a YAML run report to this file")

	_ = rootCmd.MarkFlagRequired("output")

	// Config file and PINDROP_* environment values back these flags.
	_ = viper.BindPFlag("pinboard-token", rootCmd.Flags().Lookup("pinboard-token"))
	_ = viper.BindPFlag("raindrop-folder", rootCmd.Flags().Lookup("raindrop-folder"))
	_ = viper.BindPFlag("user-tags", rootCmd.Flags().Lookup("user-tags"))
	_ = viper.BindPFlag("clean-description", rootCmd.Flags().Lookup("clean-description"))
	_ = viper.BindPFlag("timeout", rootCmd.Flags().Lookup("timeout"))
}

// runExport drives the pipeline: fetch from Pinboard, convert, write CSV.
func runExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	token := secretDefault("pinboard-token", viper.GetString("pinboard-token"))
	if token == "" {
		return fmt.Errorf("no Pinboard API token (set --pinboard-token, PINDROP_PINBOARD_TOKEN, or .secrets/pinboard-token)")
	}

	timeout := viper.GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	fetchCfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
	}

	client := &pinboard.Client{
		HTTPClient: &http.Client{Timeout: fetchCfg.Timeout},
		Token:      token,
		UserAgent:  fetchCfg.UserAgent,
	}

	fmt.Fprintln(os.Stderr, "Fetching all bookmarks from Pinboard...")
	bookmarks, err := client.FetchAll(context.Background())
	if err != nil {
		return fmt.Errorf("fetching bookmarks: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Fetched %d bookmarks\n", len(bookmarks))

	cfg := types.ConvertConfig{
		Folder:           viper.GetString("raindrop-folder"),
		UserTags:         viper.GetStringSlice("user-tags"),
		CleanDescription: viper.GetBool("clean-description"),
	}
	result := convert.ConvertBatch(bookmarks, cfg, os.Stderr)

	if err := raindrop.WriteFile(output, result.Bookmarks); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := convert.WriteReport(reportPath, result, cfg, output); err != nil {
			return fmt.Errorf("writing run report: %w", err)
		}
	}

	printStats(result, output)
	return nil
}

// printStats prints the run summary. A run with skips still exits zero;
// the red marker is the only signal.
func printStats(result convert.BatchResult, output string) {
	color.Green("✓ %d bookmarks successfully processed", result.Converted)
	if result.HasSkips() {
		color.Red("✕ %d bookmark processing errors", result.Skipped)
	}
	fmt.Printf("Wrote %s\n", output)
}
