// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pindrop/pkg/types"
)

// Report is the on-disk record of one conversion run. It captures the
// options used, the counts, and every skipped bookmark, so a run can be
// audited after the CSV has been imported.
type Report struct {
	Config  ReportConfig `yaml:"config"`
	Summary RunSummary   `yaml:"summary"`
	Skips   []Skip       `yaml:"skips,omitempty"`
}

// ReportConfig echoes the conversion options that produced the run.
type ReportConfig struct {
	Folder           string   `yaml:"folder,omitempty"`
	UserTags         []string `yaml:"user_tags,omitempty"`
	CleanDescription bool     `yaml:"clean_description"`
}

// RunSummary stores run statistics and a timestamp.
type RunSummary struct {
	Fetched   int       `yaml:"fetched"`
	Converted int       `yaml:"converted"`
	Skipped   int       `yaml:"skipped"`
	Output    string    `yaml:"output"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteReport saves a run report to a YAML file.
func WriteReport(path string, result BatchResult, cfg types.ConvertConfig, output string) error {
	rep := Report{
		Config: ReportConfig{
			Folder:           cfg.Folder,
			UserTags:         cfg.UserTags,
			CleanDescription: cfg.CleanDescription,
		},
		Summary: RunSummary{
			Fetched:   result.Total(),
			Converted: result.Converted,
			Skipped:   result.Skipped,
			Output:    output,
			Timestamp: time.Now(),
		},
		Skips: result.Skips,
	}

	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads a previously saved run report from disk.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run report: %w", err)
	}
	var rep Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parsing run report: %w", err)
	}
	return &rep, nil
}
