package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pindrop/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`
}

// ConvertConfig holds the per-run conversion settings. It is built once
// from CLI flags and passed explicitly into the conversion stage; no stage
// reads configuration ambiently.
type ConvertConfig struct {
	// Folder is the destination Raindrop collection applied to every
	// record. Empty sends imports to Unsorted.
	Folder string `json:"folder" yaml:"folder"`

	// UserTags are extra tags appended, in order, to every record's
	// source tags. Useful for marking an import batch (e.g. "@pinboard").
	UserTags []string `json:"user_tags,omitempty" yaml:"user_tags,omitempty"`

	// CleanDescription strips linebreaks from descriptions: each line is
	// trimmed, empty lines are dropped, and the remainder is joined with
	// single spaces.
	CleanDescription bool `json:"clean_description" yaml:"clean_description"`
}
