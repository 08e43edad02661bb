// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert maps Pinboard bookmarks onto Raindrop import records.
// Conversion is per-record and total for valid input; records that cannot
// be represented are skipped and reported, never silently dropped.
package convert

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/pindrop/internal/logging"
	"github.com/pdiddy/pindrop/pkg/types"
)

var log = logging.GetLogger("convert")

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int

	// Bookmarks are the converted records, in input order.
	Bookmarks []types.RaindropBookmark

	// Skips describes every record left out of the export.
	Skips []Skip
}

// Skip records one bookmark excluded from the export and why.
type Skip struct {
	URL    string `json:"url" yaml:"url"`
	Reason string `json:"reason" yaml:"reason"`
}

// Total returns the total number of bookmarks processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped
}

// HasSkips reports whether any bookmarks were excluded.
func (r BatchResult) HasSkips() bool {
	return r.Skipped > 0
}

// ConvertBookmark transforms a single Pinboard bookmark. It returns an
// error when the record cannot appear in a Raindrop import: a missing URL
// or a created time that does not parse as RFC 3339.
func ConvertBookmark(bm types.PinboardBookmark, cfg types.ConvertConfig) (types.RaindropBookmark, error) {
	if bm.URL == "" {
		return types.RaindropBookmark{}, fmt.Errorf("missing url")
	}
	if _, err := time.Parse(time.RFC3339, bm.Created); err != nil {
		return types.RaindropBookmark{}, fmt.Errorf("invalid created time %q", bm.Created)
	}

	note := bm.Description
	if cfg.CleanDescription {
		note = cleanDescription(note)
	}

	return types.RaindropBookmark{
		URL:         bm.URL,
		Folder:      cfg.Folder,
		Title:       bm.Title,
		Description: note,
		Tags:        joinTags(bm.Tags, cfg.UserTags),
		Created:     bm.Created,
		Favorite:    false,
	}, nil
}

// ConvertBatch converts every bookmark, printing a line per skipped record
// to w and collecting the rest in input order. A batch with skips is still
// a successful batch; callers decide how to surface the skip count.
func ConvertBatch(bookmarks []types.PinboardBookmark, cfg types.ConvertConfig, w io.Writer) BatchResult {
	result := BatchResult{
		Bookmarks: make([]types.RaindropBookmark, 0, len(bookmarks)),
	}
	for _, bm := range bookmarks {
		converted, err := ConvertBookmark(bm, cfg)
		if err != nil {
			fmt.Fprintf(w, "skipped: %s (%v)\n", skipLabel(bm), err)
			result.Skipped++
			result.Skips = append(result.Skips, Skip{URL: bm.URL, Reason: err.Error()})
			continue
		}
		result.Converted++
		result.Bookmarks = append(result.Bookmarks, converted)
	}
	log.Debug("batch converted", "converted", result.Converted, "skipped", result.Skipped)
	return result
}

// skipLabel picks the most useful identifier for a skip report line.
func skipLabel(bm types.PinboardBookmark) string {
	if bm.URL != "" {
		return bm.URL
	}
	if bm.Title != "" {
		return bm.Title
	}
	return "(untitled)"
}

// cleanDescription flattens a multi-line description to one line: each
// line is trimmed, blank lines are dropped, and the rest join with single
// spaces.
func cleanDescription(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// joinTags merges a bookmark's space-delimited Pinboard tags with the
// user-supplied extras into Raindrop's comma-separated form.
func joinTags(pinboardTags string, userTags []string) string {
	tags := strings.Fields(pinboardTags)
	tags = append(tags, userTags...)
	return strings.Join(tags, ", ")
}
