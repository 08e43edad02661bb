// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raindrop renders bookmark collections in Raindrop.io's CSV
// import format.
package raindrop

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdiddy/pindrop/internal/logging"
	"github.com/pdiddy/pindrop/pkg/types"
)

var log = logging.GetLogger("raindrop")

// csvHeader is the column order Raindrop's importer expects. The header
// row is always written, even for an empty collection.
var csvHeader = []string{
	"url", "folder", "title", "note", "tags", "created", "cover", "highlights", "favorite",
}

// Write renders the bookmarks as RFC 4180 CSV on w, header row first,
// records in input order.
func Write(w io.Writer, bookmarks []types.RaindropBookmark) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, bm := range bookmarks {
		record := []string{
			bm.URL,
			bm.Folder,
			bm.Title,
			bm.Description,
			bm.Tags,
			bm.Created,
			bm.Cover,
			bm.Highlights,
			strconv.FormatBool(bm.Favorite),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV record for %s: %w", bm.URL, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// WriteFile writes the CSV to path atomically. Rows land in a temp file in
// the destination directory which is renamed over path only after a clean
// flush, so a failed run never leaves a truncated export behind.
func WriteFile(path string, bookmarks []types.RaindropBookmark) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".pindrop-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	writeErr := Write(tmpFile, bookmarks)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	log.Debug("csv written", "path", path, "records", len(bookmarks))
	return nil
}
