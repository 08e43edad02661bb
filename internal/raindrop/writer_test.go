// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raindrop

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pindrop/pkg/types"
)

func TestWriteHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "url,folder,title,note,tags,created,cover,highlights,favorite\n", buf.String())
}

func TestWriteRecords(t *testing.T) {
	bookmarks := []types.RaindropBookmark{
		{
			URL:         "https://go.dev/blog/pipelines",
			Folder:      "Reading",
			Title:       "Go Concurrency Patterns: Pipelines",
			Description: "Classic post.",
			Tags:        "go, concurrency",
			Created:     "2024-11-02T09:14:33Z",
		},
		{
			URL:     "https://example.org",
			Created: "2019-06-30T18:00:00Z",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, bookmarks))

	want := "url,folder,title,note,tags,created,cover,highlights,favorite\n" +
		"https://go.dev/blog/pipelines,Reading,Go Concurrency Patterns: Pipelines,Classic post.,\"go, concurrency\",2024-11-02T09:14:33Z,,,false\n" +
		"https://example.org,,,,,2019-06-30T18:00:00Z,,,false\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteEscaping(t *testing.T) {
	bookmarks := []types.RaindropBookmark{
		{
			URL:         "https://example.org/?a=1&b=2",
			Title:       `He said "hello, world"`,
			Description: "first line\nsecond line",
			Tags:        "quotes, newlines",
			Created:     "2022-02-02T02:02:02Z",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, bookmarks))

	// The quoted fields must survive a round trip through a CSV reader.
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	want := []string{
		"https://example.org/?a=1&b=2",
		"",
		`He said "hello, world"`,
		"first line\nsecond line",
		"quotes, newlines",
		"2022-02-02T02:02:02Z",
		"", "", "false",
	}
	if diff := cmp.Diff(want, records[1]); diff != "" {
		t.Errorf("record mismatch after round trip (-want +got):\n%s", diff)
	}
}

func TestWriteDeterministic(t *testing.T) {
	bookmarks := []types.RaindropBookmark{
		{URL: "https://a.example", Tags: "one, two", Created: "2020-01-01T00:00:00Z"},
		{URL: "https://b.example", Title: "b", Created: "2021-01-01T00:00:00Z"},
	}

	var first, second bytes.Buffer
	require.NoError(t, Write(&first, bookmarks))
	require.NoError(t, Write(&second, bookmarks))
	assert.Equal(t, first.Bytes(), second.Bytes(), "same input must yield byte-identical output")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookmarks.csv")

	bookmarks := []types.RaindropBookmark{
		{URL: "https://example.org", Created: "2020-01-01T00:00:00Z"},
	}
	require.NoError(t, WriteFile(path, bookmarks))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "url,folder,title,note,tags,created,cover,highlights,favorite\n"))
	assert.Contains(t, string(data), "https://example.org")

	// No temp residue left in the destination directory.
	leftovers, err := filepath.Glob(filepath.Join(dir, ".pindrop-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale contents"), 0o644))

	require.NoError(t, WriteFile(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "url,folder,title,note,tags,created,cover,highlights,favorite\n", string(data))
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "bookmarks.csv")
	err := WriteFile(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating temp file")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "failed write must not leave a file")
}
