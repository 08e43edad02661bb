// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared records that flow through the pindrop
// pipeline: the Pinboard-side bookmark produced by the fetch stage, the
// Raindrop-side bookmark produced by the conversion stage, and the
// configuration structs passed explicitly between stages.
package types

// PinboardBookmark is one bookmark as fetched from the Pinboard API, after
// the wire format has been decoded. Field values are carried exactly as
// Pinboard returned them; in particular Created stays a string so the
// original instant can round-trip into the output without drift.
type PinboardBookmark struct {
	// URL is the bookmarked address. The only field conversion requires.
	URL string `json:"url" yaml:"url"`

	// Title is the bookmark title (Pinboard calls this "description").
	Title string `json:"title" yaml:"title"`

	// Description is the extended free-text note. May contain linebreaks.
	Description string `json:"description" yaml:"description"`

	// Tags is the space-delimited tag string as Pinboard stores it.
	Tags string `json:"tags" yaml:"tags"`

	// Created is the creation timestamp in RFC 3339 form, e.g.
	// "2017-04-03T15:59:39Z".
	Created string `json:"created" yaml:"created"`

	// Shared reports whether the bookmark is publicly visible.
	Shared bool `json:"shared" yaml:"shared"`

	// Unread reports whether the bookmark is marked to-read.
	Unread bool `json:"unread" yaml:"unread"`
}

// RaindropBookmark is one bookmark in the shape Raindrop's CSV import
// expects. Produced by the conversion stage, consumed by the CSV writer.
type RaindropBookmark struct {
	// URL is copied verbatim from the source bookmark.
	URL string `json:"url" yaml:"url"`

	// Folder is the destination collection name, identical on every
	// record of a run. Empty means Raindrop's Unsorted collection.
	Folder string `json:"folder" yaml:"folder"`

	// Title is copied verbatim from the source bookmark.
	Title string `json:"title" yaml:"title"`

	// Description is the note text, optionally with linebreaks stripped.
	// It lands in the CSV "note" column.
	Description string `json:"description" yaml:"description"`

	// Tags is the final comma-joined tag list, source tags first, then
	// any user-supplied tags in order.
	Tags string `json:"tags" yaml:"tags"`

	// Created is the RFC 3339 timestamp, byte-identical to the source.
	Created string `json:"created" yaml:"created"`

	// Cover is the cover image URL. Pinboard has no covers; always empty.
	Cover string `json:"cover,omitempty" yaml:"cover,omitempty"`

	// Highlights is the highlights column. Always empty.
	Highlights string `json:"highlights,omitempty" yaml:"highlights,omitempty"`

	// Favorite marks the bookmark with Raindrop's star. Never derived
	// from Pinboard's shared flag; always false.
	Favorite bool `json:"favorite" yaml:"favorite"`
}
