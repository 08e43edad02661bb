// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pinboard fetches a user's complete bookmark collection from the
// Pinboard v1 API.
package pinboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/pindrop/internal/logging"
	"github.com/pdiddy/pindrop/pkg/types"
)

// pinboardAPIBase is the Pinboard v1 API root. Declared as a variable so
// tests can point the client at a local server.
var pinboardAPIBase = "https://api.pinboard.in/v1"

var log = logging.GetLogger("pinboard")

// Sentinel errors for the failure classes callers distinguish. Wrapped
// errors carry the HTTP detail; match with errors.Is.
var (
	// ErrAuth indicates the API rejected the token.
	ErrAuth = errors.New("pinboard authentication failed")

	// ErrRateLimited indicates the API throttled the request. Pinboard
	// allows one posts/all call per five minutes.
	ErrRateLimited = errors.New("pinboard rate limit exceeded")

	// ErrBadResponse indicates the response body did not decode as the
	// posts/all schema.
	ErrBadResponse = errors.New("unexpected pinboard response")
)

// Client queries the Pinboard API for a single account.
type Client struct {
	// HTTPClient issues the requests. Callers set the timeout here.
	HTTPClient *http.Client

	// Token is the account's API token in Pinboard's "username:HEX" form.
	Token string

	// UserAgent identifies the tool to the API.
	UserAgent string
}

// Pinboard API JSON structures. The v1 API encodes booleans as the strings
// "yes" and "no"; yesNo tolerates both forms plus real JSON booleans.
type pinboardPost struct {
	Href        string `json:"href"`
	Description string `json:"description"`
	Extended    string `json:"extended"`
	Tags        string `json:"tags"`
	Time        string `json:"time"`
	Shared      yesNo  `json:"shared"`
	ToRead      yesNo  `json:"toread"`
}

type yesNo bool

// UnmarshalJSON accepts "yes"/"no" as well as plain booleans. Anything
// else decodes as false rather than failing the whole export.
func (b *yesNo) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"yes"`, "true":
		*b = true
	default:
		*b = false
	}
	return nil
}

// FetchAll retrieves every bookmark on the account in one request. The
// posts are returned in the API's order, newest first.
func (c *Client) FetchAll(ctx context.Context) ([]types.PinboardBookmark, error) {
	if c.Token == "" {
		return nil, fmt.Errorf("%w: no API token configured", ErrAuth)
	}

	params := url.Values{}
	params.Set("auth_token", c.Token)
	params.Set("format", "json")
	reqURL := pinboardAPIBase + "/posts/all?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building posts/all request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	log.Debug("fetching posts/all", "url", pinboardAPIBase+"/posts/all")
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pinboard API request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: HTTP %d from posts/all", ErrAuth, resp.StatusCode)
	case http.StatusInternalServerError:
		// Pinboard reports invalid tokens as server errors.
		return nil, fmt.Errorf("%w: HTTP 500 from posts/all (the token may be invalid)", ErrAuth)
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: posts/all allows one call per five minutes", ErrRateLimited)
	default:
		return nil, fmt.Errorf("pinboard API returned HTTP %d", resp.StatusCode)
	}

	var posts []pinboardPost
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("%w: parsing posts/all body: %v", ErrBadResponse, err)
	}
	log.Debug("decoded posts", "count", len(posts))

	bookmarks := make([]types.PinboardBookmark, 0, len(posts))
	for _, p := range posts {
		bookmarks = append(bookmarks, types.PinboardBookmark{
			URL:         p.Href,
			Title:       p.Description,
			Description: p.Extended,
			Tags:        p.Tags,
			Created:     p.Time,
			Shared:      bool(p.Shared),
			Unread:      bool(p.ToRead),
		})
	}
	return bookmarks, nil
}
