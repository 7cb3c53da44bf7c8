// Package catalog reads satellite entries from the skyrocket.de space
// catalog: the search result list and the per-satellite detail pages.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtnitsch/geosat-report/models"
	"github.com/dtnitsch/geosat-report/pkg/fetcher"
)

// ErrMissingField is wrapped by Read when a page lacks a field every
// record needs.
var ErrMissingField = errors.New("required field missing")

// Source yields catalog links and the raw fields behind each of them.
type Source interface {
	Links(ctx context.Context) ([]string, error)
	Read(ctx context.Context, link string) (models.RawFields, error)
}

// Catalog is a Source backed by HTTP.
type Catalog struct {
	fetcher    *fetcher.Fetcher
	searchURL  string
	startIndex int
	limit      int
}

// New returns a Catalog that lists links from searchURL, skipping the first
// startIndex entries and keeping at most limit of the rest (0 keeps all).
func New(f *fetcher.Fetcher, searchURL string, startIndex, limit int) *Catalog {
	return &Catalog{
		fetcher:    f,
		searchURL:  searchURL,
		startIndex: startIndex,
		limit:      limit,
	}
}

// Links fetches the search page and returns the detail links in catalog order.
func (c *Catalog) Links(ctx context.Context) ([]string, error) {
	page, err := c.fetcher.GetHtmlBytes(ctx, c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search page: %w", err)
	}
	links, err := ParseLinks(c.searchURL, page.Body)
	if err != nil {
		return nil, err
	}
	return Window(links, c.startIndex, c.limit), nil
}

// Read fetches one detail page and extracts its raw fields.
func (c *Catalog) Read(ctx context.Context, link string) (models.RawFields, error) {
	page, err := c.fetcher.GetHtmlBytes(ctx, link)
	if err != nil {
		return models.RawFields{}, err
	}
	return ParsePage(link, page.Body)
}

// Window applies a start offset and a limit to links.
func Window(links []string, start, limit int) []string {
	if start >= len(links) {
		return nil
	}
	if start > 0 {
		links = links[start:]
	}
	if limit > 0 && limit < len(links) {
		links = links[:limit]
	}
	return links
}

// StaticSource serves a fixed list of links through another Source's Read.
// It backs runs over explicit --urls.
type StaticSource struct {
	Source
	URLs []string
}

// Links returns the fixed list.
func (s StaticSource) Links(context.Context) ([]string, error) {
	return s.URLs, nil
}
