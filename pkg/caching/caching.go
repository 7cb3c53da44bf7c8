// Package caching keeps fetched catalog pages on disk so repeated runs do not
// hit the catalog for pages that are still fresh.
package caching

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dtnitsch/geosat-report/internal/common"
)

// Cache is a directory of page bodies keyed by URL with a freshness window.
type Cache struct {
	dir string
	ttl time.Duration
}

// NewCache creates the cache directory if needed. A ttl of zero keeps
// writing pages but never serves them, which forces a refetch.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) path(url string) string {
	return filepath.Join(c.dir, common.ContentHash([]byte(url))+".html")
}

// Get returns the cached body for url if it is younger than the TTL.
func (c *Cache) Get(url string) ([]byte, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}
	p := c.path(url)

	info, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores body for url.
func (c *Cache) Set(url string, body []byte) error {
	if c == nil {
		return nil
	}
	if err := os.WriteFile(c.path(url), body, 0600); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
