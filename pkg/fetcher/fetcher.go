// Package fetcher downloads catalog pages with retries, a request rate limit
// and an optional on-disk page cache.
package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/dtnitsch/geosat-report/pkg/caching"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Options configures a Fetcher. Zero values fall back to sane defaults,
// except RequestsPerSec where zero disables the limiter.
type Options struct {
	Timeout        time.Duration
	RetryCount     int
	RetryWait      time.Duration
	RequestsPerSec float64
	UserAgent      string
	Cache          *caching.Cache
	Logger         *slog.Logger
}

// StatusError is returned when the catalog answers with anything but 200.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch %s, status code: %d", e.URL, e.StatusCode)
}

// Page is a fetched page body.
type Page struct {
	URL        string
	Body       []byte
	StatusCode int
	Cached     bool
}

// Fetcher is the HTTP session shared by every page read of a run.
type Fetcher struct {
	client *resty.Client
	cache  *caching.Cache
	logger *slog.Logger
}

// NewFetcher builds a Fetcher from opts.
func NewFetcher(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetRetryCount(opts.RetryCount)
	client.SetRetryWaitTime(opts.RetryWait)
	client.SetRetryMaxWaitTime(4 * opts.RetryWait)
	client.AddRetryCondition(func(r *resty.Response, err error) bool {
		return err != nil || (r != nil && r.StatusCode() >= http.StatusInternalServerError)
	})

	if opts.RequestsPerSec > 0 {
		burst := int(math.Ceil(opts.RequestsPerSec))
		limiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSec), burst)
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}

	return &Fetcher{client: client, cache: opts.Cache, logger: opts.Logger}
}

// GetHtmlBytes returns the body of url, from the cache when it is fresh.
func (f *Fetcher) GetHtmlBytes(ctx context.Context, url string) (*Page, error) {
	if body, ok := f.cache.Get(url); ok {
		return &Page{URL: url, Body: body, StatusCode: http.StatusOK, Cached: true}, nil
	}

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode()}
	}

	body := resp.Body()
	if err := f.cache.Set(url, body); err != nil {
		f.logger.Warn("Failed to cache page", "url", url, "error", err)
	}
	return &Page{URL: url, Body: body, StatusCode: resp.StatusCode()}, nil
}
