package scrape

import (
	"strings"

	"github.com/dtnitsch/geosat-report/models"
	"github.com/urfave/cli/v2"
)

// Flags are the scrape command flags. Each overrides the matching key of
// the --config file.
var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:  "search-url",
		Usage: "catalog search page listing the satellites",
		Value: models.DefaultSearchURL,
	},
	&cli.StringFlag{
		Name:  "urls",
		Usage: "comma-separated satellite pages to read instead of the search page",
	},
	&cli.IntFlag{
		Name:  "start-index",
		Usage: "number of leading catalog entries to skip",
	},
	&cli.IntFlag{
		Name:  "limit",
		Usage: "maximum number of catalog entries to read (0 = all)",
	},
	&cli.IntFlag{
		Name:  "workers",
		Usage: "number of concurrent page readers",
		Value: models.DefaultWorkerCount,
	},
	&cli.DurationFlag{
		Name:  "timeout",
		Usage: "per-request timeout",
		Value: models.DefaultTimeout,
	},
	&cli.IntFlag{
		Name:  "retries",
		Usage: "retries on network errors and 5xx answers",
		Value: models.DefaultRetryCount,
	},
	&cli.DurationFlag{
		Name:  "retry-wait",
		Usage: "initial wait between retries",
		Value: models.DefaultRetryWait,
	},
	&cli.Float64Flag{
		Name:  "rate",
		Usage: "maximum requests per second (0 = unlimited)",
		Value: models.DefaultRequestsPerSec,
	},
	&cli.StringFlag{
		Name:  "user-agent",
		Usage: "User-Agent header sent with every request",
	},
	&cli.StringFlag{
		Name:  "cache-dir",
		Usage: "directory for cached catalog pages",
		Value: models.DefaultCacheDir,
	},
	&cli.DurationFlag{
		Name:  "max-age",
		Usage: "maximum age of a cached page before it is fetched again",
		Value: models.DefaultCacheMaxAge,
	},
	&cli.BoolFlag{
		Name:  "force-fetch",
		Usage: "ignore cached pages",
	},
	&cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "path of the xlsx report",
		Value:   models.DefaultReportPath,
	},
}

// ConfigFromFlags loads --config when given and applies every flag the user set.
func ConfigFromFlags(c *cli.Context) (*models.ScrapeConfig, error) {
	cfg := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("search-url") {
		cfg.SearchURL = c.String("search-url")
	}
	if c.IsSet("urls") {
		cfg.URLs = splitURLs(c.String("urls"))
	}
	if c.IsSet("start-index") {
		cfg.StartIndex = c.Int("start-index")
	}
	if c.IsSet("limit") {
		cfg.Limit = c.Int("limit")
	}
	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("retries") {
		cfg.RetryCount = c.Int("retries")
	}
	if c.IsSet("retry-wait") {
		cfg.RetryWait = c.Duration("retry-wait")
	}
	if c.IsSet("rate") {
		cfg.RequestsPerSec = c.Float64("rate")
	}
	if c.IsSet("user-agent") {
		cfg.UserAgent = c.String("user-agent")
	}
	if c.IsSet("cache-dir") {
		cfg.CacheDir = c.String("cache-dir")
	}
	if c.IsSet("max-age") {
		cfg.CacheMaxAge = c.Duration("max-age")
	}
	if c.Bool("force-fetch") {
		cfg.CacheMaxAge = 0
	}
	if c.IsSet("output") {
		cfg.ReportPath = c.String("output")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitURLs(s string) []string {
	var urls []string
	for _, u := range strings.Split(s, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
