// Package scrape implements the scrape command: read every catalog entry,
// derive its record, store the run and write the xlsx report.
package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dtnitsch/geosat-report/internal/common"
	"github.com/dtnitsch/geosat-report/models"
	"github.com/dtnitsch/geosat-report/pkg/caching"
	"github.com/dtnitsch/geosat-report/pkg/catalog"
	"github.com/dtnitsch/geosat-report/pkg/db"
	"github.com/dtnitsch/geosat-report/pkg/derive"
	"github.com/dtnitsch/geosat-report/pkg/fetcher"
	"github.com/dtnitsch/geosat-report/pkg/report"
	"github.com/urfave/cli/v2"
)

func ScrapeAction(c *cli.Context) error {
	logger := common.NewLogger(os.Stderr, c.Bool("quiet"), c.Bool("verbose"))

	cfg, err := ConfigFromFlags(c)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return cli.Exit("", 2)
	}

	var cache *caching.Cache
	if cfg.CacheDir != "" {
		cache, err = caching.NewCache(cfg.CacheDir, cfg.CacheMaxAge)
		if err != nil {
			logger.Error("failed to initialize page cache", "error", err)
			return cli.Exit("", 2)
		}
		logger.Debug("Page cache ready", "dir", cache.Dir(), "max_age", cfg.CacheMaxAge)
	}

	f := fetcher.NewFetcher(fetcher.Options{
		Timeout:        cfg.Timeout,
		RetryCount:     cfg.RetryCount,
		RetryWait:      cfg.RetryWait,
		RequestsPerSec: cfg.RequestsPerSec,
		UserAgent:      cfg.UserAgent,
		Cache:          cache,
		Logger:         logger,
	})

	src, err := newSource(logger, cfg, catalog.New(f, cfg.SearchURL, cfg.StartIndex, cfg.Limit))
	if err != nil {
		logger.Error("no links to read", "error", err)
		return cli.Exit("", 2)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return cli.Exit("", 2)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := Scrape(ctx, logger, cfg, src, derive.NewDeriver(), database)
	if err != nil {
		logger.Error("scrape failed", "error", err)
		return cli.Exit("", 2)
	}

	if err := printOutput(os.Stdout, c.String("format"), out); err != nil {
		logger.Error("failed to print summary", "error", err)
		return cli.Exit("", 2)
	}

	if code := ExitCode(out); code != 0 {
		return cli.Exit(fmt.Sprintf("%d of %d links failed", out.Stats.TotalLinks-out.Stats.Successful, out.Stats.TotalLinks), code)
	}
	return nil
}

// Scrape runs one full collection over src: it lists the links, reads and
// derives them, stores the run in database and writes the workbook.
// The returned error is fatal; per-link failures are reported in the output.
func Scrape(ctx context.Context, logger *slog.Logger, cfg *models.ScrapeConfig, src catalog.Source, deriver *derive.Deriver, database *db.DB) (*FinalOutput, error) {
	startTime := time.Now()

	links, err := src.Links(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog links: %w", err)
	}
	if len(links) == 0 {
		return nil, fmt.Errorf("no catalog links found at %s", cfg.SearchURL)
	}
	logger.Info("Catalog links resolved", "link_count", len(links), "start_index", cfg.StartIndex, "limit", cfg.Limit)

	searchURL := cfg.SearchURL
	if len(cfg.URLs) > 0 {
		searchURL = strings.Join(links, ",")
	}
	runID, err := database.CreateRun(searchURL)
	if err != nil {
		return nil, err
	}

	results := run(ctx, logger, src, deriver, links, cfg.WorkerCount)

	for _, r := range results {
		if err := database.RecordAccess(runID, toAccess(r)); err != nil {
			logger.Warn("Failed to record page access", "link", r.Link, "error", err)
		}
	}

	records := Records(results)
	if err := database.InsertRecords(runID, records); err != nil {
		return nil, err
	}

	reportPath := ""
	if len(records) > 0 {
		if err := report.WriteWorkbook(cfg.ReportPath, records); err != nil {
			return nil, err
		}
		reportPath = cfg.ReportPath
		logger.Info("Report written", "path", reportPath, "records", len(records))
	}

	out := BuildOutput(searchURL, len(links), results, time.Since(startTime))
	out.RunID = runID
	out.ReportPath = reportPath

	if err := database.FinishRun(runID, len(links), out.Stats.Successful, out.Stats.Failed, reportPath); err != nil {
		return nil, err
	}
	return out, nil
}

// newSource returns c, or a source over the explicit URLs of cfg when set.
// Explicit URLs are sanitised and de-duplicated before the window applies.
func newSource(logger *slog.Logger, cfg *models.ScrapeConfig, c *catalog.Catalog) (catalog.Source, error) {
	if len(cfg.URLs) == 0 {
		return c, nil
	}
	valid, invalid := common.SanitizeAndValidateURLs(cfg.URLs)
	for _, u := range invalid {
		logger.Warn("Skipping invalid URL", "url", u)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("no valid URLs given")
	}
	return catalog.StaticSource{Source: c, URLs: catalog.Window(valid, cfg.StartIndex, cfg.Limit)}, nil
}

func printOutput(w io.Writer, format string, out *FinalOutput) error {
	data, err := report.Marshal(format, out)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
