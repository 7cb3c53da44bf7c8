package scrape

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sort"
	"sync"

	"github.com/dtnitsch/geosat-report/pkg/catalog"
	"github.com/dtnitsch/geosat-report/pkg/derive"
	"github.com/dtnitsch/geosat-report/pkg/fetcher"
)

// run reads and derives every link with workerCount workers. Results come
// back in catalog order whatever the worker count. Once ctx is done no new
// jobs are dispatched; links never dispatched produce no result.
func run(ctx context.Context, logger *slog.Logger, src catalog.Source, deriver *derive.Deriver, links []string, workerCount int) []Result {
	if workerCount < 1 {
		workerCount = 1
	}

	logger.Info("Starting scrape phase", "link_count", len(links), "workers", workerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job)
	results := make(chan Result, len(links))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, src, deriver, &wg, jobs, results)
	}

	for i, link := range links {
		if ctx.Err() != nil {
			logger.Warn("Scrape interrupted, no further links dispatched", "dispatched", i, "remaining", len(links)-i)
			break
		}
		select {
		case <-ctx.Done():
		case jobs <- Job{Position: i, Link: link}:
		}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All scrape workers finished")

	allResults := make([]Result, 0, len(links))
	for result := range results {
		allResults = append(allResults, result)
	}
	sort.Slice(allResults, func(i, j int) bool {
		return allResults[i].Position < allResults[j].Position
	})
	return allResults
}

func worker(ctx context.Context, id int, logger *slog.Logger, src catalog.Source, deriver *derive.Deriver, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Debug("Worker started job", "worker_id", id, "position", job.Position, "link", job.Link)
		result := Result{Job: job}

		raw, err := src.Read(ctx, job.Link)
		if err != nil {
			result.Error = err
			result.ErrorType, result.StatusCode = classifyError(err)
			logger.Error("Error reading catalog page", "worker_id", id, "link", job.Link, "error_type", result.ErrorType, "error", err)
			results <- result
			continue
		}

		result.StatusCode = http.StatusOK
		result.Record = deriver.Derive(raw)
		result.Record.Position = job.Position
		results <- result
		logger.Info("Processed link", "worker_id", id, "position", job.Position+1, "link", job.Link,
			"name", result.Record.Name, "status", result.Record.MissionStatus,
			"class", result.Record.SizeClass, "ppc", result.Record.ProductCandidates)
	}
}

// classifyError maps a read error to the error type stored with the page access.
func classifyError(err error) (string, int) {
	var statusErr *fetcher.StatusError
	var netErr net.Error
	switch {
	case errors.As(err, &statusErr):
		return "http_error", statusErr.StatusCode
	case errors.Is(err, catalog.ErrMissingField):
		return "missing_field", http.StatusOK
	case errors.Is(err, context.Canceled):
		return "cancelled", 0
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return "timeout", 0
	default:
		return "fetch_error", 0
	}
}
