package scrape

import (
	"time"

	"github.com/dtnitsch/geosat-report/models"
	"github.com/dtnitsch/geosat-report/pkg/db"
	"github.com/dtnitsch/geosat-report/pkg/mapreduce"
	"github.com/dtnitsch/geosat-report/pkg/report"
)

// Run outcomes and their exit codes.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusFailed  = "failed"
)

const topProducts = 3

// Records returns the derived records of the successful results, in order.
func Records(results []Result) []models.SatelliteRecord {
	records := make([]models.SatelliteRecord, 0, len(results))
	for _, r := range results {
		if r.Error == nil {
			records = append(records, r.Record)
		}
	}
	return records
}

// collectFailures lists the results that produced no record.
func collectFailures(results []Result) []Failure {
	var failed []Failure
	for _, r := range results {
		if r.Error == nil {
			continue
		}
		failed = append(failed, Failure{
			Position:   r.Position,
			Link:       r.Link,
			ErrorType:  r.ErrorType,
			StatusCode: r.StatusCode,
			Error:      r.Error.Error(),
		})
	}
	return failed
}

// toAccess converts a result to the page access stored for the run.
func toAccess(r Result) db.Access {
	a := db.Access{
		Link:       r.Link,
		StatusCode: r.StatusCode,
		ErrorType:  r.ErrorType,
		Success:    r.Error == nil,
	}
	if r.Error != nil {
		a.ErrorMessage = r.Error.Error()
	}
	return a
}

// BuildOutput summarises a run over linkCount links. Links never dispatched
// because of an interrupt count as neither successful nor failed.
func BuildOutput(searchURL string, linkCount int, results []Result, elapsed time.Duration) *FinalOutput {
	records := Records(results)
	out := &FinalOutput{
		SearchURL: searchURL,
		Failed:    collectFailures(results),
		Stats: Stats{
			TotalLinks:       linkCount,
			Successful:       len(records),
			Revised:          len(report.Revised(records)),
			TotalTimeSeconds: elapsed.Seconds(),
			StatusDist:       map[string]int{},
			ClassDist:        map[string]int{},
			CandidateDist:    map[string]int{},
		},
	}
	out.Stats.Failed = len(out.Failed)

	products := make([]map[string]int, 0, len(records))
	for _, rec := range records {
		out.Stats.StatusDist[string(rec.MissionStatus)]++
		out.Stats.ClassDist[string(rec.SizeClass)]++
		out.Stats.CandidateDist[rec.ProductCandidates]++
		products = append(products, mapreduce.Map(rec))
	}
	out.Stats.TopProducts = mapreduce.TopN(mapreduce.Reduce(products), topProducts)

	switch {
	case out.Stats.Successful == 0:
		out.Status = StatusFailed
	case out.Stats.Successful < linkCount:
		out.Status = StatusPartial
	default:
		out.Status = StatusSuccess
	}
	return out
}

// ExitCode is 0 when every link produced a record, 1 when some did and 2
// when none did.
func ExitCode(out *FinalOutput) int {
	switch out.Status {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	default:
		return 2
	}
}
