// Package report renders satellite records as an xlsx workbook, a terminal
// table or a yaml/json document.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dtnitsch/geosat-report/models"
	"gopkg.in/yaml.v3"
)

// Columns is the header row shared by both workbook sheets.
var Columns = []string{
	"Link",
	"Satellite name",
	"Mission Type",
	"Background",
	"Photo description",
	"M.S.D (Mission Status Details)",
	"Launch Date",
	"End of life",
	"Orbit type",
	"Class type",
	"P.P.C (Potential Product Candidate)",
}

// Row returns the cells of rec in Columns order.
func Row(rec models.SatelliteRecord) []string {
	return []string{
		rec.Link,
		rec.Name,
		rec.MissionType,
		rec.BackgroundSummary,
		rec.ImageURL,
		string(rec.MissionStatus),
		rec.LaunchDate,
		rec.EndOfLife,
		rec.OrbitType,
		string(rec.SizeClass),
		rec.ProductCandidates,
	}
}

// Revised keeps the large, live geostationary satellites: not cancelled in
// status, launch date or end of life, a GEO orbit and Class A.
func Revised(records []models.SatelliteRecord) []models.SatelliteRecord {
	out := make([]models.SatelliteRecord, 0, len(records))
	for _, rec := range records {
		if rec.MissionStatus == models.StatusCancelled {
			continue
		}
		if strings.Contains(rec.LaunchDate, models.Cancelled) || strings.Contains(rec.EndOfLife, models.Cancelled) {
			continue
		}
		if !strings.Contains(rec.OrbitType, "GEO") {
			continue
		}
		if rec.SizeClass != models.ClassA {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Marshal encodes v as "yaml" or "json".
func Marshal(format string, v interface{}) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return data, nil
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (use: yaml or json)", format)
	}
}
