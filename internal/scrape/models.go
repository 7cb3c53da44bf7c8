package scrape

import (
	"github.com/dtnitsch/geosat-report/models"
)

// Job is one catalog link and its position in the catalog listing.
type Job struct {
	Position int
	Link     string
}

// Result holds the outcome of a processed job.
type Result struct {
	Job
	Record     models.SatelliteRecord
	Error      error
	ErrorType  string
	StatusCode int
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status     string    `json:"status" yaml:"status"`
	RunID      int64     `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	SearchURL  string    `json:"search_url" yaml:"search_url"`
	ReportPath string    `json:"report_path,omitempty" yaml:"report_path,omitempty"`
	Stats      Stats     `json:"stats" yaml:"stats"`
	Failed     []Failure `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalLinks       int            `json:"total_links" yaml:"total_links"`
	Successful       int            `json:"successful" yaml:"successful"`
	Failed           int            `json:"failed" yaml:"failed"`
	Revised          int            `json:"revised" yaml:"revised"`
	TotalTimeSeconds float64        `json:"total_time_seconds" yaml:"total_time_seconds"`
	StatusDist       map[string]int `json:"status_distribution,omitempty" yaml:"status_distribution,omitempty"`
	ClassDist        map[string]int `json:"class_distribution,omitempty" yaml:"class_distribution,omitempty"`
	CandidateDist    map[string]int `json:"candidate_distribution,omitempty" yaml:"candidate_distribution,omitempty"`
	TopProducts      []string       `json:"top_products,omitempty" yaml:"top_products,omitempty"`
}

// Failure is a link that produced no record.
type Failure struct {
	Position   int    `json:"position" yaml:"position"`
	Link       string `json:"link" yaml:"link"`
	ErrorType  string `json:"error_type" yaml:"error_type"`
	StatusCode int    `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Error      string `json:"error" yaml:"error"`
}
