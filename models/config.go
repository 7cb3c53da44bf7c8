package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor a flag sets a value.
const (
	DefaultSearchURL      = "https://space.skyrocket.de/php/search.php?search=geostationary"
	DefaultWorkerCount    = 1
	DefaultTimeout        = 10 * time.Second
	DefaultRetryCount     = 3
	DefaultRetryWait      = time.Second
	DefaultRequestsPerSec = 2.0
	DefaultCacheDir       = "geosat-cache"
	DefaultCacheMaxAge    = 24 * time.Hour
	DefaultReportPath     = "geosat_results.xlsx"
)

// ScrapeConfig holds runtime configuration for a scrape run.
// Values come from an optional YAML file and are overridden by CLI flags.
type ScrapeConfig struct {
	SearchURL      string        `yaml:"search_url"`
	URLs           []string      `yaml:"urls"`
	StartIndex     int           `yaml:"start_index"`
	Limit          int           `yaml:"limit"`
	WorkerCount    int           `yaml:"workers"`
	Timeout        time.Duration `yaml:"timeout"`
	RetryCount     int           `yaml:"retry_count"`
	RetryWait      time.Duration `yaml:"retry_wait"`
	RequestsPerSec float64       `yaml:"requests_per_second"`
	UserAgent      string        `yaml:"user_agent"`
	CacheDir       string        `yaml:"cache_dir"`
	CacheMaxAge    time.Duration `yaml:"cache_max_age"`
	ReportPath     string        `yaml:"report_path"`
	DBPath         string        `yaml:"db_path"`
}

// DefaultConfig returns a config with every default filled in.
func DefaultConfig() *ScrapeConfig {
	return &ScrapeConfig{
		SearchURL:      DefaultSearchURL,
		WorkerCount:    DefaultWorkerCount,
		Timeout:        DefaultTimeout,
		RetryCount:     DefaultRetryCount,
		RetryWait:      DefaultRetryWait,
		RequestsPerSec: DefaultRequestsPerSec,
		CacheDir:       DefaultCacheDir,
		CacheMaxAge:    DefaultCacheMaxAge,
		ReportPath:     DefaultReportPath,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*ScrapeConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no run could work with.
func (c *ScrapeConfig) Validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.WorkerCount)
	}
	if c.StartIndex < 0 {
		return fmt.Errorf("start_index must not be negative, got %d", c.StartIndex)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	if c.RetryCount < 0 {
		return fmt.Errorf("retry_count must not be negative, got %d", c.RetryCount)
	}
	if c.RequestsPerSec < 0 {
		return fmt.Errorf("requests_per_second must not be negative, got %g", c.RequestsPerSec)
	}
	if c.ReportPath == "" {
		return fmt.Errorf("report_path must be set")
	}
	return nil
}
