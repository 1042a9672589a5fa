// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScrapeConfig holds settings for fetching and filtering the publisher's
// search page.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchURL is the publisher search endpoint, query string included.
	SearchURL string `json:"search_url" yaml:"search_url"`

	// PrimaryTerm must appear in a lowercased title for it to be relevant.
	PrimaryTerm string `json:"primary_term" yaml:"primary_term"`

	// SecondaryTerms is the vocabulary of which at least one term must also
	// appear in the title.
	SecondaryTerms []string `json:"secondary_terms" yaml:"secondary_terms"`

	// WindowDays is the trailing acceptance window for publication dates
	// (default 7). The window is inclusive on both ends and anchored to
	// midnight of the run's start day.
	WindowDays int `json:"window_days" yaml:"window_days"`

	// RequestDelay is the unconditional politeness delay before the search
	// page fetch.
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`
}

// ResolveConfig holds settings for the preprint lookup stage.
type ResolveConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIBase overrides the arXiv query endpoint. Empty means the public
	// endpoint; tests point it at an httptest server.
	APIBase string `json:"api_base,omitempty" yaml:"api_base,omitempty"`

	// RequestDelay is the unconditional politeness delay before each API call.
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`
}

// DownloadConfig holds settings for the PDF download stage.
type DownloadConfig struct {
	HTTPConfig `yaml:",inline"`

	// Dir is the directory PDFs are written to, created if missing.
	Dir string `json:"dir" yaml:"dir"`

	// RequestDelay is the unconditional politeness delay before each download.
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`
}

// ReportConfig holds settings for the plain-text report.
type ReportConfig struct {
	// OutputPath is the report file, overwritten on every run.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// PipelineConfig groups all stage configurations for one scrape run.
type PipelineConfig struct {
	Scrape   ScrapeConfig   `json:"scrape" yaml:"scrape"`
	Resolve  ResolveConfig  `json:"resolve" yaml:"resolve"`
	Download DownloadConfig `json:"download" yaml:"download"`
	Report   ReportConfig   `json:"report" yaml:"report"`
}
