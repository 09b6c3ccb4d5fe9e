package types

import (
	"net/url"
	"time"
)

// DefaultBaseURL is the NCBI E-utilities root. Endpoint names are appended to it.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/"

// PubMedDatabase is the E-utilities database searched and fetched.
const PubMedDatabase = "pubmed"

// DefaultMaxResults is the retmax sent when none is configured.
const DefaultMaxResults = 100

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the client default (none).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers-list/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings shared by the search and fetch stages.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the E-utilities root, ending in a slash.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Database is the E-utilities db parameter (default "pubmed").
	Database string `json:"database" yaml:"database"`

	// Tool and Email identify the caller to NCBI. Both are optional and sent
	// only when set.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// WithDefaults fills unset fields.
func (c PubMedConfig) WithDefaults() PubMedConfig {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Database == "" {
		c.Database = PubMedDatabase
	}
	return c
}

// AddContact sets the optional tool and email parameters NCBI asks callers
// to identify themselves with.
func (c PubMedConfig) AddContact(params url.Values) {
	if c.Tool != "" {
		params.Set("tool", c.Tool)
	}
	if c.Email != "" {
		params.Set("email", c.Email)
	}
}

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	// Keywords is the ordered set of affiliation keywords that mark an
	// author as non-academic. Empty means the built-in list.
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// OutputFormat selects the console rendering.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// ReportConfig holds settings for the report stage.
type ReportConfig struct {
	// File is the CSV destination. Empty prints to the console.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Format selects the console rendering when File is empty.
	Format OutputFormat `json:"format" yaml:"format"`
}

// PipelineConfig groups all stage configurations for one run.
type PipelineConfig struct {
	PubMed     PubMedConfig     `json:"pubmed" yaml:"pubmed"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Report     ReportConfig     `json:"report" yaml:"report"`
}
