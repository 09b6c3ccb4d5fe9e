// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the get-papers-list pipeline:
// the search query handed to the searcher, the article records produced by
// extraction, and the per-stage configuration.
package types

// SortByDate is the only sort order the searcher requests: most recent first.
const SortByDate = "date"

// SearchQuery holds the parameters for a single PubMed search.
type SearchQuery struct {
	// Term is the free-text query as typed by the operator (e.g. "mRNA vaccine").
	Term string `json:"term" yaml:"term"`

	// MaxResults bounds the number of identifiers returned (retmax).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Sort is the result ordering. Always SortByDate.
	Sort string `json:"sort" yaml:"sort"`
}

// NewSearchQuery returns a query for term sorted by recency.
func NewSearchQuery(term string, maxResults int) SearchQuery {
	return SearchQuery{Term: term, MaxResults: maxResults, Sort: SortByDate}
}
