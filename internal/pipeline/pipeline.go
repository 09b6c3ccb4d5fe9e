// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs search, fetch, extraction and reporting in sequence
// for one query, printing operator messages between stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/pdiddy/get-papers-list/internal/extract"
	"github.com/pdiddy/get-papers-list/internal/fetch"
	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/internal/logger"
	"github.com/pdiddy/get-papers-list/internal/report"
	"github.com/pdiddy/get-papers-list/internal/search"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Searcher returns PMIDs for a query. *search.Searcher implements it.
type Searcher interface {
	Search(ctx context.Context, q types.SearchQuery) ([]string, error)
}

// Fetcher returns the EFetch XML for a set of PMIDs. *fetch.Fetcher implements it.
type Fetcher interface {
	Fetch(ctx context.Context, ids []string) ([]byte, error)
}

// Summary records what each stage produced.
type Summary struct {
	PMIDs     int
	Processed int
	Papers    int
	Failed    int
}

// Pipeline wires the four stages together.
type Pipeline struct {
	Searcher Searcher
	Fetcher  Fetcher
	Matcher  *extract.Matcher
	Report   types.ReportConfig
	Log      *slog.Logger
}

// New builds a pipeline that talks to PubMed through client. An empty
// keyword list in cfg selects extract.DefaultKeywords.
func New(cfg types.PipelineConfig, client *http.Client, log *slog.Logger) *Pipeline {
	log = logger.OrDiscard(log)

	keywords := cfg.Extraction.Keywords
	if len(keywords) == 0 {
		keywords = extract.DefaultKeywords
	}

	return &Pipeline{
		Searcher: search.New(client, cfg.PubMed, log),
		Fetcher:  fetch.New(client, cfg.PubMed, log),
		Matcher:  extract.NewMatcher(keywords),
		Report:   cfg.Report,
		Log:      log,
	}
}

// Run executes the pipeline for q, writing operator messages and console
// output to w. HTTP failures and empty results end the run early with a
// message and a nil error. Only an undecodable fetch response or a failed
// report write is returned as an error.
func (p *Pipeline) Run(ctx context.Context, q types.SearchQuery, w io.Writer) (Summary, error) {
	var sum Summary
	log := logger.OrDiscard(p.Log)

	fmt.Fprintf(w, "\nSearching PubMed for: %s\n", q.Term)
	ids, err := p.Searcher.Search(ctx, q)
	if err != nil {
		reportFailure(w, "Error fetching PubMed search results", err)
		log.Debug("search failed", "error", err)
	}
	sum.PMIDs = len(ids)
	if len(ids) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return sum, nil
	}

	fmt.Fprintln(w, "\nFetching article details...")
	data, err := p.Fetcher.Fetch(ctx, ids)
	if err != nil {
		reportFailure(w, "Error fetching paper details", err)
		log.Debug("fetch failed", "error", err)
	}
	if len(data) == 0 {
		fmt.Fprintln(w, "No data retrieved.")
		return sum, nil
	}

	fmt.Fprintln(w, "\nExtracting required details...")
	matcher := p.Matcher
	if matcher == nil {
		matcher = extract.DefaultMatcher()
	}
	res, err := extract.Extract(data, matcher, log)
	if err != nil {
		return sum, err
	}
	sum.Processed = res.Processed
	sum.Papers = len(res.Papers)
	sum.Failed = res.Failed

	if len(res.Papers) > 0 && p.Report.File == "" {
		fmt.Fprintln(w)
	}
	if err := report.Report(w, res.Papers, p.Report); err != nil {
		return sum, err
	}
	return sum, nil
}

// reportFailure prints the HTTP status of err when it carries one, and the
// error text otherwise.
func reportFailure(w io.Writer, prefix string, err error) {
	if code := httputil.StatusCode(err); code != 0 {
		fmt.Fprintf(w, "%s: %d\n", prefix, code)
		return
	}
	fmt.Fprintf(w, "%s: %v\n", prefix, err)
}
