// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries PubMed through the E-utilities ESearch endpoint and
// returns the matching record identifiers (PMIDs), most recent first.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/internal/logger"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

const esearchEndpoint = "esearch.fcgi"

// Searcher issues ESearch requests.
type Searcher struct {
	Client *http.Client
	Config types.PubMedConfig
	Log    *slog.Logger
}

// New returns a Searcher with cfg defaults applied.
func New(client *http.Client, cfg types.PubMedConfig, log *slog.Logger) *Searcher {
	return &Searcher{Client: client, Config: cfg.WithDefaults(), Log: logger.OrDiscard(log)}
}

// Search runs q and returns the PMIDs in the order PubMed lists them. The
// list may be empty. A non-200 response yields a *httputil.StatusError;
// nothing is retried.
func (s *Searcher) Search(ctx context.Context, q types.SearchQuery) ([]string, error) {
	if strings.TrimSpace(q.Term) == "" {
		return nil, fmt.Errorf("query is empty: provide a search term")
	}

	cfg := s.Config.WithDefaults()
	log := logger.OrDiscard(s.Log)

	params := Params(cfg, q)
	log.Debug("sending search request", "params", params.Encode())

	reqURL := httputil.BuildURL(cfg.BaseURL, esearchEndpoint, params)
	log.Debug("pubmed search url", "url", reqURL)

	body, err := httputil.Get(ctx, s.Client, reqURL, cfg.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("PubMed search request: %w", err)
	}

	var er esearchResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return nil, fmt.Errorf("parsing PubMed search response: %w", err)
	}
	if er.Result.Error != "" {
		log.Warn("pubmed search reported an error", "error", er.Result.Error)
	}

	total, _ := strconv.Atoi(er.Result.Count)
	log.Debug("pubmed search done",
		"pmids", len(er.Result.IDList),
		"total_matches", total,
		"translation", er.Result.QueryTranslation)

	if er.Result.IDList == nil {
		return []string{}, nil
	}
	return er.Result.IDList, nil
}

// Params builds the ESearch query parameters for q.
func Params(cfg types.PubMedConfig, q types.SearchQuery) url.Values {
	cfg = cfg.WithDefaults()

	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = types.DefaultMaxResults
	}
	sort := q.Sort
	if sort == "" {
		sort = types.SortByDate
	}

	params := url.Values{
		"db":      {cfg.Database},
		"term":    {q.Term},
		"retmax":  {strconv.Itoa(maxResults)},
		"retmode": {"json"},
		"sort":    {sort},
	}
	cfg.AddContact(params)
	return params
}

// ESearch JSON structures (retmode=json).
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count            string   `json:"count"`
	RetMax           string   `json:"retmax"`
	RetStart         string   `json:"retstart"`
	IDList           []string `json:"idlist"`
	QueryTranslation string   `json:"querytranslation"`
	Error            string   `json:"ERROR"`
}
