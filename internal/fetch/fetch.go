// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves full PubMed records for a list of PMIDs in one
// EFetch round trip and hands back the raw XML.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/internal/logger"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

const efetchEndpoint = "efetch.fcgi"

// Fetcher issues EFetch requests.
type Fetcher struct {
	Client *http.Client
	Config types.PubMedConfig
	Log    *slog.Logger
}

// New returns a Fetcher with cfg defaults applied.
func New(client *http.Client, cfg types.PubMedConfig, log *slog.Logger) *Fetcher {
	return &Fetcher{Client: client, Config: cfg.WithDefaults(), Log: logger.OrDiscard(log)}
}

// Fetch returns the PubmedArticleSet XML for ids. With no ids it returns
// nil and makes no request. All ids go into a single comma-joined id
// parameter, so very long lists produce very long URLs.
func (f *Fetcher) Fetch(ctx context.Context, ids []string) ([]byte, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cfg := f.Config.WithDefaults()
	log := logger.OrDiscard(f.Log)

	log.Debug("fetching details", "pmids", len(ids))

	reqURL := httputil.BuildURL(cfg.BaseURL, efetchEndpoint, Params(cfg, ids))
	log.Debug("pubmed fetch url", "url", reqURL)

	body, err := httputil.Get(ctx, f.Client, reqURL, cfg.UserAgent)
	if err != nil {
		log.Debug("pubmed fetch failed", "status", httputil.StatusCode(err))
		return nil, fmt.Errorf("PubMed fetch request: %w", err)
	}
	log.Debug("pubmed fetch done", "status", http.StatusOK, "bytes", len(body))
	return body, nil
}

// Params builds the EFetch query parameters for ids.
func Params(cfg types.PubMedConfig, ids []string) url.Values {
	cfg = cfg.WithDefaults()
	params := url.Values{
		"db":      {cfg.Database},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
	}
	cfg.AddContact(params)
	return params
}
