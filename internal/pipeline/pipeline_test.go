// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers-list/internal/extract"
	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/internal/report"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// --- mock stages ---

type mockSearcher struct {
	ids   []string
	err   error
	calls int
}

func (m *mockSearcher) Search(_ context.Context, _ types.SearchQuery) ([]string, error) {
	m.calls++
	return m.ids, m.err
}

type mockFetcher struct {
	data  []byte
	err   error
	calls int
	got   []string
}

func (m *mockFetcher) Fetch(_ context.Context, ids []string) ([]byte, error) {
	m.calls++
	m.got = ids
	return m.data, m.err
}

const twoArticlesXML = `<?xml version="1.0" ?>
<PubmedArticleSet>
<PubmedArticle><MedlineCitation><PMID>100</PMID><Article>
<Journal><JournalIssue><PubDate><Year>2024</Year></PubDate></JournalIssue></Journal>
<ArticleTitle>Industry paper</ArticleTitle>
<AuthorList><Author><LastName>Roe</LastName><ForeName>Jane</ForeName>
<AffiliationInfo><Affiliation>University X</Affiliation></AffiliationInfo>
<AffiliationInfo><Affiliation>Acme Pharma Inc.</Affiliation></AffiliationInfo>
</Author></AuthorList>
</Article></MedlineCitation></PubmedArticle>
<PubmedArticle><MedlineCitation><PMID>200</PMID><Article>
<Journal><JournalIssue><PubDate><MedlineDate>2020 Jan-Feb</MedlineDate></PubDate></JournalIssue></Journal>
<ArticleTitle>Academic paper</ArticleTitle>
<AuthorList><Author><LastName>Doe</LastName><ForeName>John</ForeName>
<AffiliationInfo><Affiliation>Stanford University</Affiliation></AffiliationInfo>
</Author></AuthorList>
</Article></MedlineCitation></PubmedArticle>
</PubmedArticleSet>`

func testPipeline(s Searcher, f Fetcher, rc types.ReportConfig) *Pipeline {
	return &Pipeline{Searcher: s, Fetcher: f, Matcher: extract.DefaultMatcher(), Report: rc}
}

func TestRun_ConsoleOutput(t *testing.T) {
	s := &mockSearcher{ids: []string{"100", "200"}}
	f := &mockFetcher{data: []byte(twoArticlesXML)}

	var buf bytes.Buffer
	sum, err := testPipeline(s, f, types.ReportConfig{}).Run(context.Background(), types.NewSearchQuery("vaccine", 10), &buf)
	require.NoError(t, err)

	assert.Equal(t, Summary{PMIDs: 2, Processed: 2, Papers: 1}, sum)
	assert.Equal(t, []string{"100", "200"}, f.got)

	out := buf.String()
	assert.Contains(t, out, "Searching PubMed for: vaccine")
	assert.Contains(t, out, "Fetching article details...")
	assert.Contains(t, out, "Extracting required details...")
	assert.Contains(t, out, "PMID: 100, Title: Industry paper, Date: 2024")
	assert.Contains(t, out, "Non-Academic Authors: Jane Roe (Acme Pharma Inc.)")
	assert.Contains(t, out, "Corresponding Email: Not Available")
	assert.NotContains(t, out, "PMID: 200")
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	s := &mockSearcher{ids: []string{"100", "200"}}
	f := &mockFetcher{data: []byte(twoArticlesXML)}

	var buf bytes.Buffer
	_, err := testPipeline(s, f, types.ReportConfig{File: path}).Run(context.Background(), types.NewSearchQuery("vaccine", 10), &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Saved 1 papers with non-academic authors to "+path)

	records, err := report.ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "100", records[0].PMID)
}

func TestRun_NoQualifyingPapersWritesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	academicOnly := strings.Replace(twoArticlesXML, "Acme Pharma Inc.", "MIT", 1)
	s := &mockSearcher{ids: []string{"100", "200"}}
	f := &mockFetcher{data: []byte(academicOnly)}

	var buf bytes.Buffer
	sum, err := testPipeline(s, f, types.ReportConfig{File: path}).Run(context.Background(), types.NewSearchQuery("vaccine", 10), &buf)
	require.NoError(t, err)

	assert.Equal(t, 0, sum.Papers)
	assert.Contains(t, buf.String(), report.NoPapersMessage)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_NoSearchResultsSkipsFetch(t *testing.T) {
	s := &mockSearcher{ids: []string{}}
	f := &mockFetcher{}

	var buf bytes.Buffer
	_, err := testPipeline(s, f, types.ReportConfig{}).Run(context.Background(), types.NewSearchQuery("zzz", 10), &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No articles found.")
	assert.Equal(t, 0, f.calls)
}

func TestRun_SearchHTTPFailureIsNotFatal(t *testing.T) {
	s := &mockSearcher{err: fmt.Errorf("PubMed search request: %w", &httputil.StatusError{StatusCode: 503})}
	f := &mockFetcher{}

	var buf bytes.Buffer
	_, err := testPipeline(s, f, types.ReportConfig{}).Run(context.Background(), types.NewSearchQuery("x", 10), &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Error fetching PubMed search results: 503")
	assert.Contains(t, buf.String(), "No articles found.")
	assert.Equal(t, 0, f.calls)
}

func TestRun_SearchTransportFailureIsNotFatal(t *testing.T) {
	s := &mockSearcher{err: errors.New("dial tcp: connection refused")}

	var buf bytes.Buffer
	_, err := testPipeline(s, &mockFetcher{}, types.ReportConfig{}).Run(context.Background(), types.NewSearchQuery("x", 10), &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error fetching PubMed search results: dial tcp: connection refused")
}

func TestRun_FetchFailureIsNotFatal(t *testing.T) {
	s := &mockSearcher{ids: []string{"1"}}
	f := &mockFetcher{err: &httputil.StatusError{StatusCode: 414}}

	var buf bytes.Buffer
	_, err := testPipeline(s, f, types.ReportConfig{}).Run(context.Background(), types.NewSearchQuery("x", 10), &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Error fetching paper details: 414")
	assert.Contains(t, buf.String(), "No data retrieved.")
	assert.NotContains(t, buf.String(), "Extracting")
}

func TestRun_UndecodableXMLIsAnError(t *testing.T) {
	s := &mockSearcher{ids: []string{"1"}}
	f := &mockFetcher{data: []byte("<html>gateway timeout")}

	_, err := testPipeline(s, f, types.ReportConfig{}).Run(context.Background(), types.NewSearchQuery("x", 10), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_ReportWriteFailureIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.csv")
	s := &mockSearcher{ids: []string{"100"}}
	f := &mockFetcher{data: []byte(twoArticlesXML)}

	_, err := testPipeline(s, f, types.ReportConfig{File: path}).Run(context.Background(), types.NewSearchQuery("x", 10), &bytes.Buffer{})
	assert.Error(t, err)
}

// TestNew_EndToEnd drives the real searcher and fetcher against a fake
// E-utilities server.
func TestNew_EndToEnd(t *testing.T) {
	var searchCalls, fetchCalls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/esearch.fcgi":
			searchCalls++
			assert.Equal(t, "5", r.URL.Query().Get("retmax"))
			fmt.Fprint(w, `{"esearchresult": {"count": "2", "idlist": ["100", "200"]}}`)
		case "/efetch.fcgi":
			fetchCalls++
			assert.Equal(t, "100,200", r.URL.Query().Get("id"))
			fmt.Fprint(w, twoArticlesXML)
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	cfg := types.PipelineConfig{
		PubMed: types.PubMedConfig{BaseURL: ts.URL + "/"},
		Report: types.ReportConfig{Format: types.FormatJSON},
	}

	var buf bytes.Buffer
	sum, err := New(cfg, ts.Client(), nil).Run(context.Background(), types.NewSearchQuery("vaccine", 5), &buf)
	require.NoError(t, err)

	assert.Equal(t, 1, searchCalls)
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, 1, sum.Papers)
	assert.Contains(t, buf.String(), `"pmid": "100"`)
}

func TestNew_CustomKeywords(t *testing.T) {
	p := New(types.PipelineConfig{Extraction: types.ExtractionConfig{Keywords: []string{"Stanford"}}}, nil, nil)
	assert.Equal(t, []string{"Stanford"}, p.Matcher.Keywords())

	p = New(types.PipelineConfig{}, nil, nil)
	assert.Equal(t, extract.DefaultKeywords, p.Matcher.Keywords())
}
