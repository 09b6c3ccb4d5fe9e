// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract parses EFetch PubmedArticleSet XML into article records
// and keeps the articles that have at least one author affiliated with a
// company (pharmaceutical, biotech and similar).
package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pdiddy/get-papers-list/internal/logger"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Result holds the kept records and per-article counts.
type Result struct {
	// Papers are the articles with at least one non-academic author, in
	// document order.
	Papers []types.ArticleRecord

	// Processed is the number of PubmedArticle elements examined.
	Processed int

	// Skipped counts articles with no non-academic author.
	Skipped int

	// Failed counts articles that could not be parsed.
	Failed int
}

// HasFailures reports whether any article failed to parse.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

var (
	errNoCitation = errors.New("missing MedlineCitation")
	errNoPMID     = errors.New("missing PMID")
	errNoArticle  = errors.New("missing Article")
)

// Extract decodes data and returns the articles with at least one author
// whose affiliation matches m. A nil m uses DefaultKeywords. A document
// that is not valid XML is an error; a malformed article is logged at
// debug, counted in Failed, and skipped.
func Extract(data []byte, m *Matcher, log *slog.Logger) (Result, error) {
	log = logger.OrDiscard(log)
	if m == nil {
		m = DefaultMatcher()
	}

	log.Debug("starting XML parsing", "bytes", len(data))

	var set pubmedArticleSet
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&set); err != nil {
		return Result{}, fmt.Errorf("parsing PubMed XML: %w", err)
	}

	articles := toSequence(&set, func(s *pubmedArticleSet) []pubmedArticle { return s.Articles })
	log.Debug("articles to process", "count", len(articles))

	var res Result
	for i, pa := range articles {
		res.Processed++

		rec, ok, err := parseArticle(pa, m)
		if err != nil {
			res.Failed++
			log.Debug("error processing article", "index", i, "error", err)
			continue
		}
		if !ok {
			res.Skipped++
			continue
		}

		res.Papers = append(res.Papers, rec)
		log.Debug("added paper", "pmid", rec.PMID, "non_academic_authors", len(rec.AuthorList()))
	}

	log.Debug("extraction done",
		"papers", len(res.Papers),
		"skipped", res.Skipped,
		"failed", res.Failed)
	return res, nil
}

// parseArticle converts one PubmedArticle. ok is false when the article
// parsed cleanly but no author matched.
func parseArticle(pa pubmedArticle, m *Matcher) (rec types.ArticleRecord, ok bool, err error) {
	mc := pa.MedlineCitation
	if mc == nil {
		return rec, false, errNoCitation
	}
	if mc.PMID == nil || strings.TrimSpace(mc.PMID.Value) == "" {
		return rec, false, errNoPMID
	}
	if mc.Article == nil {
		return rec, false, errNoArticle
	}
	id := strings.TrimSpace(mc.PMID.Value)
	art := mc.Article

	date, err := publicationDate(art)
	if err != nil {
		return rec, false, fmt.Errorf("PMID %s: %w", id, err)
	}

	var nonAcademic []string
	for _, a := range authors(art) {
		if aff, found := m.FirstMatch(a.Affiliations); found {
			nonAcademic = append(nonAcademic, formatAuthor(a.Name(), aff))
		}
	}
	if len(nonAcademic) == 0 {
		return rec, false, nil
	}

	title, present := mixed(art.ArticleTitle)
	if !present {
		title = types.NoTitle
	}

	return types.ArticleRecord{
		PMID:               id,
		Title:              title,
		PublicationDate:    date,
		NonAcademicAuthors: strings.Join(nonAcademic, types.AuthorSeparator),
		CorrespondingEmail: types.EmailNotAvailable,
	}, true, nil
}

// publicationDate prefers PubDate/Year, then the first token of
// PubDate/MedlineDate (e.g. "2020" from "2020 Jan-Feb"), then UnknownDate.
// A MedlineDate element with no content is an error.
func publicationDate(art *pubmedArticleBody) (string, error) {
	var pd *pubDate
	if art.Journal != nil && art.Journal.JournalIssue != nil {
		pd = art.Journal.JournalIssue.PubDate
	}
	if pd == nil {
		return types.UnknownDate, nil
	}
	if year, ok := text(pd.Year); ok {
		return year, nil
	}
	if pd.MedlineDate != nil {
		fields := strings.Fields(*pd.MedlineDate)
		if len(fields) == 0 {
			return "", errors.New("empty MedlineDate")
		}
		return fields[0], nil
	}
	return types.UnknownDate, nil
}

// authors returns the article's authors with their affiliation strings.
// An absent AuthorList yields none. An AffiliationInfo without an
// Affiliation contributes an empty string, which never matches.
func authors(art *pubmedArticleBody) []types.AuthorRecord {
	list := toSequence(art.AuthorList, func(l *authorList) []author { return l.Authors })

	out := make([]types.AuthorRecord, 0, len(list))
	for i := range list {
		a := &list[i]
		rec := types.AuthorRecord{}
		rec.ForeName, _ = text(a.ForeName)
		rec.LastName, _ = text(a.LastName)
		rec.CollectiveName, _ = mixed(a.CollectiveName)

		for _, info := range a.AffiliationInfo {
			aff, _ := mixed(info.Affiliation)
			rec.Affiliations = append(rec.Affiliations, aff)
		}
		out = append(out, rec)
	}
	return out
}

// formatAuthor renders "name (affiliation)". A nameless author renders as
// "(affiliation)".
func formatAuthor(name, affiliation string) string {
	return strings.TrimSpace(name + " (" + affiliation + ")")
}
