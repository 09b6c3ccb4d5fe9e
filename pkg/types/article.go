// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

const (
	// NoTitle is used when an article carries no ArticleTitle.
	NoTitle = "No Title"

	// UnknownDate is used when neither a Year nor a MedlineDate is present.
	UnknownDate = "Unknown Date"

	// EmailNotAvailable fills the corresponding-author email column. No
	// source field populates it.
	EmailNotAvailable = "Not Available"

	// AuthorSeparator joins the formatted non-academic authors of one article.
	AuthorSeparator = "; "
)

// AuthorRecord is one author of an article as seen by the extractor.
type AuthorRecord struct {
	ForeName       string
	LastName       string
	CollectiveName string
	Affiliations   []string
}

// Name returns "ForeName LastName" with surrounding whitespace removed.
// Either part may be empty. Group authors fall back to CollectiveName.
func (a AuthorRecord) Name() string {
	name := strings.TrimSpace(a.ForeName + " " + a.LastName)
	if name == "" {
		return strings.TrimSpace(a.CollectiveName)
	}
	return name
}

// ArticleRecord is one reported paper: an article with at least one author
// affiliated with a company.
type ArticleRecord struct {
	// PMID is the PubMed identifier.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title, or NoTitle.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is a year, the leading token of a MedlineDate
	// (e.g. "2020" from "2020 Jan-Feb"), or UnknownDate.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists "name (affiliation)" entries joined by AuthorSeparator.
	NonAcademicAuthors string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CorrespondingEmail is always EmailNotAvailable.
	CorrespondingEmail string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}

// CSVHeader is the column header row of the tabular report.
var CSVHeader = []string{
	"PMID",
	"Title",
	"Publication Date",
	"Non-Academic Authors",
	"Corresponding Author Email",
}

// CSVRow returns the record's fields in CSVHeader order.
func (r ArticleRecord) CSVRow() []string {
	return []string{r.PMID, r.Title, r.PublicationDate, r.NonAcademicAuthors, r.CorrespondingEmail}
}

// AuthorList splits NonAcademicAuthors back into its entries.
func (r ArticleRecord) AuthorList() []string {
	if r.NonAcademicAuthors == "" {
		return nil
	}
	return strings.Split(r.NonAcademicAuthors, AuthorSeparator)
}
