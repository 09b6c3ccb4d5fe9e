// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/xml"
	"strings"
)

// EFetch PubmedArticleSet XML structures. Only the fields the report needs
// are modelled. Optional nodes are pointers so absence is distinguishable
// from an empty value.
type pubmedArticleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	MedlineCitation *medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    *pmid              `xml:"PMID"`
	Article *pubmedArticleBody `xml:"Article"`
}

type pmid struct {
	Value   string `xml:",chardata"`
	Version string `xml:"Version,attr"`
}

type pubmedArticleBody struct {
	ArticleTitle *mixedText  `xml:"ArticleTitle"`
	Journal      *journal    `xml:"Journal"`
	AuthorList   *authorList `xml:"AuthorList"`
}

type journal struct {
	JournalIssue *journalIssue `xml:"JournalIssue"`
}

type journalIssue struct {
	PubDate *pubDate `xml:"PubDate"`
}

type pubDate struct {
	Year        *string `xml:"Year"`
	Month       *string `xml:"Month"`
	MedlineDate *string `xml:"MedlineDate"`
}

type authorList struct {
	Authors []author `xml:"Author"`
}

type author struct {
	LastName        *string           `xml:"LastName"`
	ForeName        *string           `xml:"ForeName"`
	CollectiveName  *mixedText        `xml:"CollectiveName"`
	AffiliationInfo []affiliationInfo `xml:"AffiliationInfo"`
}

type affiliationInfo struct {
	Affiliation *mixedText `xml:"Affiliation"`
}

// mixedText collects all character data inside an element, including text
// nested in inline markup such as <i>, <sup> or <b>.
type mixedText struct {
	Text string
}

// UnmarshalXML implements xml.Unmarshaler.
func (m *mixedText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				m.Text = b.String()
				return nil
			}
			depth--
		}
	}
}

// toSequence returns the elements of an optional collection node. An absent
// node yields an empty sequence; a node holding one element yields a
// one-element sequence, never a bare element.
func toSequence[N, E any](node *N, elems func(*N) []E) []E {
	if node == nil {
		return nil
	}
	return elems(node)
}

// text returns the trimmed value of an optional element and whether it
// was present with non-blank content.
func text(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}

// mixed is text for a mixedText node.
func mixed(m *mixedText) (string, bool) {
	if m == nil {
		return "", false
	}
	return text(&m.Text)
}
