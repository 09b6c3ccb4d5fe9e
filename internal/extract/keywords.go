// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// DefaultKeywords marks an affiliation as industry rather than academic.
// Matching is a case-insensitive substring test, so short entries such as
// "Pharma" or "Inc." also hit longer words that contain them.
var DefaultKeywords = []string{
	"Pharmaceutical",
	"Biotech",
	"Biotechnology",
	"Therapeutics",
	"Pharma",
	"BioPharma",
	"Life Sciences",
	"Biosciences",
	"Drug Development",
	"Medicines",
	"Inc.",
	"Ltd.",
	"Corp.",
	"GmbH",
	"S.A.",
	"S.p.A.",
	"LLC",
}

// Matcher tests affiliation strings against an ordered keyword set.
type Matcher struct {
	keywords []string
	lowered  []string
}

// NewMatcher returns a Matcher for keywords in the given order. Blank
// entries and case-insensitive duplicates are dropped; a blank keyword
// would otherwise match every affiliation. Surrounding spaces are kept, so
// " AG " only matches AG as a separate word.
func NewMatcher(keywords []string) *Matcher {
	m := &Matcher{}
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		low := strings.ToLower(kw)
		if seen[low] {
			continue
		}
		seen[low] = true
		m.keywords = append(m.keywords, kw)
		m.lowered = append(m.lowered, low)
	}
	return m
}

// DefaultMatcher returns a Matcher over DefaultKeywords.
func DefaultMatcher() *Matcher {
	return NewMatcher(DefaultKeywords)
}

// Keywords returns the active keywords in match order.
func (m *Matcher) Keywords() []string {
	out := make([]string, len(m.keywords))
	copy(out, m.keywords)
	return out
}

// Match reports the first keyword contained in affiliation, ignoring case.
func (m *Matcher) Match(affiliation string) (string, bool) {
	if affiliation == "" {
		return "", false
	}
	low := strings.ToLower(affiliation)
	for i, kw := range m.lowered {
		if strings.Contains(low, kw) {
			return m.keywords[i], true
		}
	}
	return "", false
}

// FirstMatch returns the first affiliation that matches any keyword.
// Affiliations after it are not examined.
func (m *Matcher) FirstMatch(affiliations []string) (string, bool) {
	for _, aff := range affiliations {
		if _, ok := m.Match(aff); ok {
			return aff, true
		}
	}
	return "", false
}
