// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

const (
	tableTitleWidth   = 50
	tableAuthorsWidth = 60
)

// PrintText writes each record as three lines followed by a blank line.
func PrintText(w io.Writer, records []types.ArticleRecord) {
	fmt.Fprintln(w, "Extracted Papers:")
	for _, r := range records {
		fmt.Fprintf(w, "PMID: %s, Title: %s, Date: %s\n", r.PMID, r.Title, r.PublicationDate)
		fmt.Fprintf(w, "Non-Academic Authors: %s\n", r.NonAcademicAuthors)
		fmt.Fprintf(w, "Corresponding Email: %s\n\n", r.CorrespondingEmail)
	}
}

// PrintTable writes records as an aligned table. Widths are measured in
// terminal cells so CJK and other wide characters line up; long titles
// and author lists are truncated.
func PrintTable(w io.Writer, records []types.ArticleRecord) {
	header := []string{"PMID", "Date", "Title", "Non-Academic Authors"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.PMID,
			r.PublicationDate,
			runewidth.Truncate(r.Title, tableTitleWidth, "..."),
			runewidth.Truncate(r.NonAcademicAuthors, tableAuthorsWidth, "..."),
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeRow := func(cells []string) {
		padded := make([]string, len(cells))
		for i, c := range cells {
			if i == len(cells)-1 {
				padded[i] = c
				continue
			}
			padded[i] = runewidth.FillRight(c, widths[i])
		}
		fmt.Fprintln(w, strings.Join(padded, "  "))
	}

	writeRow(header)
	total := 0
	for _, cw := range widths {
		total += cw
	}
	fmt.Fprintln(w, strings.Repeat("-", total+2*(len(widths)-1)))
	for _, row := range rows {
		writeRow(row)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(records))
}

// PrintJSON writes records as indented JSON.
func PrintJSON(w io.Writer, records []types.ArticleRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// PrintYAML writes records as a YAML sequence.
func PrintYAML(w io.Writer, records []types.ArticleRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
