// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders extracted article records to a CSV file or to
// the console.
package report

import (
	"fmt"
	"io"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// NoPapersMessage is printed when no article has a non-academic author.
const NoPapersMessage = "No papers found with non-academic authors."

// Report writes records according to cfg. With cfg.File set the records go
// to that path as CSV and a confirmation is printed to w; otherwise they
// are rendered to w in cfg.Format. An empty record list prints
// NoPapersMessage and writes no file.
func Report(w io.Writer, records []types.ArticleRecord, cfg types.ReportConfig) error {
	if len(records) == 0 {
		fmt.Fprintln(w, NoPapersMessage)
		return nil
	}

	if cfg.File != "" {
		if err := WriteCSV(cfg.File, records); err != nil {
			return err
		}
		fmt.Fprintf(w, "Saved %d papers with non-academic authors to %s\n", len(records), cfg.File)
		return nil
	}

	return Print(w, records, cfg.Format)
}

// Print renders records to w in the given console format. An empty format
// means FormatText.
func Print(w io.Writer, records []types.ArticleRecord, format types.OutputFormat) error {
	switch format {
	case "", types.FormatText:
		PrintText(w, records)
		return nil
	case types.FormatTable:
		PrintTable(w, records)
		return nil
	case types.FormatJSON:
		return PrintJSON(w, records)
	case types.FormatYAML:
		return PrintYAML(w, records)
	default:
		return fmt.Errorf("unknown output format %q (want text, table, json, or yaml)", format)
	}
}

// ParseFormat validates a console format name.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case "":
		return types.FormatText, nil
	case types.FormatText, types.FormatTable, types.FormatJSON, types.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, table, json, or yaml)", s)
	}
}
