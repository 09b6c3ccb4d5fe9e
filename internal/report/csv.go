// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// WriteCSV writes a header row and one row per record to path, replacing
// any existing file.
func WriteCSV(path string, records []types.ArticleRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := EncodeCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// EncodeCSV writes records as comma-separated values to w.
func EncodeCSV(w io.Writer, records []types.ArticleRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.CSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.CSVRow()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV loads records written by WriteCSV.
func ReadCSV(path string) ([]types.ArticleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := DecodeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// DecodeCSV parses CSV produced by EncodeCSV. The header row must match
// types.CSVHeader.
func DecodeCSV(r io.Reader) ([]types.ArticleRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(types.CSVHeader)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, err
	}
	for i, col := range types.CSVHeader {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected column %d: got %q, want %q", i+1, header[i], col)
		}
	}

	var records []types.ArticleRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, types.ArticleRecord{
			PMID:               row[0],
			Title:              row[1],
			PublicationDate:    row[2],
			NonAcademicAuthors: row[3],
			CorrespondingEmail: row[4],
		})
	}
	return records, nil
}
