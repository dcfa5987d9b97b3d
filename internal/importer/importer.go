// Package importer extracts vocabulary entries from uploaded Excel
// workbooks for bulk ledger imports.
package importer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/guvenchemy/MerkutY-BTK/internal/domain"
)

// ErrNoSheets indicates the workbook contains no sheets to read.
var ErrNoSheets = errors.New("workbook contains no sheets")

// wordPattern accepts letters, spaces, and hyphens. Rows carrying digits,
// punctuation, or non-Latin script are skipped rather than failing the import.
var wordPattern = regexp.MustCompile(`^[a-zA-Z\s-]+$`)

// Entry is one extracted vocabulary row: the word from the first column
// and an optional translation from the second.
type Entry struct {
	Word        string
	Translation string
}

// Result summarizes an extraction: how many rows were read, how many
// produced entries, and how many were skipped as unusable.
type Result struct {
	Entries     []Entry
	RowsRead    int
	RowsSkipped int
	SheetName   string
}

// Importer reads vocabulary workbooks.
type Importer struct {
	logger *slog.Logger
}

// NewImporter creates an Importer. If logger is nil, a default logger is used.
func NewImporter(logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		logger: logger.With(slog.String("component", "vocabulary_importer")),
	}
}

// Extract reads the first sheet of an xlsx workbook and returns the cleaned
// vocabulary entries. Words are canonicalized to lowercase, filtered to
// plausible English entries, and deduplicated keeping the first occurrence.
func (i *Importer) Extract(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %q: %w", sheet, err)
	}

	result := &Result{SheetName: sheet}
	seen := make(map[string]struct{})

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		result.RowsRead++

		word := domain.CanonicalWord(row[0])
		if !usableWord(word) {
			result.RowsSkipped++
			continue
		}
		if _, dup := seen[word]; dup {
			result.RowsSkipped++
			continue
		}
		seen[word] = struct{}{}

		entry := Entry{Word: word}
		if len(row) > 1 {
			entry.Translation = strings.TrimSpace(row[1])
		}
		result.Entries = append(result.Entries, entry)
	}

	i.logger.Info("extracted vocabulary from workbook",
		slog.String("sheet", sheet),
		slog.Int("rows_read", result.RowsRead),
		slog.Int("entries", len(result.Entries)),
		slog.Int("skipped", result.RowsSkipped))

	return result, nil
}

// usableWord reports whether a cleaned cell value is a plausible
// vocabulary entry. Single letters and header-like values are skipped.
func usableWord(word string) bool {
	if len(word) <= 1 {
		return false
	}
	return wordPattern.MatchString(word)
}
