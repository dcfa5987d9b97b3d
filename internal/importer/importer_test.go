package importer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/guvenchemy/MerkutY-BTK/internal/importer"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
)

// buildWorkbook writes the given rows into the first sheet of an in-memory
// xlsx workbook and returns its serialized bytes.
func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cellName, cell))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestExtract(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]string{
		{"Apple", "elma"},
		{"run", "koşmak"},
		{"ice cream", "dondurma"},
		{"well-known"},
		{"apple", "duplicate"},
		{"123"},
		{"a"},
		{"déjà"},
	})

	result, err := importer.NewImporter(logger.NewTestLogger()).Extract(buf)
	require.NoError(t, err)

	words := make([]string, 0, len(result.Entries))
	for _, e := range result.Entries {
		words = append(words, e.Word)
	}
	assert.Equal(t, []string{"apple", "run", "ice cream", "well-known"}, words)
	assert.Equal(t, "elma", result.Entries[0].Translation)
	assert.Equal(t, 8, result.RowsRead)
	assert.Equal(t, 4, result.RowsSkipped)
}

func TestExtractRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := importer.NewImporter(logger.NewTestLogger()).
		Extract(bytes.NewReader([]byte("not an xlsx file")))
	assert.Error(t, err)
}
