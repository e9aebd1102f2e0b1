package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// AlignedRecord is one Japanese highlight paired with the English sentence
// judged most similar to it. The Parquet schema mirrors the CSV columns.
type AlignedRecord struct {
	Location    string  `parquet:"location"`
	HighlightJP string  `parquet:"highlight_jp"`
	Note        string  `parquet:"note"`
	HighlightEN string  `parquet:"highlight_en"`
	Similarity  float64 `parquet:"similarity"`
}

// AlignedColumns is the column order of an aligned dataset.
var AlignedColumns = []string{ColLocation, ColHighlightJP, ColNote, ColHighlightEN, ColSimilarity}

// IsParquet reports whether path names a Parquet file by extension.
func IsParquet(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".parquet"
}

// LoadAligned loads an aligned dataset, choosing CSV or Parquet by file
// extension.
func LoadAligned(path string) (*Table, error) {
	if IsParquet(path) {
		records, err := ReadAlignedParquet(path)
		if err != nil {
			return nil, err
		}
		return AlignedTable(records), nil
	}
	return LoadCSV(path)
}

// AlignedTable converts aligned records into a header-driven table.
func AlignedTable(records []AlignedRecord) *Table {
	t := New(AlignedColumns...)
	for _, r := range records {
		t.Append(map[string]string{
			ColLocation:    r.Location,
			ColHighlightJP: r.HighlightJP,
			ColNote:        r.Note,
			ColHighlightEN: r.HighlightEN,
			ColSimilarity:  fmt.Sprintf("%g", r.Similarity),
		})
	}
	return t
}

// WriteAlignedParquet writes aligned records to a Parquet file.
func WriteAlignedParquet(path string, records []AlignedRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}

	w := parquet.NewGenericWriter[AlignedRecord](f)
	if _, err := w.Write(records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return f.Close()
}

// ReadAlignedParquet reads aligned records from a Parquet file.
func ReadAlignedParquet(path string) ([]AlignedRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened", "path", path, "num_rows", pf.NumRows())

	reader := parquet.NewGenericReader[AlignedRecord](pf)
	defer reader.Close()

	var records []AlignedRecord
	rows := make([]AlignedRecord, 128) // Read in batches

	for {
		n, err := reader.Read(rows)
		if n > 0 {
			records = append(records, rows[:n]...)
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Finished reading parquet file", "total_records", len(records))

	return records, nil
}
