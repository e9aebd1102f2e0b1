// Package dataset reads and writes the CSV and Parquet files that carry
// highlight, alignment and annotation rows between tool invocations.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Well-known column headers shared across the toolchain. The annotation
// columns use the native-language headers the dataset was built with.
const (
	ColLocation    = "Location"
	ColHighlight   = "Highlight"
	ColNote        = "Note"
	ColHighlightJP = "Highlight_JP"
	ColHighlightEN = "Highlight_EN"
	ColSimilarity  = "Similarity"
	ColAnnotation  = "注釈"
)

// Table is a header-driven, in-memory view of a delimited dataset.
// Cells for columns a row does not cover read as the empty string.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// New returns an empty table with the given column headers.
func New(columns ...string) *Table {
	t := &Table{Columns: append([]string(nil), columns...)}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		t.index[c] = i
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Require returns an error listing every missing column, so an operator can
// fix the input in one pass instead of discovering columns one at a time.
func (t *Table) Require(columns ...string) error {
	var missing []string
	for _, c := range columns {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required columns not found: %s", strings.Join(missing, ", "))
	}
	return nil
}

// EnsureColumns appends any of the named columns that do not exist yet.
func (t *Table) EnsureColumns(columns ...string) {
	for _, c := range columns {
		if !t.HasColumn(c) {
			t.Columns = append(t.Columns, c)
			t.index[c] = len(t.Columns) - 1
		}
	}
}

// Get returns the cell at row i for the named column, or "" when the column
// is unknown or the row is short.
func (t *Table) Get(i int, column string) string {
	j, ok := t.index[column]
	if !ok || i < 0 || i >= len(t.Rows) || j >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][j]
}

// Set writes the cell at row i for the named column, creating the column
// and padding the row as needed.
func (t *Table) Set(i int, column, value string) {
	t.EnsureColumns(column)
	j := t.index[column]
	for len(t.Rows[i]) <= j {
		t.Rows[i] = append(t.Rows[i], "")
	}
	t.Rows[i][j] = value
}

// Append adds a row given as column name to value pairs.
func (t *Table) Append(cells map[string]string) {
	row := make([]string, len(t.Columns))
	for c, v := range cells {
		if j, ok := t.index[c]; ok {
			row[j] = v
		}
	}
	t.Rows = append(t.Rows, row)
}

// LoadCSV reads a UTF-8, comma-delimited file with a header row. Rows may
// be shorter or longer than the header; a UTF-8 BOM on the first header
// cell is stripped.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses CSV from r. See LoadCSV.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if i == 0 {
			header[i] = strings.TrimPrefix(header[i], "\uFEFF")
		}
	}

	t := New(header...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// SaveCSV rewrites the whole table to path: header first, then every row
// padded to the header width, UTF-8, comma-delimited.
func (t *Table) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSV writes the table to w. See SaveCSV.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range t.Rows {
		padded := row
		if len(row) < len(t.Columns) {
			padded = make([]string, len(t.Columns))
			copy(padded, row)
		} else if len(row) > len(t.Columns) {
			padded = row[:len(t.Columns)]
		}
		if err := cw.Write(padded); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
