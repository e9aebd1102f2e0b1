package dataset

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	in := "\uFEFFLocation,Highlight_JP,Highlight_EN\n120,先生と私,\"I met Sensei.\"\n240,鎌倉\n"
	tbl, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !tbl.HasColumn(ColLocation) {
		t.Error("BOM on the first header cell was not stripped")
	}
	if tbl.Len() != 2 {
		t.Fatalf("got %d rows, want 2", tbl.Len())
	}
	if got := tbl.Get(0, ColHighlightEN); got != "I met Sensei." {
		t.Errorf("cell = %q", got)
	}
	// Short rows read as empty cells rather than erroring.
	if got := tbl.Get(1, ColHighlightEN); got != "" {
		t.Errorf("short row cell = %q, want empty", got)
	}
}

func TestRequireListsAllMissingColumns(t *testing.T) {
	tbl := New(ColLocation)
	err := tbl.Require(ColHighlightJP, ColHighlightEN)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), ColHighlightJP) || !strings.Contains(err.Error(), ColHighlightEN) {
		t.Errorf("error should name both columns: %v", err)
	}
	if err := tbl.Require(ColLocation); err != nil {
		t.Errorf("unexpected error for a present column: %v", err)
	}
}

func TestSetCreatesColumnAndPadsRow(t *testing.T) {
	tbl := New(ColLocation)
	tbl.Rows = append(tbl.Rows, []string{"120"})

	tbl.Set(0, "翻訳技法", "Borrowing")

	if !tbl.HasColumn("翻訳技法") {
		t.Fatal("column was not created")
	}
	if got := tbl.Get(0, "翻訳技法"); got != "Borrowing" {
		t.Errorf("cell = %q", got)
	}
	if got := tbl.Get(0, ColLocation); got != "120" {
		t.Errorf("existing cell disturbed: %q", got)
	}
}

func TestAppend(t *testing.T) {
	tbl := New(ColLocation, ColHighlightJP)
	tbl.Append(map[string]string{
		ColLocation:    "120",
		ColHighlightJP: "先生と私",
		"Unknown":      "dropped",
	})

	if tbl.Len() != 1 {
		t.Fatalf("got %d rows, want 1", tbl.Len())
	}
	if got := tbl.Get(0, ColLocation); got != "120" {
		t.Errorf("location cell = %q", got)
	}
	if tbl.HasColumn("Unknown") {
		t.Error("unknown keys must not create columns")
	}
}

func TestWriteCSVPadsShortRows(t *testing.T) {
	tbl := New("A", "B", "C")
	tbl.Rows = append(tbl.Rows, []string{"1"})

	var buf bytes.Buffer
	if err := tbl.WriteCSV(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "A,B,C\n1,,\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

func TestAlignedTableRoundTrip(t *testing.T) {
	records := []AlignedRecord{
		{Location: "120", HighlightJP: "先生と私", Note: "先生", HighlightEN: "I met Sensei.", Similarity: 0.83},
	}

	tbl := AlignedTable(records)
	if err := tbl.Require(AlignedColumns...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tbl.Get(0, ColSimilarity); got != "0.83" {
		t.Errorf("similarity cell = %q", got)
	}
	if got := tbl.Get(0, ColHighlightJP); got != "先生と私" {
		t.Errorf("highlight cell = %q", got)
	}
}

func TestIsParquet(t *testing.T) {
	if !IsParquet("data/aligned.PARQUET") {
		t.Error("extension check should be case insensitive")
	}
	if IsParquet("aligned.csv") {
		t.Error("csv misreported as parquet")
	}
}
