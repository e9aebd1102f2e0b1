package dataset

import (
	"path/filepath"
	"testing"
)

func sampleAligned() []AlignedRecord {
	return []AlignedRecord{
		{Location: "120", HighlightJP: "先生と私", Note: "先生", HighlightEN: "I met Sensei.", Similarity: 0.83},
		{Location: "240", HighlightJP: "鎌倉の海岸", Note: "鎌倉", HighlightEN: "The beach at Kamakura.", Similarity: 0.67},
	}
}

func TestAlignedParquetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aligned.parquet")
	want := sampleAligned()

	if err := WriteAlignedParquet(path, want); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadAlignedParquet(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadAlignedByExtension(t *testing.T) {
	dir := t.TempDir()
	records := sampleAligned()

	parquetPath := filepath.Join(dir, "aligned.parquet")
	if err := WriteAlignedParquet(parquetPath, records); err != nil {
		t.Fatalf("write parquet: %v", err)
	}
	csvPath := filepath.Join(dir, "aligned.csv")
	if err := AlignedTable(records).SaveCSV(csvPath); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	for _, path := range []string{parquetPath, csvPath} {
		tbl, err := LoadAligned(path)
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		if err := tbl.Require(AlignedColumns...); err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if tbl.Len() != len(records) {
			t.Fatalf("%s: got %d rows, want %d", path, tbl.Len(), len(records))
		}
		if got := tbl.Get(1, ColHighlightEN); got != "The beach at Kamakura." {
			t.Errorf("%s: cell = %q", path, got)
		}
		if got := tbl.Get(0, ColSimilarity); got != "0.83" {
			t.Errorf("%s: similarity cell = %q", path, got)
		}
	}
}
