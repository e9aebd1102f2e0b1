package align

import (
	"context"
	"testing"
)

// fakeEmbedder maps exact strings to fixed vectors.
type fakeEmbedder struct {
	vectors map[string][]float64
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float64{0, 0, 0}, nil
}

func TestCleanText(t *testing.T) {
	got := CleanText("one\r\ntwo\nthree")
	want := "one  two three"
	if got != want {
		t.Errorf("CleanText = %q, want %q", got, want)
	}
}

func TestTrimToMarker(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		marker string
		want   string
	}{
		{name: "marker found", text: "preface CHAPTER I body", marker: "CHAPTER I", want: "CHAPTER I body"},
		{name: "marker missing", text: "no chapters here", marker: "CHAPTER I", want: "no chapters here"},
		{name: "empty marker", text: "unchanged", marker: "", want: "unchanged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimToMarker(tt.text, tt.marker); got != tt.want {
				t.Errorf("TrimToMarker = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	text := "I always called him Sensei. Mr. Smith arrived at noon. He said nothing."
	sentences, err := SplitSentences(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sentences) != 3 {
		t.Fatalf("got %d sentences, want 3: %v", len(sentences), sentences)
	}
	// "Mr." must not end a sentence.
	if sentences[1] != "Mr. Smith arrived at noon." {
		t.Errorf("sentence 1 = %q", sentences[1])
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "identical", a: []float64{1, 0}, b: []float64{1, 0}, want: 1},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, want: 0},
		{name: "zero vector", a: []float64{0, 0}, b: []float64{1, 0}, want: 0},
		{name: "dimension mismatch", a: []float64{1}, b: []float64{1, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cosine(tt.a, tt.b); got != tt.want {
				t.Errorf("cosine = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlignPicksMostSimilarSentence(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float64{
		"先生と私":       {1, 0, 0},
		"鎌倉の海岸":      {0, 1, 0},
		"I met Sensei.": {0.9, 0.1, 0},
		"The beach at Kamakura.": {0.1, 0.9, 0},
		"Nothing relevant.":      {0, 0, 1},
	}}
	sentences := []string{"I met Sensei.", "The beach at Kamakura.", "Nothing relevant."}
	rows := []HighlightRow{
		{Location: "120", Highlight: "先生と私", Note: "先生"},
		{Location: "240", Highlight: "鎌倉の海岸", Note: "鎌倉"},
	}

	records, err := Align(context.Background(), embedder, rows, sentences)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if records[0].HighlightEN != "I met Sensei." {
		t.Errorf("row 0 matched %q", records[0].HighlightEN)
	}
	if records[1].HighlightEN != "The beach at Kamakura." {
		t.Errorf("row 1 matched %q", records[1].HighlightEN)
	}
	if records[0].Similarity <= 0 || records[0].Similarity > 1 {
		t.Errorf("similarity out of range: %v", records[0].Similarity)
	}
	if records[0].Location != "120" || records[0].Note != "先生" {
		t.Errorf("row metadata not carried over: %+v", records[0])
	}
}

func TestAlignTieBreaksToFirstSentence(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float64{
		"先生":      {1, 0, 0},
		"First.":  {1, 0, 0},
		"Second.": {1, 0, 0},
	}}
	records, err := Align(context.Background(), embedder,
		[]HighlightRow{{Highlight: "先生"}},
		[]string{"First.", "Second."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].HighlightEN != "First." {
		t.Errorf("tie should keep the first sentence, got %q", records[0].HighlightEN)
	}
}

func TestAlignRejectsEmptySentenceList(t *testing.T) {
	embedder := &fakeEmbedder{}
	if _, err := Align(context.Background(), embedder, []HighlightRow{{Highlight: "x"}}, nil); err == nil {
		t.Fatal("expected an error for an empty sentence list")
	}
}
