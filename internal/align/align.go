// Package align pairs Japanese highlights with the most semantically
// similar sentence of the English translation.
package align

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/neurosnap/sentences/english"
	"gonum.org/v1/gonum/floats"

	"github.com/honyaku-lab/honyakukit/internal/dataset"
	"github.com/honyaku-lab/honyakukit/internal/embedding"
)

// HighlightRow is one Japanese highlight to align.
type HighlightRow struct {
	Location  string
	Highlight string
	Note      string
}

// CleanText collapses all line breaks to spaces so sentence boundaries
// are decided by punctuation alone.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}

// TrimToMarker cuts text to start at the first occurrence of marker,
// dropping front matter before the body of the book. Missing marker or an
// empty marker leaves the text untouched.
func TrimToMarker(text, marker string) string {
	if marker == "" {
		return text
	}
	if idx := strings.Index(text, marker); idx >= 0 {
		return text[idx:]
	}
	return text
}

// SplitSentences splits English text into sentences with a trained
// boundary detector, so abbreviations and quotes do not produce spurious
// breaks. Empty fragments are dropped.
func SplitSentences(text string) ([]string, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sentence tokenizer: %w", err)
	}

	var out []string
	for _, s := range tokenizer.Tokenize(text) {
		t := strings.TrimSpace(s.Text)
		if t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

// cosine returns the cosine similarity of two vectors, 0 when either has
// zero norm or the dimensions disagree.
func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

// Align selects, for every highlight, the English sentence with maximum
// cosine similarity. Ties break to the first occurrence. Every highlight
// produces exactly one record; low-similarity matches are kept for
// downstream inspection rather than filtered.
func Align(ctx context.Context, embedder embedding.Embedder, rows []HighlightRow, sentences []string) ([]dataset.AlignedRecord, error) {
	if len(sentences) == 0 {
		return nil, fmt.Errorf("no candidate sentences to align against")
	}

	slog.Info("Embedding English sentences", "count", len(sentences))
	sentenceVecs, err := embedding.EmbedAll(ctx, embedder, sentences, func(done, total int) {
		if done%100 == 0 || done == total {
			slog.Debug("Embedding progress", "done", done, "total", total)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to embed sentences: %w", err)
	}

	records := make([]dataset.AlignedRecord, 0, len(rows))
	for i, row := range rows {
		vec, err := embedder.Embed(ctx, row.Highlight)
		if err != nil {
			return nil, fmt.Errorf("failed to embed highlight %d: %w", i, err)
		}

		bestIdx := 0
		bestSim := cosine(vec, sentenceVecs[0])
		for j := 1; j < len(sentenceVecs); j++ {
			if sim := cosine(vec, sentenceVecs[j]); sim > bestSim {
				bestIdx, bestSim = j, sim
			}
		}

		records = append(records, dataset.AlignedRecord{
			Location:    row.Location,
			HighlightJP: row.Highlight,
			Note:        row.Note,
			HighlightEN: sentences[bestIdx],
			Similarity:  bestSim,
		})
		slog.Debug("Aligned highlight", "index", i, "similarity", bestSim)
	}

	return records, nil
}
