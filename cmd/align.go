package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/honyaku-lab/honyakukit/internal/align"
	"github.com/honyaku-lab/honyakukit/internal/config"
	"github.com/honyaku-lab/honyakukit/internal/dataset"
	"github.com/honyaku-lab/honyakukit/internal/embedding"
)

func newAlignCmd() *cobra.Command {
	var textPath string
	var csvPath string
	var outputPath string
	var marker string
	var model string
	var host string

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Pair each Japanese highlight with its English sentence",
		Long: `Pair every extracted highlight with the sentence of the English
translation most similar to it.

The English text is split into sentences, both sides are embedded with a
multilingual model served by Ollama, and each highlight keeps the sentence
with the highest cosine similarity. Every highlight produces exactly one
row; the similarity column supports reviewing weak matches afterwards.

The output format follows the file extension: .parquet writes Parquet,
anything else writes CSV.`,
		Example: `  # Align against the English text, writing CSV
  honyakukit align --text kokoro_en.txt --csv highlights.csv --output aligned.csv

  # Skip the translator's preface and write Parquet
  honyakukit align --text kokoro_en.txt --csv highlights.csv --marker "CHAPTER I" --output aligned.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if model == "" {
				model = cfg.EmbedModel
			}
			if host == "" {
				host = cfg.OllamaHost
			}

			if _, err := os.Stat(textPath); os.IsNotExist(err) {
				return fmt.Errorf("translation text not found: %s", textPath)
			}
			if _, err := os.Stat(csvPath); os.IsNotExist(err) {
				return fmt.Errorf("highlights file not found: %s", csvPath)
			}

			raw, err := os.ReadFile(textPath)
			if err != nil {
				return fmt.Errorf("failed to read translation text: %w", err)
			}
			text := align.TrimToMarker(align.CleanText(string(raw)), marker)

			sentences, err := align.SplitSentences(text)
			if err != nil {
				return err
			}
			slog.Info("Split translation into sentences", "count", len(sentences))

			tbl, err := dataset.LoadCSV(csvPath)
			if err != nil {
				return err
			}
			if err := tbl.Require(dataset.ColHighlight); err != nil {
				return err
			}

			rows := make([]align.HighlightRow, 0, tbl.Len())
			for i := 0; i < tbl.Len(); i++ {
				rows = append(rows, align.HighlightRow{
					Location:  tbl.Get(i, dataset.ColLocation),
					Highlight: tbl.Get(i, dataset.ColHighlight),
					Note:      tbl.Get(i, dataset.ColNote),
				})
			}

			embedder, err := embedding.NewOllama(host, model)
			if err != nil {
				return err
			}

			records, err := align.Align(cmd.Context(), embedder, rows, sentences)
			if err != nil {
				return err
			}

			if dataset.IsParquet(outputPath) {
				err = dataset.WriteAlignedParquet(outputPath, records)
			} else {
				err = dataset.AlignedTable(records).SaveCSV(outputPath)
			}
			if err != nil {
				return err
			}

			slog.Info("Alignment finished", "pairs", len(records), "output", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&textPath, "text", "", "Path to the English translation as plain text (required)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Path to the extracted highlights CSV (required)")
	cmd.Flags().StringVar(&outputPath, "output", "aligned.csv", "Path to the output file (.csv or .parquet)")
	cmd.Flags().StringVar(&marker, "marker", "", "Trim the translation to start at this phrase")
	cmd.Flags().StringVar(&model, "model", "", "Embedding model name (defaults to EMBED_MODEL)")
	cmd.Flags().StringVar(&host, "host", "", "Ollama server URL (defaults to OLLAMA_HOST resolution)")

	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("csv")
	return cmd
}
