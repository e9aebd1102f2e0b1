package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/honyaku-lab/honyakukit/internal/highlights"
)

func newExtractCmd() *cobra.Command {
	var inputPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract highlights and notes from a Kindle notebook export",
		Long: `Extract highlighted passages and their notes from a saved copy of the
Kindle notebook page (read.amazon.co.jp/notebook).

Each whitespace-separated word of a note becomes its own row, sharing the
highlight and location of its block. Blocks without a highlight are
skipped; blocks without a note are reported by location so they can be
fixed in the notebook.`,
		Example: `  # Extract to the default highlights.csv
  honyakukit extract --input notebook.html

  # Choose the output path
  honyakukit extract --input notebook.html --output kokoro_highlights.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("notebook file not found: %s", inputPath)
			}

			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("failed to open notebook file: %w", err)
			}
			defer f.Close()

			res, err := highlights.Extract(f)
			if err != nil {
				return err
			}

			for _, loc := range res.MissingNoteLocs {
				slog.Warn("Highlight without a note", "location", loc)
			}

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			if err := highlights.WriteCSV(out, res.Records); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}

			slog.Info("Extraction finished",
				"highlights", res.HighlightedBlock,
				"records", len(res.Records),
				"missing_notes", len(res.MissingNoteLocs),
				"output", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the saved notebook HTML (required)")
	cmd.Flags().StringVar(&outputPath, "output", "highlights.csv", "Path to the output CSV")

	_ = cmd.MarkFlagRequired("input")
	return cmd
}
