package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/honyaku-lab/honyakukit/internal/annotate"
	"github.com/honyaku-lab/honyakukit/internal/dataset"
	"github.com/honyaku-lab/honyakukit/internal/report"
)

func newHeatmapCmd() *cobra.Command {
	var inputPath string
	var outputPath string
	var methodCol string
	var dmisCol string
	var categoriesPath string

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Render the method-by-DMIS frequency heatmap",
		Long: `Cross-tabulate the translation procedure and DMIS stage labels of an
annotated dataset and render the frequency table as a PNG heatmap.

Labels outside the expected vocabulary are listed on the console so they
can be corrected in the dataset; such rows are left out of the plot. The
axis orders can be overridden with a YAML file carrying "methods" and
"dmis" lists.`,
		Example: `  # Render with the default vocabulary
  honyakukit heatmap --input annotated.csv

  # Custom columns and axis orders
  honyakukit heatmap --input annotated.csv --method-col 翻訳技法 --categories categories.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("input file not found: %s", inputPath)
			}

			cats := report.DefaultCategories()
			if categoriesPath != "" {
				var err error
				cats, err = report.LoadCategories(categoriesPath)
				if err != nil {
					return err
				}
			}

			tbl, err := dataset.LoadAligned(inputPath)
			if err != nil {
				return err
			}

			ct, err := report.Build(tbl, methodCol, dmisCol, cats)
			if err != nil {
				return err
			}

			if len(ct.UndefinedDMIS) > 0 {
				fmt.Println("未定義の DMIS ラベル（修正が必要）:", ct.UndefinedDMIS)
			}
			if len(ct.UndefinedMethods) > 0 {
				fmt.Println("未定義の翻訳手法ラベル（修正が必要）:", ct.UndefinedMethods)
			}

			if err := report.Render(ct, outputPath); err != nil {
				return err
			}

			slog.Info("Heatmap rendered", "output", outputPath, "max_count", ct.Max())
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the annotated dataset CSV (required)")
	cmd.Flags().StringVar(&outputPath, "output", "dmis_translation_heatmap.png", "Path to the output PNG")
	cmd.Flags().StringVar(&methodCol, "method-col", annotate.ColMethod, "Column holding the translation procedure labels")
	cmd.Flags().StringVar(&dmisCol, "dmis-col", annotate.ColDMIS, "Column holding the DMIS stage labels")
	cmd.Flags().StringVar(&categoriesPath, "categories", "", "YAML file overriding the axis orders")

	_ = cmd.MarkFlagRequired("input")
	return cmd
}
