package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/honyaku-lab/honyakukit/internal/annotate"
	"github.com/honyaku-lab/honyakukit/internal/config"
	"github.com/honyaku-lab/honyakukit/internal/dataset"
	"github.com/honyaku-lab/honyakukit/internal/gemini"
)

func newAnnotateCmd() *cobra.Command {
	var inputPath string
	var outputPath string
	var taskName string
	var model string
	var temperature float64

	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Annotate aligned pairs with a generative model",
		Long: `Annotate every aligned highlight pair with Gemini, one API call per
row, paced to stay inside the free tier's rate limit.

Three tasks are available:
  method    label the Vinay & Darbelnet translation procedure
  dmis      label the Bennett DMIS stage (expects a prior method run)
  combined  label procedure and DMIS stage in a single pass

Rows that fail keep going: missing source or target text, malformed
replies, and exhausted retries are written into the output as sentinel
values and logged to the error log, so one bad row never aborts a
multi-hour run.`,
		Example: `  # Label translation procedures
  honyakukit annotate --input aligned.csv --task method

  # Label DMIS stages into a separate file
  honyakukit annotate --input annotated.csv --task dmis --output annotated_dmis.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.RequireAPIKey(); err != nil {
				return err
			}
			if model == "" {
				model = cfg.GeminiModel
			}
			outputPath, err = annotateOutputPath(inputPath, outputPath)
			if err != nil {
				return err
			}

			task, err := annotate.TaskByName(taskName)
			if err != nil {
				return err
			}

			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("input file not found: %s", inputPath)
			}

			tbl, err := dataset.LoadAligned(inputPath)
			if err != nil {
				return err
			}

			runLog, err := annotate.OpenRunLog(cfg.ErrorLogPath)
			if err != nil {
				return err
			}
			defer runLog.Close()

			estimate := time.Duration(tbl.Len()) * cfg.RequestInterval
			fmt.Printf("%d件のレコードを処理します（推定所要時間: 約%.0f分）\n",
				tbl.Len(), estimate.Minutes())

			pipeline := &annotate.Pipeline{
				Provider:    gemini.New(cfg.GeminiAPIKey),
				Model:       model,
				Temperature: temperature,
				Task:        task,
				MaxRetries:  cfg.MaxRetries,
				RetryDelay:  cfg.RetryDelay,
				Interval:    cfg.RequestInterval,
				Log:         runLog,
			}

			stats, err := pipeline.Run(cmd.Context(), tbl)
			if err != nil {
				return err
			}

			if err := tbl.SaveCSV(outputPath); err != nil {
				return err
			}

			fmt.Printf("完了: 成功 %d件 / エラー %d件（全%d件）\n",
				stats.Success, stats.Errors, stats.Total)
			if stats.Errors > 0 {
				fmt.Printf("エラーの詳細は %s を確認してください\n", cfg.ErrorLogPath)
			}
			fmt.Printf("出力: %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the aligned dataset (.csv or .parquet, required)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Path to the output CSV (defaults to overwriting --input)")
	cmd.Flags().StringVar(&taskName, "task", "method", "Annotation task (method, dmis, or combined)")
	cmd.Flags().StringVar(&model, "model", "", "Gemini model name (defaults to GEMINI_MODEL)")
	cmd.Flags().Float64Var(&temperature, "temperature", 0.2, "Sampling temperature")

	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// annotateOutputPath resolves where the annotated CSV goes. The annotated
// dataset is always CSV, so a Parquet input defaults to a .csv sibling
// instead of being clobbered in place, and an explicit .parquet output is
// refused.
func annotateOutputPath(input, output string) (string, error) {
	if output == "" {
		if dataset.IsParquet(input) {
			return strings.TrimSuffix(input, filepath.Ext(input)) + ".csv", nil
		}
		return input, nil
	}
	if dataset.IsParquet(output) {
		return "", fmt.Errorf("annotated output is CSV; use a .csv path instead of %s", output)
	}
	return output, nil
}
