package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "honyakukit",
		Short: "Build and annotate a Japanese-English literary translation dataset",
		Long: `Honyakukit turns a Kindle notebook export and the book's English
translation into an annotated parallel dataset.

The pipeline runs in four stages: extract highlights from the notebook
HTML, align each highlight with its English sentence by embedding
similarity, annotate every pair with a generative model, and render a
label frequency heatmap.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newAlignCmd())
	cmd.AddCommand(newAnnotateCmd())
	cmd.AddCommand(newHeatmapCmd())

	return cmd
}
