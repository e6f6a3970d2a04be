package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/internal/batch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and extract outlines from PDFs as they arrive",
	Long: `Watch processes every existing *.pdf file in the directory, then keeps
watching it and extracts an outline for each new or rewritten PDF.
Results are written to the output directory as JSON, one file per
document. Watching stops on interrupt.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindOutputFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := batch.New(batch.Config{
			InputDir:    args[0],
			OutputDir:   viper.GetString("output_dir"),
			Workers:     viper.GetInt("workers"),
			MaxHeadings: viper.GetInt("max_headings"),
			Logger:      slog.Default(),
		})
		return runner.Watch(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().StringP("output", "o", "", "output directory for results")
	watchCmd.Flags().IntP("workers", "w", batch.DefaultWorkers, "number of concurrent workers")
	watchCmd.Flags().Int("max-headings", outliner.DefaultMaxHeadings, "maximum number of outline entries per document")
}
