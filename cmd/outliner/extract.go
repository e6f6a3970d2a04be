package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/internal/batch"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file|directory]",
	Short: "Extract the title and heading outline from one PDF or a directory of PDFs",
	Long: `Extract infers the title and H1-H3 outline of the given PDF and prints
the result as JSON on standard output. When given a directory, every
*.pdf file in it is processed concurrently and one JSON file per
document is written to the output directory.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindOutputFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		if info.IsDir() {
			return runBatch(cmd, path)
		}
		return runSingle(path)
	},
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", "output directory for batch results")
	extractCmd.Flags().IntP("workers", "w", batch.DefaultWorkers, "number of concurrent workers for batch extraction")
	extractCmd.Flags().Int("max-headings", outliner.DefaultMaxHeadings, "maximum number of outline entries per document")
}

// bindOutputFlags binds a command's flags to viper. Bound per run because
// extract and watch share the viper keys.
func bindOutputFlags(cmd *cobra.Command) error {
	bindings := map[string]string{
		"output_dir":   "output",
		"workers":      "workers",
		"max_headings": "max-headings",
	}
	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

func runSingle(path string) error {
	result, err := outliner.Open(path).
		MaxHeadings(viper.GetInt("max_headings")).
		Outline()
	if err != nil {
		return fmt.Errorf("failed to extract outline: %w", err)
	}

	data, err := sonic.ConfigDefault.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Println(string(data))
	return nil
}

func runBatch(cmd *cobra.Command, dir string) error {
	runner := batch.New(batch.Config{
		InputDir:    dir,
		OutputDir:   viper.GetString("output_dir"),
		Workers:     viper.GetInt("workers"),
		MaxHeadings: viper.GetInt("max_headings"),
		Logger:      slog.Default(),
	})

	summary, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	slog.Info("batch extraction complete",
		"processed", summary.Processed,
		"failed", summary.Failed,
	)
	return nil
}
