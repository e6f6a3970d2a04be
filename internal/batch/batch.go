// Package batch processes directories of PDF documents, writing one JSON
// outline record per input file. Documents are independent, so the runner
// fans out across a worker pool; a failed document produces the error
// sentinel record and never aborts the batch.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

// DefaultWorkers is the worker-pool size when none is configured.
const DefaultWorkers = 4

// Config holds batch runner configuration.
type Config struct {
	// InputDir is scanned (non-recursively) for *.pdf files.
	InputDir string

	// OutputDir receives one <stem>.json per input document. It is
	// created if missing.
	OutputDir string

	// Workers is the number of documents processed concurrently.
	// Default: 4.
	Workers int

	// MaxHeadings caps each document's outline. Default: 100.
	MaxHeadings int

	// Logger receives per-document progress. Default: slog.Default().
	Logger *slog.Logger
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Processed int
	Failed    int
}

// Runner executes outline extraction over a directory of documents.
type Runner struct {
	config Config
	logger *slog.Logger
}

// New creates a runner, applying defaults for unset config fields.
func New(config Config) *Runner {
	if config.Workers <= 0 {
		config.Workers = DefaultWorkers
	}
	if config.MaxHeadings <= 0 {
		config.MaxHeadings = layout.DefaultMaxHeadings
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{config: config, logger: logger}
}

// Run processes every PDF in the input directory and returns a summary.
// A per-document failure is logged, counted, and recorded as the error
// sentinel; only setup problems (unreadable directories) fail the run.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	files, err := filepath.Glob(filepath.Join(r.config.InputDir, "*.pdf"))
	if err != nil {
		return Summary{}, fmt.Errorf("failed to scan input directory: %w", err)
	}
	if len(files) == 0 {
		r.logger.Warn("no PDF files found", "dir", r.config.InputDir)
		return Summary{}, nil
	}

	if err := os.MkdirAll(r.config.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		mu      sync.Mutex
		summary Summary
		wg      sync.WaitGroup
	)

	jobs := make(chan string)
	for i := 0; i < r.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				err := r.Process(path)

				mu.Lock()
				if err != nil {
					summary.Failed++
				} else {
					summary.Processed++
				}
				mu.Unlock()
			}
		}()
	}

	for _, path := range files {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return summary, ctx.Err()
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()

	r.logger.Info("batch complete",
		"processed", summary.Processed,
		"failed", summary.Failed,
	)
	return summary, nil
}

// Process extracts one document and writes its result record. A failed
// extraction still writes the error sentinel so downstream consumers see
// a well-formed record for every input.
func (r *Runner) Process(path string) error {
	r.logger.Info("processing document", "file", filepath.Base(path))

	result, err := outliner.Open(path).
		MaxHeadings(r.config.MaxHeadings).
		Outline()
	if err != nil {
		r.logger.Error("extraction failed", "file", filepath.Base(path), "error", err)
		sentinel := model.OutlineResult{
			Title:   model.ErrorTitle,
			Outline: []model.HeadingEntry{},
		}
		if werr := r.writeResult(path, sentinel); werr != nil {
			return fmt.Errorf("extraction failed (%w), and writing sentinel failed: %v", err, werr)
		}
		return err
	}

	r.logger.Info("extracted outline",
		"file", filepath.Base(path),
		"headings", len(result.Outline),
	)
	return r.writeResult(path, result)
}

// writeResult persists a result record next to the input file's stem.
func (r *Runner) writeResult(inputPath string, result model.OutlineResult) error {
	data, err := sonic.ConfigDefault.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	outPath := filepath.Join(r.config.OutputDir, outputStem(inputPath)+".json")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// outputStem returns the input filename without directory or extension.
func outputStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
