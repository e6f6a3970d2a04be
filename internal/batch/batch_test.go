package batch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/outliner/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewAppliesDefaults(t *testing.T) {
	r := New(Config{InputDir: "in", OutputDir: "out"})

	if r.config.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", r.config.Workers, DefaultWorkers)
	}
	if r.config.MaxHeadings != 100 {
		t.Errorf("MaxHeadings = %d, want 100", r.config.MaxHeadings)
	}
	if r.logger == nil {
		t.Error("logger is nil")
	}
}

func TestOutputStem(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/input/report.pdf", "report"},
		{"report.pdf", "report"},
		{"/a/b/annual.report.pdf", "annual.report"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		if got := outputStem(tt.path); got != tt.expected {
			t.Errorf("outputStem(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestWriteResult(t *testing.T) {
	outDir := t.TempDir()
	r := New(Config{OutputDir: outDir, Logger: testLogger()})

	result := model.OutlineResult{
		Title: "Sample Document",
		Outline: []model.HeadingEntry{
			{Level: model.LevelH1, Text: "Chapter 1", Page: 1},
		},
	}
	if err := r.writeResult("/input/sample.pdf", result); err != nil {
		t.Fatalf("writeResult failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "sample.json"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var back model.OutlineResult
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if back.Title != "Sample Document" {
		t.Errorf("Title = %q, want %q", back.Title, "Sample Document")
	}
	if len(back.Outline) != 1 || back.Outline[0].Level != model.LevelH1 {
		t.Errorf("Outline = %+v", back.Outline)
	}
}

func TestProcessWritesSentinelOnFailure(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	// Not a PDF at all: validation fails, but a well-formed sentinel
	// record must still land in the output directory.
	badPath := filepath.Join(inDir, "broken.pdf")
	if err := os.WriteFile(badPath, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := New(Config{InputDir: inDir, OutputDir: outDir, Logger: testLogger()})
	if err := r.Process(badPath); err == nil {
		t.Error("Process should report the extraction error")
	}

	data, err := os.ReadFile(filepath.Join(outDir, "broken.json"))
	if err != nil {
		t.Fatalf("sentinel record missing: %v", err)
	}

	var result model.OutlineResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("sentinel is not valid JSON: %v", err)
	}
	if result.Title != model.ErrorTitle {
		t.Errorf("Title = %q, want %q", result.Title, model.ErrorTitle)
	}
	if result.Outline == nil || len(result.Outline) != 0 {
		t.Errorf("Outline = %+v, want empty", result.Outline)
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	r := New(Config{
		InputDir:  t.TempDir(),
		OutputDir: t.TempDir(),
		Logger:    testLogger(),
	})

	summary, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Processed != 0 || summary.Failed != 0 {
		t.Errorf("summary = %+v, want zero", summary)
	}
}

func TestRunCountsFailures(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	for _, name := range []string{"a.pdf", "b.pdf"} {
		if err := os.WriteFile(filepath.Join(inDir, name), []byte("garbage"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	r := New(Config{InputDir: inDir, OutputDir: outDir, Logger: testLogger()})
	summary, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Failed != 2 || summary.Processed != 0 {
		t.Errorf("summary = %+v, want 2 failures", summary)
	}

	// Every input still produced a record.
	for _, name := range []string{"a.json", "b.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing record %s: %v", name, err)
		}
	}
}
