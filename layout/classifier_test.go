package layout

import (
	"testing"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/textproc"
)

// stats12 is a convenient document baseline: 12pt average.
var stats12 = model.FontStatistics{AverageSize: 12, MaxSize: 24}

func TestClassifyDecimalOverrides(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name     string
		text     string
		fontSize float64
		bold     bool
		expected model.HeadingLevel
	}{
		// The single-level decimal prefixes decide the level regardless
		// of any font or bold signal.
		{"h1 tiny font", "1. Overview", 8, false, model.LevelH1},
		{"h1 huge font", "1. Overview", 40, true, model.LevelH1},
		{"h2 plain", "1.1 Background", 12, false, model.LevelH2},
		{"h2 despite h1-grade score", "1.1 Background", 30, true, model.LevelH2},
		{"h3 plain", "1.1.1 Detail", 12, false, model.LevelH3},
		{"h3 despite h1-grade score", "1.1.1 Detail", 30, true, model.LevelH3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text, tt.fontSize, tt.bold, stats12, textproc.Latin)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestClassifyChapterOverride(t *testing.T) {
	c := NewClassifier()

	// Keyword headings are H1 even at body font size without bold.
	for _, text := range []string{"Chapter 3", "chapter 3", "CHAPTER 3", "Kapitel 2", "第3章"} {
		if got := c.Classify(text, 12, false, stats12, textproc.Latin); got != model.LevelH1 {
			t.Errorf("Classify(%q) = %v, want H1", text, got)
		}
	}
}

func TestClassifyRejectsNonHeadings(t *testing.T) {
	c := NewClassifier()

	// The non-heading filter short-circuits before any scoring, so even a
	// maximal score cannot rescue a stop-word text.
	for _, text := range []string{"abstract", "Abstract", "Project Abstract", "Table of Contents"} {
		if got := c.Classify(text, 40, true, stats12, textproc.Latin); got != model.LevelNone {
			t.Errorf("Classify(%q) = %v, want none", text, got)
		}
	}
}

func TestClassifyScoreThresholds(t *testing.T) {
	c := NewClassifier()

	// "Background Material" matches only the title_case family (+2).
	tests := []struct {
		name     string
		fontSize float64 // against 12pt average
		bold     bool
		expected model.HeadingLevel
	}{
		// +2 pattern, +1 ratio (1.15), +2 bold = 5 -> H2
		{"score five", 13.8, true, model.LevelH2},
		// +2 pattern, +0 ratio (1.05), +2 bold = 4 -> H2
		{"score four", 12.6, true, model.LevelH2},
		// +2 pattern, +1 ratio (1.15) = 3 -> H3
		{"score three", 13.8, false, model.LevelH3},
		// +2 pattern, +0 ratio (1.05) = 2 -> none
		{"score two", 12.6, false, model.LevelNone},
		// +2 pattern, +4 ratio (2.0), +2 bold = 8 -> H1
		{"score eight", 24, true, model.LevelH1},
		// ratio exactly 1.5 falls into the >1.2 band: +2 pattern, +2 ratio,
		// +2 bold = 6 -> H1
		{"ratio boundary", 18, true, model.LevelH1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify("Background Material", tt.fontSize, tt.bold, stats12, textproc.Latin)
			if got != tt.expected {
				t.Errorf("Classify(fontSize=%v, bold=%v) = %v, want %v",
					tt.fontSize, tt.bold, got, tt.expected)
			}
		})
	}
}

func TestClassifyScoreByFamily(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name     string
		text     string
		fontSize float64
		bold     bool
		expected model.HeadingLevel
	}{
		// all_caps (+3) alone crosses the H3 threshold
		{"all caps body size", "RESULTS AND FINDINGS", 12, false, model.LevelH3},
		// all_caps (+3) with a doubled font (+4) reaches H1
		{"all caps large", "RESULTS AND FINDINGS", 24, false, model.LevelH1},
		// roman numbered (+4) at body size is H2
		{"roman numbered", "IV. Results", 12, false, model.LevelH2},
		// no family, no signals: rejected
		{"plain lowercase", "the quick brown fox", 12, false, model.LevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text, tt.fontSize, tt.bold, stats12, textproc.Latin)
			if got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestClassifyZeroAverageFontSize(t *testing.T) {
	c := NewClassifier()

	// A zero average degrades the ratio to 1 (+0) instead of dividing by
	// zero: title_case (+2) + bold (+2) = 4 -> H2.
	got := c.Classify("Background Material", 24, true, model.FontStatistics{}, textproc.Latin)
	if got != model.LevelH2 {
		t.Errorf("Classify with zero stats = %v, want H2", got)
	}
}

func TestClassifyInertParameters(t *testing.T) {
	c := NewClassifier()

	// MaxSize and script are reserved signals: varying them never changes
	// the decision.
	base := c.Classify("Background Material", 18, true, model.FontStatistics{AverageSize: 12, MaxSize: 18}, textproc.Latin)
	for _, script := range []textproc.Script{textproc.Latin, textproc.Cyrillic, textproc.CJK, textproc.Arabic} {
		for _, max := range []float64{0, 12, 96} {
			got := c.Classify("Background Material", 18, true, model.FontStatistics{AverageSize: 12, MaxSize: max}, script)
			if got != base {
				t.Errorf("Classify varied with inert parameters (script=%v, max=%v): %v != %v",
					script, max, got, base)
			}
		}
	}
}
