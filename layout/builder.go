package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/textproc"
)

// DefaultMaxHeadings caps the outline length.
const DefaultMaxHeadings = 100

// BuilderConfig holds configuration for outline building.
type BuilderConfig struct {
	// MaxHeadings is the maximum number of outline entries to keep after
	// sorting. Default: 100.
	MaxHeadings int
}

// DefaultBuilderConfig returns the default configuration.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{MaxHeadings: DefaultMaxHeadings}
}

// Builder runs the full title and outline inference over a fragment
// sequence: document font statistics, script detection, title selection,
// per-fragment classification with deduplication, and final ordering.
//
// A Builder is immutable after construction and safe for concurrent use;
// each Build call works only on its own inputs.
type Builder struct {
	config     BuilderConfig
	classifier *Classifier
	titles     *TitleSelector
}

// NewBuilder creates a builder with default configuration.
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultBuilderConfig())
}

// NewBuilderWithConfig creates a builder with custom configuration. The
// classifier and title selector share one compiled vocabulary set.
func NewBuilderWithConfig(config BuilderConfig) *Builder {
	if config.MaxHeadings <= 0 {
		config.MaxHeadings = DefaultMaxHeadings
	}

	filter := NewNonHeadingFilter()
	return &Builder{
		config:     config,
		classifier: NewClassifierWith(NewPatternLibrary(), filter),
		titles:     NewTitleSelectorWith(filter),
	}
}

// Build infers the title and heading outline from a fragment sequence.
// Fragment text is expected to be normalized already (readers apply
// textproc.Normalize at ingestion). An empty sequence yields the untitled
// sentinel with an empty outline. The returned Outline is never nil.
func (b *Builder) Build(fragments []model.TextFragment) model.OutlineResult {
	if len(fragments) == 0 {
		return model.OutlineResult{
			Title:   model.UntitledTitle,
			Outline: []model.HeadingEntry{},
		}
	}

	stats := model.NewFontStatistics(fragments)
	script := textproc.DetectScript(textproc.SampleText(fragments))
	title := b.titles.Select(fragments)

	outline := make([]model.HeadingEntry, 0)
	seen := make(map[string]struct{})

	for _, f := range fragments {
		text := strings.TrimSpace(f.Text)
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}

		level := b.classifier.Classify(text, f.FontSize, f.IsBold(), stats, script)
		if level == model.LevelNone {
			continue
		}

		outline = append(outline, model.HeadingEntry{
			Level: level,
			Text:  text,
			Page:  f.Page,
		})
		seen[text] = struct{}{}
	}

	sort.SliceStable(outline, func(i, j int) bool {
		if outline[i].Page != outline[j].Page {
			return outline[i].Page < outline[j].Page
		}
		return outline[i].Level < outline[j].Level
	})

	if len(outline) > b.config.MaxHeadings {
		outline = outline[:b.config.MaxHeadings]
	}

	return model.OutlineResult{Title: title, Outline: outline}
}
