package layout

import (
	"regexp"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/textproc"
)

// Pattern-family contributions to the heading score.
const (
	scoreNumbered       = 4
	scoreChapterSection = 5
	scoreAllCaps        = 3
	scoreTitleCase      = 2
)

// Score thresholds mapping the accumulated score to a level.
const (
	thresholdH1 = 6
	thresholdH2 = 4
	thresholdH3 = 3
)

// Classifier maps a text fragment to a heading level (or rejection) by
// combining pattern matching, the fragment's font-size ratio against the
// document average, and the bold signal. It is immutable after construction
// and safe for concurrent use.
type Classifier struct {
	patterns *PatternLibrary
	filter   *NonHeadingFilter

	// Strict single-level decimal numbering prefixes. These override the
	// score entirely: "1. " is always H1, "1.1 " H2, "1.1.1 " H3.
	decimalH1 *regexp.Regexp
	decimalH2 *regexp.Regexp
	decimalH3 *regexp.Regexp
}

// NewClassifier creates a classifier with the default pattern library and
// non-heading filter.
func NewClassifier() *Classifier {
	return NewClassifierWith(NewPatternLibrary(), NewNonHeadingFilter())
}

// NewClassifierWith creates a classifier using the given pattern library
// and filter, which lets callers share the compiled vocabularies across
// components.
func NewClassifierWith(patterns *PatternLibrary, filter *NonHeadingFilter) *Classifier {
	return &Classifier{
		patterns:  patterns,
		filter:    filter,
		decimalH1: regexp.MustCompile(`^\d+\.\s+`),
		decimalH2: regexp.MustCompile(`^\d+\.\d+\s+`),
		decimalH3: regexp.MustCompile(`^\d+\.\d+\.\d+\s+`),
	}
}

// Classify decides the heading level for a normalized text fragment.
// It returns model.LevelNone when the fragment is not a heading.
//
// stats.MaxSize and script are accepted but currently inert; they are
// reserved signals for future pattern weighting and do not alter the
// decision.
func (c *Classifier) Classify(text string, fontSize float64, bold bool, stats model.FontStatistics, script textproc.Script) model.HeadingLevel {
	_ = script

	if c.filter.Reject(text) {
		return model.LevelNone
	}

	_, family := c.patterns.Match(text)

	// Strict decimal numbering decides the level directly, regardless of
	// font size or boldness.
	switch {
	case c.decimalH1.MatchString(text):
		return model.LevelH1
	case c.decimalH2.MatchString(text):
		return model.LevelH2
	case c.decimalH3.MatchString(text):
		return model.LevelH3
	}

	// Chapter/Section/Part keywords are always top level.
	if family == FamilyChapterSection {
		return model.LevelH1
	}

	score := 0

	switch family {
	case FamilyNumbered:
		score += scoreNumbered
	case FamilyChapterSection:
		score += scoreChapterSection
	case FamilyAllCaps:
		score += scoreAllCaps
	case FamilyTitleCase:
		score += scoreTitleCase
	}

	ratio := 1.0
	if stats.AverageSize > 0 {
		ratio = fontSize / stats.AverageSize
	}
	switch {
	case ratio > 1.8:
		score += 4
	case ratio > 1.5:
		score += 3
	case ratio > 1.2:
		score += 2
	case ratio > 1.1:
		score += 1
	}

	if bold {
		score += 2
	}

	switch {
	case score >= thresholdH1:
		return model.LevelH1
	case score >= thresholdH2:
		return model.LevelH2
	case score >= thresholdH3:
		return model.LevelH3
	default:
		return model.LevelNone
	}
}
