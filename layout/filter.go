package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Heading text length bounds (in characters, inclusive).
const (
	minHeadingLength = 3
	maxHeadingLength = 200
)

// nonHeadingWords maps a language to front-matter words that mark text as
// body furniture rather than a heading: equivalents of abstract,
// introduction, table of contents, references, and bibliography. Matching
// is by lower-cased substring.
var nonHeadingWords = map[string][]string{
	"english":  {"abstract", "introduction", "contents", "table of contents", "references", "bibliography"},
	"german":   {"zusammenfassung", "einleitung", "inhaltsverzeichnis", "literatur", "bibliographie"},
	"french":   {"résumé", "introduction", "table des matières", "références", "bibliographie"},
	"spanish":  {"resumen", "introducción", "índice", "referencias", "bibliografía"},
	"japanese": {"要約", "概要", "目次", "参考文献"},
	"chinese":  {"摘要", "简介", "目录", "参考文献"},
	"arabic":   {"ملخص", "مقدمة", "فهرس", "مراجع"},
}

// NonHeadingFilter rejects text that is unlikely to be a heading: known
// front-matter words in several languages, text outside the length bounds,
// and pure numeric or date-like strings. The filter is immutable after
// construction and safe for concurrent use.
type NonHeadingFilter struct {
	stopWords   []string
	numericOnly *regexp.Regexp
}

// NewNonHeadingFilter creates a filter with the default multilingual
// vocabulary.
func NewNonHeadingFilter() *NonHeadingFilter {
	// Flatten the per-language lists in a fixed order so behavior never
	// depends on map iteration.
	langs := []string{"english", "german", "french", "spanish", "japanese", "chinese", "arabic"}
	var words []string
	for _, lang := range langs {
		words = append(words, nonHeadingWords[lang]...)
	}

	return &NonHeadingFilter{
		stopWords:   words,
		numericOnly: regexp.MustCompile(`^[\d\s\-/.]+$`),
	}
}

// Reject reports whether text is likely not a heading. It returns true when
// the lower-cased text contains any stop word, when the character count is
// below 3 or above 200, or when the text consists entirely of digits,
// whitespace, hyphens, slashes, and periods.
func (f *NonHeadingFilter) Reject(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range f.stopWords {
		if strings.Contains(lower, w) {
			return true
		}
	}

	if n := utf8.RuneCountInString(text); n < minHeadingLength || n > maxHeadingLength {
		return true
	}

	return f.numericOnly.MatchString(text)
}
