package layout

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// Title-candidate bounds and limits.
const (
	titlePageLimit      = 2  // candidates come from the first two pages
	titleCandidateLimit = 15 // ranked candidates to inspect
	titleMinLength      = 5  // exclusive
	titleMaxLength      = 150 // exclusive
	fallbackMinLength   = 10 // exclusive
	fallbackMaxLength   = 100 // exclusive
)

// TitleSelector chooses a document title from first-page fragments, ranked
// by font size and vertical position. It is immutable after construction
// and safe for concurrent use.
type TitleSelector struct {
	filter     *NonHeadingFilter
	pageMarker *regexp.Regexp
	numbered   *regexp.Regexp
}

// NewTitleSelector creates a selector with the default non-heading filter.
func NewTitleSelector() *TitleSelector {
	return NewTitleSelectorWith(NewNonHeadingFilter())
}

// NewTitleSelectorWith creates a selector sharing the given filter.
func NewTitleSelectorWith(filter *NonHeadingFilter) *TitleSelector {
	return &TitleSelector{
		filter: filter,
		// Localized "Page" markers or a bare number at the start of text.
		pageMarker: regexp.MustCompile(`^(?i)(?:Page|页|頁|\d+)(?:\s|$)`),
		// Leading decimal numbering, so numbered headings are never
		// mistaken for the title.
		numbered: regexp.MustCompile(`^\d+\.`),
	}
}

// Select returns the document title inferred from fragments on the first
// two pages, or model.UntitledTitle when nothing suitable exists.
//
// Candidates are ranked by font size descending with ties broken
// top-to-bottom, and the best-ranked 15 are inspected. A candidate is
// skipped when the non-heading filter rejects it, when it looks like a
// page marker or a numbered heading, or when its length falls outside
// (5, 150). If no ranked candidate survives, the first-page fragments are
// rescanned in original order for the first text of length in (10, 100).
func (s *TitleSelector) Select(fragments []model.TextFragment) string {
	var candidates []model.TextFragment
	for _, f := range fragments {
		if f.Page <= titlePageLimit {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		return model.UntitledTitle
	}

	ranked := make([]model.TextFragment, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].FontSize != ranked[j].FontSize {
			return ranked[i].FontSize > ranked[j].FontSize
		}
		return ranked[i].BBox.Top() < ranked[j].BBox.Top()
	})

	limit := titleCandidateLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}
	for _, f := range ranked[:limit] {
		text := strings.TrimSpace(f.Text)

		if s.filter.Reject(text) {
			continue
		}
		if s.pageMarker.MatchString(text) {
			continue
		}

		n := utf8.RuneCountInString(text)
		if n > titleMinLength && n < titleMaxLength && !s.numbered.MatchString(text) {
			return text
		}
	}

	// Fallback: first substantial text in original order.
	for _, f := range candidates {
		text := strings.TrimSpace(f.Text)
		n := utf8.RuneCountInString(text)
		if n > fallbackMinLength && n < fallbackMaxLength {
			return text
		}
	}

	return model.UntitledTitle
}
