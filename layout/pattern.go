package layout

import "regexp"

// PatternFamily identifies which heading-pattern family a text matched.
type PatternFamily int

const (
	FamilyNone PatternFamily = iota
	FamilyNumbered
	FamilyChapterSection
	FamilyAllCaps
	FamilyTitleCase
)

// String returns a string representation of the pattern family.
func (f PatternFamily) String() string {
	switch f {
	case FamilyNumbered:
		return "numbered"
	case FamilyChapterSection:
		return "chapter_section"
	case FamilyAllCaps:
		return "all_caps"
	case FamilyTitleCase:
		return "title_case"
	default:
		return "none"
	}
}

// patternEntry pairs a compiled pattern with the family it belongs to.
type patternEntry struct {
	re     *regexp.Regexp
	family PatternFamily
}

// PatternLibrary is a fixed, ordered catalog of heading patterns. Families
// are evaluated in priority order (numbered, chapter_section, all_caps,
// title_case) and the first match wins. The library is immutable after
// construction and safe for concurrent use.
type PatternLibrary struct {
	entries []patternEntry
}

// NewPatternLibrary compiles the default multilingual pattern catalog.
func NewPatternLibrary() *PatternLibrary {
	add := func(entries []patternEntry, family PatternFamily, patterns ...string) []patternEntry {
		for _, p := range patterns {
			entries = append(entries, patternEntry{re: regexp.MustCompile(p), family: family})
		}
		return entries
	}

	var entries []patternEntry

	// Numbered enumerations at the start of text. The alphabetic and roman
	// forms require the trailing period so ordinary words do not register
	// as enumerations.
	entries = add(entries, FamilyNumbered,
		`^(?i)(?:\d+\.?\s*)+[^\d\s]`,     // 1., 1.1, 1.1.1
		`^(?i)(?:[IVX]+\.\s*)+`,          // IV.
		`^(?i)(?:[A-Z]\.\s*)+`,           // A., B.
		`^(?:\([0-9]+\)\s*)`,             // (1), (2)
		`^(?:\[[0-9]+\]\s*)`,             // [1], [2]
	)

	// Chapter/Section/Part keywords followed by a numeral, across several
	// languages.
	entries = add(entries, FamilyChapterSection,
		`^(?i)(?:Chapter|Section|Part)\s+(?:\d+|[IVX]+)`,   // English
		`^(?i)(?:Kapitel|Abschnitt|Teil)\s+(?:\d+|[IVX]+)`, // German
		`^(?i)(?:Chapitre|Section|Partie)\s+(?:\d+|[IVX]+)`, // French
		`^(?i)(?:Capítulo|Sección|Parte)\s+(?:\d+|[IVX]+)`, // Spanish
		`^(?i)(?:Capitolo|Sezione|Parte)\s+(?:\d+|[IVX]+)`, // Italian
		`^(?i)(?:Capítulo|Seção|Parte)\s+(?:\d+|[IVX]+)`,   // Portuguese
		`^(?:第\d+章|第\d+節|第\d+部)`,                      // Japanese
		`^(?:第[一二三四五六七八九十\d]+章|第[一二三四五六七八九十\d]+节)`, // Chinese
	)

	// Three-or-more uppercase letters (Latin extended or Cyrillic),
	// optionally repeated as space-separated words, or a run of CJK/kana
	// characters which have no case concept.
	entries = add(entries, FamilyAllCaps,
		`^[A-Z\x{00C0}-\x{017F}\x{0400}-\x{04FF}]{3,}(?:\s+[A-Z\x{00C0}-\x{017F}\x{0400}-\x{04FF}]{3,})*\s*$`,
		`^[\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}]{3,}\s*$`,
	)

	// An initial capital followed by a lowercase or script letter and at
	// least two more characters.
	entries = add(entries, FamilyTitleCase,
		`^[A-Z\x{00C0}-\x{017F}][a-z\x{00C0}-\x{017F}\x{0400}-\x{04FF}\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}].{2,}$`,
	)

	return &PatternLibrary{entries: entries}
}

// Match tests text against the catalog in family priority order and returns
// whether any pattern matched along with the matching family. Unmatched
// text yields (false, FamilyNone).
func (l *PatternLibrary) Match(text string) (bool, PatternFamily) {
	for _, e := range l.entries {
		if e.re.MatchString(text) {
			return true, e.family
		}
	}
	return false, FamilyNone
}
