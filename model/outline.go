package model

import "fmt"

// Sentinel titles used when no real title can be produced. Callers
// distinguish an empty document from a failed one by which sentinel
// appears in the result.
const (
	UntitledTitle = "Untitled Document"
	ErrorTitle    = "Error Processing Document"
)

// HeadingLevel is a flat heading rank (H1-H3). Levels are totally ordered
// with H1 < H2 < H3; no parent/child nesting is modeled.
type HeadingLevel int

const (
	LevelNone HeadingLevel = iota // not a heading
	LevelH1
	LevelH2
	LevelH3
)

// String returns the wire representation of the level ("H1", "H2", "H3").
// LevelNone has no wire representation and returns an empty string.
func (l HeadingLevel) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return ""
	}
}

// MarshalJSON encodes the level as its string form, e.g. "H2".
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	s := l.String()
	if s == "" {
		return nil, fmt.Errorf("heading level %d has no JSON representation", int(l))
	}
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON decodes a level from its string form.
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"H1"`:
		*l = LevelH1
	case `"H2"`:
		*l = LevelH2
	case `"H3"`:
		*l = LevelH3
	default:
		return fmt.Errorf("invalid heading level %s", data)
	}
	return nil
}

// HeadingEntry is one detected heading. Within a single document no two
// entries share the same Text; the first occurrence in scan order wins.
type HeadingEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// OutlineResult is the final extraction record: a document title and a flat,
// leveled heading list sorted by (page, level) and capped at the builder's
// heading limit. Outline is never nil so the record always serializes with
// an "outline" array, even when empty.
type OutlineResult struct {
	Title   string         `json:"title"`
	Outline []HeadingEntry `json:"outline"`
}
