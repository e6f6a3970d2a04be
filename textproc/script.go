package textproc

import (
	"strings"

	"github.com/tsawler/outliner/model"
)

// Script is a broad writing-system bucket. It is a per-document signal
// computed once; ties in the character counts resolve to the earliest
// bucket in declaration order, so an empty sample yields Latin.
type Script int

const (
	Latin Script = iota
	Cyrillic
	CJK
	Arabic
)

// scripts lists all buckets in their fixed tie-break order.
var scripts = [...]Script{Latin, Cyrillic, CJK, Arabic}

// String returns a string representation of the script bucket.
func (s Script) String() string {
	switch s {
	case Latin:
		return "latin"
	case Cyrillic:
		return "cyrillic"
	case CJK:
		return "cjk"
	case Arabic:
		return "arabic"
	default:
		return "unknown"
	}
}

// sampleFragmentLimit and samplePageLimit bound the text sample used for
// script detection: the first 50 fragments, restricted to pages 1-3.
const (
	sampleFragmentLimit = 50
	samplePageLimit     = 3
)

// SampleText builds the script-detection sample for a document: the first
// 50 fragments restricted to pages 1-3, joined with single spaces.
func SampleText(fragments []model.TextFragment) string {
	head := fragments
	if len(head) > sampleFragmentLimit {
		head = head[:sampleFragmentLimit]
	}

	parts := make([]string, 0, len(head))
	for _, f := range head {
		if f.Page <= samplePageLimit {
			parts = append(parts, f.Text)
		}
	}
	return strings.Join(parts, " ")
}

// DetectScript classifies the dominant writing system of a text sample by
// counting characters in four disjoint Unicode ranges:
//
//   - Latin (incl. extended): U+0020-U+024F
//   - Cyrillic:               U+0400-U+04FF
//   - CJK (kana + ideographs): U+3040-U+9FAF
//   - Arabic:                 U+0600-U+06FF
//
// The bucket with the highest count wins; a strict greater-than scan in
// declaration order makes ties (and the empty sample) resolve to the
// earliest bucket, Latin.
func DetectScript(sample string) Script {
	var counts [len(scripts)]int

	for _, r := range sample {
		switch {
		case r >= 0x0020 && r <= 0x024F:
			counts[Latin]++
		case r >= 0x0400 && r <= 0x04FF:
			counts[Cyrillic]++
		case r >= 0x3040 && r <= 0x9FAF:
			counts[CJK]++
		case r >= 0x0600 && r <= 0x06FF:
			counts[Arabic]++
		}
	}

	best := scripts[0]
	for _, s := range scripts[1:] {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}
