package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes raw fragment text: any run of whitespace
// (including tabs and newlines) collapses to a single space, leading and
// trailing whitespace is trimmed, and the result is NFKC-composed. Empty
// input yields an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text))

	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		inSpace = false
		sb.WriteRune(r)
	}

	return norm.NFKC.String(sb.String())
}
