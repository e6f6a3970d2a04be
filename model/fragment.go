package model

import "strings"

// Font flag bits as supplied by document readers. The layout follows the
// common span-flag convention used by page-text extractors: bit 4 marks
// bold text.
const (
	FontFlagSuperscript = 1 << 0
	FontFlagItalic      = 1 << 1
	FontFlagSerifed     = 1 << 2
	FontFlagMonospaced  = 1 << 3
	FontFlagBold        = 1 << 4
)

// BBox is a text fragment's bounding rectangle in top-left-origin page
// coordinates: Y0 is the top edge, Y1 the bottom edge, and Y grows downward.
// Readers working in bottom-left-origin coordinates convert before emitting
// fragments, so a smaller Y0 always means "higher on the page".
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// NewBBox creates a bounding box from its corner coordinates.
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 {
	return b.Y0
}

// TextFragment is one styled run of text emitted by a document reader,
// together with its page number, font metadata, and position. Text is
// expected to be normalized (whitespace-collapsed, NFKC) at ingestion.
type TextFragment struct {
	Text      string
	Page      int // 1-based
	FontSize  float64
	FontFlags int
	FontName  string
	BBox      BBox
}

// IsBold reports whether the fragment is rendered bold. It checks the bold
// font flag first, then falls back to font-name markers so readers that
// carry style only in the font name still produce the signal.
func (f TextFragment) IsBold() bool {
	if f.FontFlags&FontFlagBold != 0 {
		return true
	}
	name := strings.ToLower(f.FontName)
	return strings.Contains(name, "bold") ||
		strings.Contains(name, "black") ||
		strings.Contains(name, "heavy") ||
		strings.Contains(name, "semibold") ||
		strings.Contains(name, "demibold")
}

// FontStatistics holds document-wide font size statistics, derived once per
// document from all fragments and read-only afterwards.
type FontStatistics struct {
	AverageSize float64
	MaxSize     float64
}

// defaultFontSize is assumed when a document yields no fragments.
const defaultFontSize = 12.0

// NewFontStatistics computes the arithmetic mean and maximum font size over
// a fragment sequence. An empty sequence yields the default size for both.
func NewFontStatistics(fragments []TextFragment) FontStatistics {
	if len(fragments) == 0 {
		return FontStatistics{AverageSize: defaultFontSize, MaxSize: defaultFontSize}
	}

	var sum, max float64
	for _, f := range fragments {
		sum += f.FontSize
		if f.FontSize > max {
			max = f.FontSize
		}
	}

	return FontStatistics{
		AverageSize: sum / float64(len(fragments)),
		MaxSize:     max,
	}
}
