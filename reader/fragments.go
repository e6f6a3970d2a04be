package reader

import (
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/textproc"
)

// Run-merging tolerances, expressed as multiples of the font size.
const (
	// lineTolerance is the maximum baseline difference for two runs to
	// count as the same line (in points).
	lineTolerance = 0.5

	// spaceGapRatio is the horizontal gap beyond which a space is
	// inserted between merged runs.
	spaceGapRatio = 0.25

	// breakGapRatio is the horizontal gap beyond which runs belong to
	// separate fragments even on the same line.
	breakGapRatio = 3.0

	// Approximate ascent and descent of a glyph relative to its baseline,
	// used to derive a bounding box from baseline coordinates.
	ascentRatio  = 0.8
	descentRatio = 0.2
)

// fragmentBuilder accumulates adjacent same-style runs into one fragment.
type fragmentBuilder struct {
	sb       strings.Builder
	font     string
	fontSize float64
	baseline float64
	minX     float64
	maxX     float64
}

// accepts reports whether a run continues the current fragment: same font
// and size, same baseline, and horizontally adjacent moving rightward.
func (b *fragmentBuilder) accepts(t pdf.Text) bool {
	if t.Font != b.font || t.FontSize != b.fontSize {
		return false
	}
	if t.Y < b.baseline-lineTolerance || t.Y > b.baseline+lineTolerance {
		return false
	}
	gap := t.X - b.maxX
	return gap > -b.fontSize && gap <= b.fontSize*breakGapRatio
}

// add appends a run, inserting a space when the horizontal gap reads as a
// word boundary.
func (b *fragmentBuilder) add(t pdf.Text) {
	if t.X-b.maxX > b.fontSize*spaceGapRatio {
		b.sb.WriteByte(' ')
	}
	b.sb.WriteString(t.S)
	if right := t.X + t.W; right > b.maxX {
		b.maxX = right
	}
}

// buildFragments groups a page's text runs into styled fragments with
// top-left-origin bounding boxes. pageHeight converts the PDF's
// bottom-left-origin baselines.
func buildFragments(runs []pdf.Text, pageNum int, pageHeight float64) []model.TextFragment {
	var fragments []model.TextFragment
	var cur *fragmentBuilder

	flush := func() {
		if cur == nil {
			return
		}
		if f, ok := cur.fragment(pageNum, pageHeight); ok {
			fragments = append(fragments, f)
		}
		cur = nil
	}

	for _, t := range runs {
		if t.S == "" {
			continue
		}
		if cur != nil && cur.accepts(t) {
			cur.add(t)
			continue
		}
		flush()
		cur = &fragmentBuilder{
			font:     t.Font,
			fontSize: t.FontSize,
			baseline: t.Y,
			minX:     t.X,
			maxX:     t.X + t.W,
		}
		cur.sb.WriteString(t.S)
	}
	flush()

	return fragments
}

// fragment finalizes the accumulated runs. Fragments whose normalized text
// is empty are discarded.
func (b *fragmentBuilder) fragment(pageNum int, pageHeight float64) (model.TextFragment, bool) {
	text := textproc.Normalize(b.sb.String())
	if text == "" {
		return model.TextFragment{}, false
	}

	top := pageHeight - b.baseline - b.fontSize*ascentRatio
	bottom := pageHeight - b.baseline + b.fontSize*descentRatio

	return model.TextFragment{
		Text:     text,
		Page:     pageNum,
		FontSize: b.fontSize,
		FontName: b.font,
		BBox:     model.NewBBox(b.minX, top, b.maxX, bottom),
	}, true
}
