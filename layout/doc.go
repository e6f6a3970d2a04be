// Package layout infers a document title and a flat H1-H3 heading outline
// from a sequence of positioned, font-annotated text fragments.
//
// # Pipeline
//
// The [Builder] orchestrates the full inference pass:
//
//	builder := layout.NewBuilder()
//	result := builder.Build(fragments)
//
// Internally each fragment flows through [NonHeadingFilter] (stop words,
// length bounds, numeric strings), [PatternLibrary] (numbered,
// chapter/section, all-caps, and title-case families across several
// scripts), and [Classifier] (a scoring function over pattern, font-size
// ratio, and boldness), while [TitleSelector] picks the title from the
// first two pages by font size and position.
//
// # Determinism
//
// For identical fragment sequences the output is byte-identical: all
// vocabularies and patterns are fixed at construction, sorting is stable,
// and no map iteration order reaches the result.
//
// # Heuristic constants
//
// The font-ratio bands, pattern scores, and level thresholds are part of
// the behavioral contract and are preserved exactly; they are not tuned
// per document.
package layout
