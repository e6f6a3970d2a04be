// Package textproc provides text canonicalization and writing-system
// detection for document fragments.
//
// # Normalization
//
// [Normalize] collapses whitespace runs and applies Unicode NFKC
// composition so visually equivalent code-point sequences compare equal:
//
//	textproc.Normalize("Ｈｅｌｌｏ\n  World") // "Hello World"
//
// # Script Detection
//
// [DetectScript] classifies a text sample into one of four broad script
// buckets ([Latin], [Cyrillic], [CJK], [Arabic]) by counting characters in
// fixed Unicode ranges. [SampleText] builds the per-document sample from
// the first fragments of the first pages.
package textproc
