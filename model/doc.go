// Package model defines the core data types shared across the outliner:
// positioned text fragments as produced by a document reader, document-wide
// font statistics, and the title/outline result record.
//
// All types are plain values with no hidden state. A fragment sequence is
// consumed once per extraction call; nothing in this package retains
// references across documents.
package model
