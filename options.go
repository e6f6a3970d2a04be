package outliner

import "github.com/tsawler/outliner/layout"

// DefaultMaxHeadings is the default cap on outline length.
const DefaultMaxHeadings = layout.DefaultMaxHeadings

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	maxHeadings int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		maxHeadings: layout.DefaultMaxHeadings,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		maxHeadings: o.maxHeadings,
	}
}

// MaxHeadings limits the outline to at most n entries (default 100).
// Values below 1 reset to the default.
func (e *Extractor) MaxHeadings(n int) *Extractor {
	newExt := e.clone()
	if n < 1 {
		n = layout.DefaultMaxHeadings
	}
	newExt.options.maxHeadings = n
	return newExt
}
