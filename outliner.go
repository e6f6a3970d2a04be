// Package outliner provides a fluent API for inferring a document title
// and a flat H1-H3 heading outline from PDF files.
//
// Basic usage:
//
//	result, err := outliner.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// With options:
//
//	result, err := outliner.Open("report.pdf").
//	    MaxHeadings(50).
//	    Outline()
//
// Fragment sequences obtained elsewhere can be analyzed directly:
//
//	result, err := outliner.FromFragments(fragments).Outline()
//
// For advanced use cases, the lower-level reader and layout packages are
// also available.
package outliner

import (
	"fmt"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/reader"
)

// Extractor provides a fluent interface for outline extraction. Each
// configuration method returns a new Extractor instance, making it safe
// for concurrent use and allowing method chaining.
type Extractor struct {
	// Source: either a filename or a pre-extracted fragment sequence.
	// hasFragments distinguishes an empty fragment source from a file
	// source.
	filename     string
	fragments    []model.TextFragment
	hasFragments bool

	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// Open prepares a PDF file for outline extraction.
//
// Example:
//
//	result, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromFragments prepares a pre-extracted fragment sequence for outline
// extraction. Fragment text must already be normalized; reader
// implementations do this at ingestion.
func FromFragments(fragments []model.TextFragment) *Extractor {
	return &Extractor{
		fragments:    fragments,
		hasFragments: true,
		options:      defaultOptions(),
	}
}

// clone creates a copy of the Extractor with a deep copy of options. This
// ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		fragments:    e.fragments,
		hasFragments: e.hasFragments,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// Fragments returns the document's text fragments, reading them from the
// source file if the Extractor was created with Open.
func (e *Extractor) Fragments() ([]model.TextFragment, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.hasFragments {
		return e.fragments, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.Fragments()
}

// Outline runs the full inference and returns the title and heading
// outline. A document that yields no fragments produces the untitled
// sentinel with an empty outline rather than an error.
func (e *Extractor) Outline() (model.OutlineResult, error) {
	fragments, err := e.Fragments()
	if err != nil {
		return model.OutlineResult{}, err
	}

	builder := layout.NewBuilderWithConfig(layout.BuilderConfig{
		MaxHeadings: e.options.maxHeadings,
	})
	return builder.Build(fragments), nil
}

// Title runs title selection only and returns the inferred document title.
func (e *Extractor) Title() (string, error) {
	result, err := e.Outline()
	if err != nil {
		return "", err
	}
	return result.Title, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := outliner.Must(outliner.Open("document.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
