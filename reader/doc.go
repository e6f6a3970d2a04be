// Package reader extracts positioned, font-annotated text fragments from
// PDF documents.
//
// The reader is the parsing collaborator for the layout engine: it opens a
// paged document and yields one [model.TextFragment] per visually distinct
// styled text run, grouped by page in ascending page order. Fragment text
// is normalized at ingestion and empty fragments are dropped.
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	fragments, err := r.Fragments()
//
// Documents are validated with pdfcpu before run extraction starts, so a
// corrupt file fails at Open rather than mid-extraction.
package reader
