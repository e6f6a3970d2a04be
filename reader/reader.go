package reader

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/tsawler/outliner/model"
)

// defaultPageHeight is assumed when a page carries no usable dimensions
// (US Letter height in points).
const defaultPageHeight = 792.0

// Reader yields text fragments from a PDF document. It is not safe for
// concurrent use; open one Reader per goroutine.
type Reader struct {
	filename string
	file     *os.File
	pdf      *pdf.Reader
	dims     []types.Dim
}

// Open validates a PDF and prepares it for fragment extraction. The
// returned Reader must be closed when done.
func Open(filename string) (*Reader, error) {
	if err := sniffPDF(filename); err != nil {
		return nil, err
	}

	dims, err := pageDims(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to validate PDF: %w", err)
	}

	f, r, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	return &Reader{
		filename: filename,
		file:     f,
		pdf:      r,
		dims:     dims,
	}, nil
}

// pageDims validates the document with pdfcpu and returns per-page media
// box dimensions in points.
func pageDims(filename string) ([]types.Dim, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := pdfapi.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	return ctx.PageDims()
}

// Close releases the underlying file. It is safe to call Close multiple
// times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// Fragments extracts all text fragments of the document in page order.
// Fragment text is normalized and empty fragments are dropped. Pages whose
// content streams cannot be decoded are skipped rather than failing the
// whole document.
func (r *Reader) Fragments() ([]model.TextFragment, error) {
	var fragments []model.TextFragment

	for pageNum := 1; pageNum <= r.pdf.NumPage(); pageNum++ {
		page := r.pdf.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		runs, err := pageRuns(page)
		if err != nil {
			continue
		}

		fragments = append(fragments, buildFragments(runs, pageNum, r.pageHeight(pageNum))...)
	}

	return fragments, nil
}

// pageHeight returns the media box height of a 1-based page.
func (r *Reader) pageHeight(pageNum int) float64 {
	if pageNum < 1 || pageNum > len(r.dims) {
		return defaultPageHeight
	}
	h := r.dims[pageNum-1].Height
	if h <= 0 {
		return defaultPageHeight
	}
	return h
}

// pageRuns pulls the styled text runs of one page. The underlying parser
// panics on malformed content streams, so the panic is converted to an
// error here.
func pageRuns(page pdf.Page) (runs []pdf.Text, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed page content: %v", rec)
		}
	}()

	return page.Content().Text, nil
}
