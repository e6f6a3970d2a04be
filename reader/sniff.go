package reader

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

var pdfMagic = []byte("%PDF-")

// sniffPDF checks the file's magic bytes so that mislabeled files fail
// with a clear error before the full parse is attempted.
func sniffPDF(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	magic := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, magic); err != nil {
		return fmt.Errorf("not a PDF file: %s", filename)
	}
	if !bytes.Equal(magic, pdfMagic) {
		return fmt.Errorf("not a PDF file: %s", filename)
	}
	return nil
}
