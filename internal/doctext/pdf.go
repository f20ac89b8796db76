package doctext

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"
)

// PDF extracts text from PDF files in-process, reading the whole file into
// memory. No external binaries required.
type PDF struct{}

// NewPDF creates a pure-Go PDF text extractor.
func NewPDF() *PDF {
	return &PDF{}
}

// ExtractText parses the PDF at path and returns its plain text.
func (p *PDF) ExtractText(_ context.Context, path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", eris.Wrapf(err, "doctext: read %s", path)
	}

	reader, err := pdf.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return "", eris.Wrapf(err, "doctext: parse pdf %s", path)
	}

	text, err := reader.GetPlainText()
	if err != nil {
		return "", eris.Wrapf(err, "doctext: extract text from %s", path)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, text); err != nil {
		return "", eris.Wrapf(err, "doctext: read text from %s", path)
	}

	return sb.String(), nil
}
