// Package doctext extracts plain text from uploaded proposal documents.
package doctext

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/govlens/govlens/internal/config"
)

// Extractor extracts text content from document files.
type Extractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// New creates an Extractor based on config.
func New(cfg config.DoctextConfig) (Extractor, error) {
	switch cfg.Provider {
	case "pdf", "":
		return NewPDF(), nil
	case "pdftotext":
		return NewPdfToText(cfg.PdfToTextPath), nil
	default:
		return nil, eris.Errorf("doctext: unknown provider %q", cfg.Provider)
	}
}
