package extract

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/govlens/govlens/internal/doctext"
	"github.com/govlens/govlens/internal/model"
)

const documentTitle = "PDF Proposal"

// DocumentExtractor produces a ProposalContent from an uploaded document.
// Deleting the temporary file afterwards is the caller's job.
type DocumentExtractor struct {
	text doctext.Extractor
}

// NewDocumentExtractor creates a DocumentExtractor using the given text extractor.
func NewDocumentExtractor(text doctext.Extractor) *DocumentExtractor {
	return &DocumentExtractor{text: text}
}

// Extract reads the document at path and returns its text as proposal content.
func (e *DocumentExtractor) Extract(ctx context.Context, path string) (*model.ProposalContent, error) {
	content, err := e.text.ExtractText(ctx, path)
	if err != nil {
		return nil, eris.Wrapf(err, "extract: document %s", path)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		content = model.PlaceholderContent
	}

	return &model.ProposalContent{
		Title:        documentTitle,
		Content:      content,
		Platform:     model.PlatformPDF,
		Organization: model.PlaceholderOrganization,
	}, nil
}
