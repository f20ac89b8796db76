package extract

import (
	"context"
	"strings"

	"github.com/govlens/govlens/internal/model"
)

// GenericExtractor scrapes any proposal page with a broad selector list.
// It supports every URL and backs the end of the extraction chain.
type GenericExtractor struct {
	fetcher *PageFetcher
}

// NewGenericExtractor creates a GenericExtractor using the shared page fetcher.
func NewGenericExtractor(fetcher *PageFetcher) *GenericExtractor {
	return &GenericExtractor{fetcher: fetcher}
}

func (e *GenericExtractor) Name() string { return "generic" }

func (e *GenericExtractor) Supports(_ string) bool { return true }

func (e *GenericExtractor) Extract(ctx context.Context, url string) (*model.ProposalContent, error) {
	doc, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	title := firstHeading(doc, "h1, h2")
	if title == "" {
		title = model.PlaceholderTitle
	}

	content := selectorText(doc, "article, .content, .proposal-content, .description, .main-content")
	if content == "" {
		content = strings.TrimSpace(doc.Find("body").Text())
	}
	if content == "" {
		content = model.PlaceholderContent
	}

	return &model.ProposalContent{
		Title:        title,
		Content:      content,
		Platform:     model.PlatformOther,
		Organization: model.PlaceholderOrganization,
	}, nil
}
