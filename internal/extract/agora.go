package extract

import (
	"context"
	"strings"

	"github.com/govlens/govlens/internal/model"
)

const (
	agoraHost         = "vote.uniswapfoundation.org"
	agoraOrganization = "Uniswap Foundation"
)

// AgoraExtractor scrapes the Uniswap Agora voting site, whose page layout is
// known well enough for targeted selectors.
type AgoraExtractor struct {
	fetcher *PageFetcher
}

// NewAgoraExtractor creates an AgoraExtractor using the shared page fetcher.
func NewAgoraExtractor(fetcher *PageFetcher) *AgoraExtractor {
	return &AgoraExtractor{fetcher: fetcher}
}

func (e *AgoraExtractor) Name() string { return "agora" }

func (e *AgoraExtractor) Supports(url string) bool {
	return strings.Contains(url, agoraHost)
}

func (e *AgoraExtractor) Extract(ctx context.Context, url string) (*model.ProposalContent, error) {
	doc, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	// Agora renders the proposal name as an h2; older pages use h1.
	title := firstHeading(doc, "h2", "h1")
	if title == "" {
		title = model.PlaceholderTitle
	}

	content := selectorText(doc,
		"article, .proposal-content, .content",
		".main-content, .proposal-details, .description",
	)
	if content == "" {
		content = strings.TrimSpace(doc.Find("body").Text())
	}
	if content == "" {
		content = model.PlaceholderContent
	}

	return &model.ProposalContent{
		Title:        title,
		Content:      content,
		Platform:     model.PlatformAgora,
		Organization: agoraOrganization,
	}, nil
}
