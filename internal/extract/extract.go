// Package extract turns a proposal reference (a URL or an uploaded document)
// into a normalized ProposalContent record.
package extract

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/govlens/govlens/internal/model"
)

// Extraction failure conditions. Stage errors wrap one of these so the HTTP
// layer can classify them without string matching.
var (
	// ErrInvalidReference marks a malformed proposal reference.
	ErrInvalidReference = eris.New("extract: invalid proposal reference")
	// ErrUpstreamDataMissing marks a remote source that answered without a
	// usable proposal payload.
	ErrUpstreamDataMissing = eris.New("extract: upstream returned no proposal data")
	// ErrFetchFailed marks a network or HTTP failure while fetching a source.
	ErrFetchFailed = eris.New("extract: fetch failed")
)

// Extractor fetches a proposal from one kind of source URL.
type Extractor interface {
	Name() string
	Supports(url string) bool
	Extract(ctx context.Context, url string) (*model.ProposalContent, error)
}

// Chain dispatches a URL to the first extractor that supports it.
// Extractors are consulted in registration order; the generic HTML extractor
// supports every URL and is expected to be registered last.
type Chain struct {
	extractors []Extractor
}

// NewChain creates a Chain with the given extractors.
func NewChain(extractors ...Extractor) *Chain {
	return &Chain{extractors: extractors}
}

// Extract classifies the URL and runs the matching extractor.
func (c *Chain) Extract(ctx context.Context, url string) (*model.ProposalContent, error) {
	for _, e := range c.extractors {
		if !e.Supports(url) {
			continue
		}
		zap.L().Debug("extract: dispatching",
			zap.String("extractor", e.Name()),
			zap.String("url", url),
		)
		return e.Extract(ctx, url)
	}
	return nil, eris.Wrapf(ErrInvalidReference, "no extractor for url %s", url)
}
