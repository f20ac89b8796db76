package main

import (
	"time"

	"github.com/govlens/govlens/internal/analyze"
	"github.com/govlens/govlens/internal/config"
	"github.com/govlens/govlens/internal/doctext"
	"github.com/govlens/govlens/internal/extract"
	"github.com/govlens/govlens/pkg/openai"
	"github.com/govlens/govlens/pkg/tally"
)

// newAnalyzer wires the extraction chain, document extractor, and completion
// client from config. Shared by the serve and analyze commands.
func newAnalyzer(c *config.Config) (*analyze.Analyzer, error) {
	text, err := doctext.New(c.Doctext)
	if err != nil {
		return nil, err
	}

	fetcher := extract.NewPageFetcher(
		time.Duration(c.Fetch.TimeoutSecs)*time.Second,
		c.Fetch.UserAgent,
		c.Fetch.RatePerSec,
	)

	var tallyOpts []tally.Option
	if c.Tally.BaseURL != "" {
		tallyOpts = append(tallyOpts, tally.WithBaseURL(c.Tally.BaseURL))
	}

	// The generic extractor supports every URL and must stay last.
	chain := extract.NewChain(
		extract.NewTallyExtractor(tally.NewClient(c.Tally.Key, tallyOpts...)),
		extract.NewAgoraExtractor(fetcher),
		extract.NewGenericExtractor(fetcher),
	)

	llmOpts := []openai.Option{openai.WithModel(c.OpenAI.Model)}
	if c.OpenAI.BaseURL != "" {
		llmOpts = append(llmOpts, openai.WithBaseURL(c.OpenAI.BaseURL))
	}
	llm := openai.NewClient(c.OpenAI.Key, llmOpts...)

	return analyze.New(chain, extract.NewDocumentExtractor(text), llm, c.OpenAI.Model), nil
}
