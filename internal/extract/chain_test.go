package extract

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govlens/govlens/internal/model"
)

// stubExtractor records whether it was called and returns a fixed record.
type stubExtractor struct {
	name     string
	supports func(string) bool
	called   bool
}

func (s *stubExtractor) Name() string              { return s.name }
func (s *stubExtractor) Supports(url string) bool  { return s.supports(url) }
func (s *stubExtractor) Extract(_ context.Context, _ string) (*model.ProposalContent, error) {
	s.called = true
	return &model.ProposalContent{
		Title:    "from " + s.name,
		Content:  "content",
		Platform: s.name,
	}, nil
}

func TestChain_DispatchOrder(t *testing.T) {
	first := &stubExtractor{name: "first", supports: func(u string) bool { return u == "https://first.example" }}
	second := &stubExtractor{name: "second", supports: func(string) bool { return true }}

	chain := NewChain(first, second)

	got, err := chain.Extract(context.Background(), "https://first.example")
	require.NoError(t, err)
	assert.Equal(t, "from first", got.Title)
	assert.True(t, first.called)
	assert.False(t, second.called)
}

func TestChain_FallsThroughToSupporting(t *testing.T) {
	first := &stubExtractor{name: "first", supports: func(string) bool { return false }}
	second := &stubExtractor{name: "second", supports: func(string) bool { return true }}

	chain := NewChain(first, second)

	got, err := chain.Extract(context.Background(), "https://anything.example")
	require.NoError(t, err)
	assert.Equal(t, "from second", got.Title)
	assert.False(t, first.called)
	assert.True(t, second.called)
}

func TestChain_NoExtractorSupports(t *testing.T) {
	only := &stubExtractor{name: "only", supports: func(string) bool { return false }}

	chain := NewChain(only)

	_, err := chain.Extract(context.Background(), "https://anything.example")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidReference))
}

func TestClassification(t *testing.T) {
	fetcher := NewPageFetcher(0, "", 0)
	tallyEx := NewTallyExtractor(nil)
	agoraEx := NewAgoraExtractor(fetcher)
	genericEx := NewGenericExtractor(fetcher)

	tests := []struct {
		url     string
		tally   bool
		agora   bool
		generic bool
	}{
		{"https://www.tally.xyz/gov/uniswap/proposal/123", true, false, true},
		{"https://vote.uniswapfoundation.org/proposal/123", false, true, true},
		{"https://forum.arbitrum.foundation/t/proposal/456", false, false, true},
		{"https://example.com", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.tally, tallyEx.Supports(tt.url))
			assert.Equal(t, tt.agora, agoraEx.Supports(tt.url))
			assert.Equal(t, tt.generic, genericEx.Supports(tt.url))
		})
	}
}
