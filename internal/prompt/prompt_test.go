package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/govlens/govlens/internal/model"
)

func sampleContent() model.ProposalContent {
	return model.ProposalContent{
		Title:        "Deploy v4 hooks",
		Content:      "The proposal deploys v4 hooks on mainnet.",
		Platform:     "Tally",
		Organization: "Uniswap",
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		tag  string
		want Lang
	}{
		{"ja", LangJapanese},
		{"ja-JP", LangJapanese},
		{"en", LangEnglish},
		{"en-US", LangEnglish},
		{"fr", LangEnglish},
		{"", LangEnglish},
		{"not-a-tag!!", LangEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.tag))
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	content := sampleContent()
	a := Build(content, "policy text", LangEnglish)
	b := Build(content, "policy text", LangEnglish)
	assert.Equal(t, a, b)
}

func TestBuild_LanguageSelection(t *testing.T) {
	content := sampleContent()

	ja := Build(content, "policy", LangJapanese)
	assert.Contains(t, ja, "プロポーザル タイトル")
	assert.Contains(t, ja, "回答は必ず日本語で行ってください")

	en := Build(content, "policy", LangEnglish)
	assert.Contains(t, en, "Proposal Title")
	assert.Contains(t, en, "Response must be in English")
}

func TestBuild_InterpolatesVerbatim(t *testing.T) {
	content := sampleContent()
	policy := "1. Must not drain the treasury"

	for _, lang := range []Lang{LangJapanese, LangEnglish} {
		got := Build(content, policy, lang)
		assert.Contains(t, got, content.Title)
		assert.Contains(t, got, content.Content)
		assert.Contains(t, got, content.Platform)
		assert.Contains(t, got, content.Organization)
		assert.Contains(t, got, policy)
	}
}

func TestBuild_RequestsFixedJSONShape(t *testing.T) {
	got := Build(sampleContent(), "policy", LangEnglish)
	assert.Contains(t, got, `"summary"`)
	assert.Contains(t, got, `"overview"`)
	assert.Contains(t, got, `"sections"`)
	assert.Contains(t, got, `"opinion"`)
	assert.Contains(t, got, `"vote"`)
	assert.Contains(t, got, "For or Against")
}

func TestDefaultPolicy(t *testing.T) {
	ja := DefaultPolicy(LangJapanese)
	en := DefaultPolicy(LangEnglish)

	assert.NotEmpty(t, ja)
	assert.NotEmpty(t, en)
	assert.NotEqual(t, ja, en)
	assert.Contains(t, ja, "コミュニティ")
	assert.Contains(t, en, "community")
}
