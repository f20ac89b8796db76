// Package prompt renders analysis prompts for the completion service.
// Building a prompt is pure: identical inputs yield byte-identical output.
package prompt

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/govlens/govlens/internal/model"
)

// Lang selects a prompt template.
type Lang string

const (
	LangJapanese Lang = "ja"
	LangEnglish  Lang = "en"
)

// Normalize maps a language tag to a template language. Any tag whose base
// language is Japanese selects the Japanese template; everything else,
// including unparseable or empty tags, selects English.
func Normalize(tag string) Lang {
	t, err := language.Parse(tag)
	if err != nil {
		return LangEnglish
	}
	base, _ := t.Base()
	if jp, _ := language.Japanese.Base(); base == jp {
		return LangJapanese
	}
	return LangEnglish
}

const defaultPolicyJA = `
1. プロポーザルの目的が明確で、コミュニティの利益に合致しているか
2. 技術的な実現可能性が十分に検討されているか
3. リスクとその対策が適切に考慮されているか
4. 資金使用の透明性と説明責任が確保されているか
5. コミュニティの長期的な発展に寄与するか
`

const defaultPolicyEN = `
1. The proposal's purpose is clear and aligned with the community's interests
2. Technical feasibility has been sufficiently examined
3. Risks and their mitigations are adequately considered
4. Transparency and accountability of fund usage are ensured
5. The proposal contributes to the long-term development of the community
`

// DefaultPolicy returns the five-point evaluation rubric in the template language.
func DefaultPolicy(lang Lang) string {
	if lang == LangJapanese {
		return defaultPolicyJA
	}
	return defaultPolicyEN
}

const templateJA = `
以下のDAOプロポーザルを分析し、指定されたポリシーに基づいて評価してください。

プロポーザル タイトル:
%s

プロポーザル 内容:
%s

プラットフォーム: %s
組織: %s

ポリシー:
%s

以下の形式で回答してください。回答は必ず日本語で行ってください：

{
  "summary": {
    "overview": "プロポーザルの簡潔な概要（200-300文字）",
    "sections": [
      {
        "title": "提案の背景と目的",
        "content": "背景と目的の説明（200-300文字）"
      },
      {
        "title": "技術的実装と実現可能性",
        "content": "技術的な詳細の説明（200-300文字）"
      },
      {
        "title": "期待される効果と影響",
        "content": "効果と影響の分析（200-300文字）"
      }
    ]
  },
  "opinion": {
    "conclusion": {
      "vote": "For または Against",
      "reason": "結論を1文で説明（100文字程度）"
    },
    "reasoning": "ポリシーを踏まえた詳細な理由の説明（400-500文字）"
  }
}`

const templateEN = `
Please analyze the following DAO proposal based on the specified policy.

Proposal Title:
%s

Proposal Content:
%s

Platform: %s
Organization: %s

Policy:
%s

Please respond in the following format. Response must be in English:

{
  "summary": {
    "overview": "Brief overview of the proposal (200-300 characters)",
    "sections": [
      {
        "title": "Background and Purpose",
        "content": "Brief explanation of the background and purpose (200-300 characters)"
      },
      {
        "title": "Technical Implementation and Feasibility",
        "content": "Detailed explanation of technical aspects (200-300 characters)"
      },
      {
        "title": "Expected Effects and Impact",
        "content": "Analysis of the expected effects and impact (200-300 characters)"
      }
    ]
  },
  "opinion": {
    "conclusion": {
      "vote": "For or Against",
      "reason": "Explain the conclusion in one sentence (about 100 characters)"
    },
    "reasoning": "Detailed explanation based on the policy (400-500 characters)"
  }
}`

// Build renders the analysis prompt for the given proposal, policy, and
// template language. Title, content, platform, organization, and policy are
// interpolated verbatim.
func Build(content model.ProposalContent, policy string, lang Lang) string {
	tmpl := templateEN
	if lang == LangJapanese {
		tmpl = templateJA
	}
	return fmt.Sprintf(tmpl, content.Title, content.Content, content.Platform, content.Organization, policy)
}
