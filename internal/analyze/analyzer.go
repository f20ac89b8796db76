// Package analyze orchestrates the proposal analysis pipeline: extract the
// proposal, build the prompt, call the completion service, parse and validate
// its JSON reply.
package analyze

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/govlens/govlens/internal/extract"
	"github.com/govlens/govlens/internal/model"
	"github.com/govlens/govlens/internal/prompt"
	"github.com/govlens/govlens/pkg/openai"
)

// Analysis failure conditions.
var (
	// ErrNoInput marks a request carrying neither a document nor a URL.
	ErrNoInput = eris.New("analyze: no proposal content provided")
	// ErrServiceUnavailable marks a failed completion call.
	ErrServiceUnavailable = eris.New("analyze: completion service unavailable")
	// ErrEmptyResponse marks a completion call that returned no text.
	ErrEmptyResponse = eris.New("analyze: completion returned no content")
	// ErrMalformedResponse marks completion text that is not the expected JSON.
	ErrMalformedResponse = eris.New("analyze: completion returned malformed content")
)

// systemPrompt pins the reply format regardless of the user prompt language.
const systemPrompt = "You are an expert in analyzing DAO proposals. Always respond in valid JSON format as specified in the prompt."

// Request carries the inputs for one analysis. The document path wins when
// both it and the URL are set.
type Request struct {
	URL      string
	FilePath string
	Policy   string
	Language string
}

// Service runs the full analysis pipeline for one request.
type Service interface {
	Run(ctx context.Context, req Request) (*model.Report, error)
}

// Analyzer implements Service. It holds no per-request state; concurrent
// calls are independent.
type Analyzer struct {
	chain    *extract.Chain
	document *extract.DocumentExtractor
	llm      openai.Client
	model    string
}

// New creates an Analyzer.
func New(chain *extract.Chain, document *extract.DocumentExtractor, llm openai.Client, model string) *Analyzer {
	return &Analyzer{
		chain:    chain,
		document: document,
		llm:      llm,
		model:    model,
	}
}

// Run executes the pipeline: extraction, prompt build, one completion call,
// JSON parse and shape validation. Stages are strictly sequential; there are
// no retries.
func (a *Analyzer) Run(ctx context.Context, req Request) (*model.Report, error) {
	var (
		content *model.ProposalContent
		err     error
	)
	switch {
	case req.FilePath != "":
		content, err = a.document.Extract(ctx, req.FilePath)
	case req.URL != "":
		content, err = a.chain.Extract(ctx, req.URL)
	default:
		return nil, ErrNoInput
	}
	if err != nil {
		return nil, err
	}

	lang := prompt.Normalize(req.Language)
	policy := req.Policy
	if policy == "" {
		policy = prompt.DefaultPolicy(lang)
	}
	userPrompt := prompt.Build(*content, policy, lang)

	resp, err := a.llm.ChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: &openai.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, eris.Wrapf(ErrServiceUnavailable, "chat completion: %v", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, eris.Wrap(ErrEmptyResponse, "chat completion")
	}

	var analysis model.AnalysisResult
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &analysis); err != nil {
		return nil, eris.Wrapf(ErrMalformedResponse, "parse analysis: %v", err)
	}
	if err := validate(&analysis); err != nil {
		return nil, err
	}

	zap.L().Info("analysis complete",
		zap.String("title", content.Title),
		zap.String("platform", content.Platform),
		zap.String("vote", analysis.Opinion.Conclusion.Vote),
	)

	return &model.Report{
		ProposalTitle: content.Title,
		Organization:  content.Organization,
		Platform:      content.Platform,
		Analysis:      analysis,
	}, nil
}

// validate rejects replies that parsed as JSON but miss the expected shape,
// so schema violations surface as malformed responses instead of reaching
// the presentation layer.
func validate(a *model.AnalysisResult) error {
	if strings.TrimSpace(a.Summary.Overview) == "" {
		return eris.Wrap(ErrMalformedResponse, "missing summary overview")
	}
	if len(a.Summary.Sections) == 0 {
		return eris.Wrap(ErrMalformedResponse, "missing summary sections")
	}
	switch a.Opinion.Conclusion.Vote {
	case model.VoteFor, model.VoteAgainst:
	default:
		return eris.Wrapf(ErrMalformedResponse, "unexpected vote %q", a.Opinion.Conclusion.Vote)
	}
	return nil
}
