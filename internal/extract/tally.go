package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/govlens/govlens/internal/model"
	"github.com/govlens/govlens/pkg/tally"
)

const tallyHost = "tally.xyz"

// proposalIDRe pulls the proposal ID from the path segment after "proposal/".
var proposalIDRe = regexp.MustCompile(`proposal/([^/?#]+)`)

// TallyExtractor fetches proposals through the Tally GraphQL API.
type TallyExtractor struct {
	client tally.Client
}

// NewTallyExtractor creates a TallyExtractor using the given API client.
func NewTallyExtractor(client tally.Client) *TallyExtractor {
	return &TallyExtractor{client: client}
}

func (e *TallyExtractor) Name() string { return "tally" }

func (e *TallyExtractor) Supports(url string) bool {
	return strings.Contains(url, tallyHost)
}

// Extract resolves the proposal ID from the URL and issues a single API query.
func (e *TallyExtractor) Extract(ctx context.Context, url string) (*model.ProposalContent, error) {
	m := proposalIDRe.FindStringSubmatch(url)
	if m == nil {
		return nil, eris.Wrapf(ErrInvalidReference, "no proposal id in tally url %s", url)
	}
	id := m[1]

	proposal, err := e.client.GetProposal(ctx, id)
	if err != nil {
		return nil, eris.Wrapf(ErrFetchFailed, "tally query for %s: %v", id, err)
	}
	if proposal == nil {
		return nil, eris.Wrapf(ErrUpstreamDataMissing, "tally returned no proposal for id %s", id)
	}

	// Both candidate body fields are used; absent ones are skipped.
	var parts []string
	for _, s := range []string{proposal.Description, proposal.Body} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	content := strings.Join(parts, "\n\n")
	if content == "" {
		content = model.PlaceholderContent
	}

	title := proposal.Title
	if title == "" {
		title = model.PlaceholderTitle
	}

	organization := model.PlaceholderOrganization
	if proposal.Governor != nil && proposal.Governor.Organization != nil && proposal.Governor.Organization.Name != "" {
		organization = proposal.Governor.Organization.Name
	}

	proposer := model.PlaceholderProposer
	if proposal.Proposer != nil && proposal.Proposer.Address != "" {
		proposer = proposal.Proposer.Address
	}

	return &model.ProposalContent{
		Title:        title,
		Content:      content,
		Platform:     model.PlatformTally,
		Organization: organization,
		Proposer:     proposer,
	}, nil
}
