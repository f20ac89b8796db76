// Package tally provides a client for the Tally governance GraphQL API.
package tally

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.tally.xyz"

// Client fetches governance proposals from the Tally API.
type Client interface {
	// GetProposal fetches a single proposal by ID. A nil proposal with a nil
	// error means the API answered but carried no proposal payload.
	GetProposal(ctx context.Context, id string) (*Proposal, error)
}

// Proposal is the proposal payload returned by the Tally API.
type Proposal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	Proposer    *Proposer `json:"proposer"`
	Governor    *Governor `json:"governor"`
	State       string    `json:"state"`
}

// Proposer identifies the account that submitted a proposal.
type Proposer struct {
	Address string `json:"address"`
}

// Governor holds the governor contract metadata for a proposal.
type Governor struct {
	Name         string        `json:"name"`
	Organization *Organization `json:"organization"`
}

// Organization is the DAO behind a governor.
type Organization struct {
	Name string `json:"name"`
}

const proposalQuery = `
query GetProposal($proposalId: String!) {
  proposal(input: { id: $proposalId }) {
    id
    title
    description
    body
    proposer {
      address
    }
    governor {
      name
      organization {
        name
      }
    }
    state
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type proposalResponse struct {
	Data struct {
		Proposal *Proposal `json:"proposal"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Tally API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) GetProposal(ctx context.Context, id string) (*Proposal, error) {
	body, err := json.Marshal(graphqlRequest{
		Query:     proposalQuery,
		Variables: map[string]any{"proposalId": id},
	})
	if err != nil {
		return nil, eris.Wrap(err, "tally: marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "tally: create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Api-Key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrap(err, "tally: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "tally: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("tally: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result proposalResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "tally: unmarshal response")
	}

	if result.Data.Proposal == nil && len(result.Errors) > 0 {
		return nil, eris.Errorf("tally: api error: %s", result.Errors[0].Message)
	}

	return result.Data.Proposal, nil
}
