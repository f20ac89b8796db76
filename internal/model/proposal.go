// Package model defines the records that flow through the analysis pipeline.
package model

// Placeholder values used when a source does not expose a field. Title and
// Content are never empty strings on a successful extraction; absence is
// always one of these, because both flow straight into the prompt template.
const (
	PlaceholderTitle        = "Untitled Proposal"
	PlaceholderContent      = "No content found"
	PlaceholderOrganization = "Unknown Organization"
	PlaceholderProposer     = "Unknown Proposer"
)

// Platform tags identifying which extraction path produced a record.
const (
	PlatformTally = "Tally"
	PlatformAgora = "Uniswap Agora"
	PlatformPDF   = "PDF Document"
	PlatformOther = "Other"
)

// Votes the prompt instructs the model to choose between.
const (
	VoteFor     = "For"
	VoteAgainst = "Against"
)

// ProposalContent is the normalized result of extracting a proposal from any
// source (governance API, HTML page, or uploaded document).
type ProposalContent struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	Platform     string `json:"platform"`
	Organization string `json:"organization"`
	Proposer     string `json:"proposer,omitempty"`
}

// AnalysisResult is the JSON shape the completion service is instructed to
// return: a summary plus a voting opinion against the evaluation policy.
type AnalysisResult struct {
	Summary Summary `json:"summary"`
	Opinion Opinion `json:"opinion"`
}

// Summary holds the proposal overview and its topical sections.
type Summary struct {
	Overview string    `json:"overview"`
	Sections []Section `json:"sections"`
}

// Section is one titled part of the summary.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Opinion holds the model's verdict and supporting reasoning.
type Opinion struct {
	Conclusion Conclusion `json:"conclusion"`
	Reasoning  string     `json:"reasoning"`
}

// Conclusion is the vote itself with a one-sentence reason.
type Conclusion struct {
	Vote   string `json:"vote"`
	Reason string `json:"reason"`
}

// Report is the success response body for one analysis request.
type Report struct {
	ProposalTitle string         `json:"proposalTitle"`
	Organization  string         `json:"organization"`
	Platform      string         `json:"platform"`
	Analysis      AnalysisResult `json:"analysis"`
}
