package dto

import (
	"encoding/json"
	"strings"

	"github.com/vani-campus/vani/internal/app/models"
)

// OptionsField accepts election options either as a JSON array of strings or
// as a single comma-separated string. The array form preserves commas inside
// an option text; the string form is split on commas and trimmed.
type OptionsField []string

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionsField) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*o = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	*o = out
	return nil
}

// CreateElectionRequest represents a new election or poll submission
type CreateElectionRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Type        models.ElectionType `json:"type" binding:"required" example:"poll"`
	Options     OptionsField        `json:"options" binding:"required"`
}

// ElectionVoteRequest represents a vote for one option of an election
type ElectionVoteRequest struct {
	OptionID string `json:"optionId" binding:"required" example:"opt0"`
}

// ElectionOptionResponse represents one option with its running tally
type ElectionOptionResponse struct {
	ID    string `json:"id" example:"opt0"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// ElectionResponse represents an election as returned by the API
type ElectionResponse struct {
	ID          int64                    `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Type        string                   `json:"type" example:"election"`
	Status      string                   `json:"status" example:"active"`
	Options     []ElectionOptionResponse `json:"options"`
	TotalVotes  int                      `json:"totalVotes"`
}

// NewElectionResponse maps an election model to its API shape
func NewElectionResponse(e *models.Election) ElectionResponse {
	options := make([]ElectionOptionResponse, 0, len(e.Options))
	total := 0
	for _, opt := range e.Options {
		options = append(options, ElectionOptionResponse{
			ID:    opt.ID,
			Text:  opt.Text,
			Votes: opt.Votes,
		})
		total += opt.Votes
	}

	return ElectionResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Type:        string(e.Type),
		Status:      string(e.Status),
		Options:     options,
		TotalVotes:  total,
	}
}

// ElectionListResponse wraps a list of elections
type ElectionListResponse struct {
	Elections []ElectionResponse `json:"elections"`
}
