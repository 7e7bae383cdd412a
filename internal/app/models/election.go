package models

// ElectionOption is a single votable option within an election.
// Option ids are assigned sequentially ("opt0", "opt1", ...) in input order
// and are unique within their election; option text is not deduplicated.
type ElectionOption struct {
	ID       string `json:"id" db:"option_id" example:"opt0"`
	Text     string `json:"text" db:"text" example:"John Doe"`
	Votes    int    `json:"votes" db:"votes" example:"5"`
	Position int    `json:"-" db:"position"`
}

// Election defines the election/poll model based on the 'elections' table
type Election struct {
	ID          int64            `json:"id" db:"id"`
	Title       string           `json:"title" db:"title"`
	Description string           `json:"description" db:"description"`
	Type        ElectionType     `json:"type" db:"type"`
	Status      ElectionStatus   `json:"status" db:"status"`
	Options     []ElectionOption `json:"options"`
	VotedBy     []int64          `json:"votedBy" db:"voted_by"`
}

// HasVoted reports whether the given user already appears in the vote ledger
func (e *Election) HasVoted(userID int64) bool {
	for _, id := range e.VotedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Option returns the option with the given id, or nil if absent
func (e *Election) Option(optionID string) *ElectionOption {
	for i := range e.Options {
		if e.Options[i].ID == optionID {
			return &e.Options[i]
		}
	}
	return nil
}
