package models

import (
	"time"
)

// Post defines the post model based on the 'posts' table.
// VotedBy records only that an identity voted, not which way; votes are
// immutable once cast, so direction switching is indistinguishable from a
// repeat vote and is rejected the same way.
type Post struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Body        string    `json:"body" db:"body"`
	Author      string    `json:"author" db:"author"`                   // Display name, "Anonymous" for anonymous posts
	AuthorID    *int64    `json:"authorId,omitempty" db:"author_id"`    // Optional link to a real user for karma attribution
	IsAnonymous bool      `json:"isAnonymous" db:"is_anonymous"`
	Type        PostType  `json:"type" db:"type"`
	Upvotes     int       `json:"upvotes" db:"upvotes"`
	Downvotes   int       `json:"downvotes" db:"downvotes"`
	VotedBy     []int64   `json:"votedBy" db:"voted_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// HasVoted reports whether the given user already appears in the vote ledger
func (p *Post) HasVoted(userID int64) bool {
	for _, id := range p.VotedBy {
		if id == userID {
			return true
		}
	}
	return false
}
