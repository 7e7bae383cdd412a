package dto

import (
	"time"

	"github.com/vani-campus/vani/internal/app/models"
)

// CreatePostRequest represents a new post submission. The author identity is
// taken from the authenticated caller, never from the body.
type CreatePostRequest struct {
	Title       string          `json:"title" binding:"required"`
	Body        string          `json:"body" binding:"required"`
	IsAnonymous bool            `json:"isAnonymous"`
	Type        models.PostType `json:"type" binding:"required" example:"complaint"`
}

// VoteRequest represents a vote on a post
type VoteRequest struct {
	Direction models.VoteDirection `json:"direction" binding:"required" example:"up"`
}

// PostResponse represents a post as returned by the API
type PostResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Author      string    `json:"author" example:"Alice Student"`
	IsAnonymous bool      `json:"isAnonymous"`
	Type        string    `json:"type" example:"complaint"`
	Upvotes     int       `json:"upvotes"`
	Downvotes   int       `json:"downvotes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewPostResponse maps a post model to its API shape
func NewPostResponse(p *models.Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Body:        p.Body,
		Author:      p.Author,
		IsAnonymous: p.IsAnonymous,
		Type:        string(p.Type),
		Upvotes:     p.Upvotes,
		Downvotes:   p.Downvotes,
		CreatedAt:   p.CreatedAt,
	}
}

// PostListResponse wraps a list of posts
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}
