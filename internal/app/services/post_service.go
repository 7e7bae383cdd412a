package services

import (
	"context"
	"strings"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/repositories"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
)

// AnonymousAuthor is the display name stored on anonymous posts
const AnonymousAuthor = "Anonymous"

// PostService handles post creation and listing
type PostService struct {
	posts repositories.PostStore
	karma *KarmaService
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostStore, karma *KarmaService) *PostService {
	return &PostService{
		posts: posts,
		karma: karma,
	}
}

// Create publishes a new post by the given identity. Anonymous posts keep no
// link back to the author, which also makes them ineligible for karma.
func (s *PostService) Create(ctx context.Context, author models.Identity, title, body string, isAnonymous bool, postType models.PostType) (*models.Post, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, apperrors.NewBadRequestError("title and body are required")
	}
	if !postType.IsValid() {
		return nil, apperrors.NewBadRequestError("unknown post type")
	}

	post := &models.Post{
		Title:       title,
		Body:        body,
		IsAnonymous: isAnonymous,
		Type:        postType,
	}
	if isAnonymous {
		post.Author = AnonymousAuthor
	} else {
		post.Author = author.Name
		authorID := author.UserID
		post.AuthorID = &authorID
	}

	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.karma.CreditPost(ctx, post)

	return post, nil
}

// GetByID returns a single post
func (s *PostService) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// List returns all posts, newest first
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.GetAll(ctx)
}
