package services

import (
	"context"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/repositories"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
	"github.com/vani-campus/vani/internal/pkg/logger"
)

// VoteService handles votes on posts and elections. Each identity gets one
// vote per entity; repeated attempts fail regardless of direction or option.
type VoteService struct {
	posts     repositories.PostStore
	elections repositories.ElectionStore
	karma     *KarmaService
}

// NewVoteService creates a new VoteService
func NewVoteService(posts repositories.PostStore, elections repositories.ElectionStore, karma *KarmaService) *VoteService {
	return &VoteService{
		posts:     posts,
		elections: elections,
		karma:     karma,
	}
}

// CastPostVote applies one vote to a post and returns the updated post. The
// karma credit runs after the vote has committed; the vote result never
// depends on whether the credit lands.
func (s *VoteService) CastPostVote(ctx context.Context, voter models.Identity, postID int64, direction models.VoteDirection) (*models.Post, error) {
	if !direction.IsValid() {
		return nil, apperrors.NewBadRequestError("vote direction must be 'up' or 'down'")
	}

	if err := s.posts.ApplyVote(ctx, postID, voter.UserID, direction); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		// The vote itself has already committed at this point
		logger.Error().Err(err).Int64("postID", postID).Msg("Failed to reload post after vote")
		return nil, err
	}

	if direction == models.VoteDirectionUp {
		s.karma.CreditUpvote(ctx, post)
	}

	return post, nil
}

// CastElectionVote applies one vote to an election option and returns the
// updated election. Election votes carry no karma.
func (s *VoteService) CastElectionVote(ctx context.Context, voter models.Identity, electionID int64, optionID string) (*models.Election, error) {
	if err := s.elections.ApplyVote(ctx, electionID, voter.UserID, optionID); err != nil {
		return nil, err
	}

	return s.elections.GetByID(ctx, electionID)
}
