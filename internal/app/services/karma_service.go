package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/repositories"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
	"github.com/vani-campus/vani/internal/pkg/logger"
)

// Karma credit amounts
const (
	KarmaPerUpvote = 5
	KarmaPerPost   = 10
)

// KarmaService applies karma credits. Credits are pure increments with no
// upper bound and no reversal path, so they may be retried and reordered
// freely without changing the final score.
type KarmaService struct {
	users      repositories.UserStore
	maxRetries int
	backoff    time.Duration
}

// NewKarmaService creates a new KarmaService
func NewKarmaService(users repositories.UserStore, maxRetries int, backoff time.Duration) *KarmaService {
	return &KarmaService{
		users:      users,
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

// Credit applies one karma increment, retrying transient store failures with
// exponential backoff. A missing user is not retried.
func (s *KarmaService) Credit(ctx context.Context, userID int64, delta int) error {
	backoff := s.backoff

	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
			backoff *= 2
		}

		err = s.users.AddKarma(ctx, userID, delta)
		if err == nil {
			return nil
		}
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return err
		}

		logger.Warn().Err(err).Int64("userID", userID).Int("delta", delta).
			Int("attempt", attempt+1).Msg("Karma credit failed, will retry")
	}

	return fmt.Errorf("%w: karma credit exhausted retries: %v", apperrors.ErrStorageFailure, err)
}

// CreditUpvote awards the author of an upvoted post. Anonymous posts carry no
// author link, so nothing is credited. A failed credit is logged and dropped;
// the vote it followed has already committed and must stand.
func (s *KarmaService) CreditUpvote(ctx context.Context, post *models.Post) {
	if post.IsAnonymous || post.AuthorID == nil {
		return
	}

	if err := s.Credit(ctx, *post.AuthorID, KarmaPerUpvote); err != nil {
		logger.Error().Err(err).Int64("postID", post.ID).Int64("authorID", *post.AuthorID).
			Msg("Failed to credit upvote karma")
	}
}

// CreditPost awards a user for publishing a post under their own name
func (s *KarmaService) CreditPost(ctx context.Context, post *models.Post) {
	if post.IsAnonymous || post.AuthorID == nil {
		return
	}

	if err := s.Credit(ctx, *post.AuthorID, KarmaPerPost); err != nil {
		logger.Error().Err(err).Int64("postID", post.ID).Int64("authorID", *post.AuthorID).
			Msg("Failed to credit post karma")
	}
}
