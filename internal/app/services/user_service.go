package services

import (
	"context"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/repositories"
)

// DefaultLeaderboardSize is used when the caller does not ask for a limit
const DefaultLeaderboardSize = 10

// UserService handles user lookups and the leaderboard
type UserService struct {
	users repositories.UserStore
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserStore) *UserService {
	return &UserService{users: users}
}

// GetByID returns a single user
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Leaderboard returns the top users by karma. The ranking is a snapshot;
// concurrent credits may land between the read and the response.
func (s *UserService) Leaderboard(ctx context.Context, limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	return s.users.Leaderboard(ctx, limit)
}
