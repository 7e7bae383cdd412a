package repositories

import (
	"context"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/db"
)

// UserStore handles persistence for users and karma
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// AddKarma applies a single atomic increment to the user's karma.
	AddKarma(ctx context.Context, userID int64, delta int) error
	Leaderboard(ctx context.Context, limit int) ([]models.User, error)
}

// PostStore handles persistence for posts and post votes
type PostStore interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	// ApplyVote records the vote and adjusts the tally in one atomic step.
	// It fails with ErrAlreadyVoted when the user is already in the ledger.
	ApplyVote(ctx context.Context, postID, userID int64, direction models.VoteDirection) error
}

// ElectionStore handles persistence for elections, options and election votes
type ElectionStore interface {
	Create(ctx context.Context, election *models.Election) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Election, error)
	GetAll(ctx context.Context) ([]models.Election, error)
	// ApplyVote records the vote and increments the chosen option in one
	// atomic step, checking status, ledger and option existence first.
	ApplyVote(ctx context.Context, electionID, userID int64, optionID string) error
	Delete(ctx context.Context, id int64) error
}

// SOSStore handles persistence for SOS alerts
type SOSStore interface {
	Create(ctx context.Context, alert *models.SOSAlert) (int64, error)
	GetAll(ctx context.Context) ([]models.SOSAlert, error)
}

// Repositories bundles all stores behind one handle
type Repositories struct {
	Users     UserStore
	Posts     PostStore
	Elections ElectionStore
	SOS       SOSStore
}

// NewRepositories creates PostgreSQL-backed repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Posts:     NewPostRepository(database),
		Elections: NewElectionRepository(database),
		SOS:       NewSOSRepository(database),
	}
}
