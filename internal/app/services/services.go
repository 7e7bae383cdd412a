package services

import (
	"time"

	"github.com/vani-campus/vani/internal/app/repositories"
	"github.com/vani-campus/vani/internal/pkg/auth"
)

// Services bundles all application services behind one handle
type Services struct {
	Auth      *AuthService
	Posts     *PostService
	Elections *ElectionService
	Votes     *VoteService
	Karma     *KarmaService
	Users     *UserService
	SOS       *SOSService
}

// NewServices wires services over the given repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, karmaRetries int, karmaBackoff time.Duration) *Services {
	karma := NewKarmaService(repos.Users, karmaRetries, karmaBackoff)

	return &Services{
		Auth:      NewAuthService(repos.Users, jwtService),
		Posts:     NewPostService(repos.Posts, karma),
		Elections: NewElectionService(repos.Elections),
		Votes:     NewVoteService(repos.Posts, repos.Elections, karma),
		Karma:     karma,
		Users:     NewUserService(repos.Users),
		SOS:       NewSOSService(repos.SOS),
	}
}
