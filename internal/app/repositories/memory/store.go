// Package memory provides in-memory implementations of the repository
// interfaces. The store backs the "memory" database driver and the service
// tests; it enforces the same atomicity rules as the PostgreSQL
// repositories, with a mutex standing in for row locks.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/repositories"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
)

// Store holds all in-memory state behind a single lock
type Store struct {
	mu sync.RWMutex

	users     map[int64]*models.User
	posts     map[int64]*models.Post
	elections map[int64]*models.Election
	alerts    []models.SOSAlert

	nextUserID     int64
	nextPostID     int64
	nextElectionID int64
	nextAlertID    int64
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		users:     map[int64]*models.User{},
		posts:     map[int64]*models.Post{},
		elections: map[int64]*models.Election{},
	}
}

// NewRepositories bundles one store behind the repository interfaces
func NewRepositories(s *Store) *repositories.Repositories {
	return &repositories.Repositories{
		Users:     &UserStore{s},
		Posts:     &PostStore{s},
		Elections: &ElectionStore{s},
		SOS:       &SOSStore{s},
	}
}

// UserStore is the in-memory UserStore implementation
type UserStore struct {
	s *Store
}

// Create inserts a new user and returns its id
func (r *UserStore) Create(ctx context.Context, user *models.User) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrConflict
		}
	}

	r.s.nextUserID++
	user.ID = r.s.nextUserID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	stored := *user
	r.s.users[user.ID] = &stored
	return user.ID, nil
}

// GetByID retrieves a user by id
func (r *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByEmail retrieves a user by email
func (r *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// AddKarma increments the user's karma in place
func (r *UserStore) AddKarma(ctx context.Context, userID int64, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Karma += delta
	return nil
}

// Leaderboard returns the top users ordered by karma descending, id ascending
func (r *UserStore) Leaderboard(ctx context.Context, limit int) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]models.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		copied := *user
		copied.Password = ""
		users = append(users, copied)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].Karma != users[j].Karma {
			return users[i].Karma > users[j].Karma
		}
		return users[i].ID < users[j].ID
	})

	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

// PostStore is the in-memory PostStore implementation
type PostStore struct {
	s *Store
}

// Create inserts a new post and returns its id
func (r *PostStore) Create(ctx context.Context, post *models.Post) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextPostID++
	post.ID = r.s.nextPostID
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	stored := clonePost(post)
	r.s.posts[post.ID] = &stored
	return post.ID, nil
}

// GetByID retrieves a post by id
func (r *PostStore) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	copied := clonePost(post)
	return &copied, nil
}

// GetAll retrieves all posts, newest first
func (r *PostStore) GetAll(ctx context.Context) ([]models.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	posts := make([]models.Post, 0, len(r.s.posts))
	for _, post := range r.s.posts {
		posts = append(posts, clonePost(post))
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

// ApplyVote records the vote and adjusts the tally while holding the lock, so
// the ledger check and the tally bump form one atomic step.
func (r *PostStore) ApplyVote(ctx context.Context, postID, userID int64, direction models.VoteDirection) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	post, ok := r.s.posts[postID]
	if !ok {
		return apperrors.ErrPostNotFound
	}
	if post.HasVoted(userID) {
		return apperrors.ErrAlreadyVoted
	}

	switch direction {
	case models.VoteDirectionUp:
		post.Upvotes++
	case models.VoteDirectionDown:
		post.Downvotes++
	}
	post.VotedBy = append(post.VotedBy, userID)
	return nil
}

// ElectionStore is the in-memory ElectionStore implementation
type ElectionStore struct {
	s *Store
}

// Create inserts a new election and returns its id
func (r *ElectionStore) Create(ctx context.Context, election *models.Election) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextElectionID++
	election.ID = r.s.nextElectionID

	stored := cloneElection(election)
	r.s.elections[election.ID] = &stored
	return election.ID, nil
}

// GetByID retrieves an election by id
func (r *ElectionStore) GetByID(ctx context.Context, id int64) (*models.Election, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	election, ok := r.s.elections[id]
	if !ok {
		return nil, apperrors.ErrElectionNotFound
	}
	copied := cloneElection(election)
	return &copied, nil
}

// GetAll retrieves all elections in id order
func (r *ElectionStore) GetAll(ctx context.Context) ([]models.Election, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	elections := make([]models.Election, 0, len(r.s.elections))
	for _, election := range r.s.elections {
		elections = append(elections, cloneElection(election))
	}
	sort.Slice(elections, func(i, j int) bool { return elections[i].ID < elections[j].ID })
	return elections, nil
}

// ApplyVote checks status, ledger and option existence, then applies both
// mutations while holding the lock
func (r *ElectionStore) ApplyVote(ctx context.Context, electionID, userID int64, optionID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	election, ok := r.s.elections[electionID]
	if !ok {
		return apperrors.ErrElectionNotFound
	}
	if election.Status != models.ElectionStatusActive {
		return apperrors.ErrElectionClosed
	}
	if election.HasVoted(userID) {
		return apperrors.ErrAlreadyVoted
	}

	option := election.Option(optionID)
	if option == nil {
		return apperrors.ErrOptionNotFound
	}

	option.Votes++
	election.VotedBy = append(election.VotedBy, userID)
	return nil
}

// Delete removes an election regardless of status
func (r *ElectionStore) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.elections[id]; !ok {
		return apperrors.ErrElectionNotFound
	}
	delete(r.s.elections, id)
	return nil
}

// SOSStore is the in-memory SOSStore implementation
type SOSStore struct {
	s *Store
}

// Create appends a new alert
func (r *SOSStore) Create(ctx context.Context, alert *models.SOSAlert) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextAlertID++
	alert.ID = r.s.nextAlertID
	if alert.Timestamp.IsZero() {
		alert.Timestamp = time.Now()
	}

	r.s.alerts = append(r.s.alerts, *alert)
	return alert.ID, nil
}

// GetAll retrieves all alerts, newest first
func (r *SOSStore) GetAll(ctx context.Context) ([]models.SOSAlert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	alerts := make([]models.SOSAlert, 0, len(r.s.alerts))
	for i := len(r.s.alerts) - 1; i >= 0; i-- {
		alerts = append(alerts, r.s.alerts[i])
	}
	return alerts, nil
}

func clonePost(p *models.Post) models.Post {
	copied := *p
	copied.VotedBy = append([]int64(nil), p.VotedBy...)
	if p.AuthorID != nil {
		authorID := *p.AuthorID
		copied.AuthorID = &authorID
	}
	return copied
}

func cloneElection(e *models.Election) models.Election {
	copied := *e
	copied.Options = append([]models.ElectionOption(nil), e.Options...)
	copied.VotedBy = append([]int64(nil), e.VotedBy...)
	return copied
}
