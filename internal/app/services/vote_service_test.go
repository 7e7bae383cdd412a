package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/repositories"
	"github.com/vani-campus/vani/internal/app/repositories/memory"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
)

func newTestServices(t *testing.T) (*Services, *repositories.Repositories) {
	t.Helper()
	repos := memory.NewRepositories(memory.NewStore())
	svcs := NewServices(repos, nil, 2, time.Millisecond)
	return svcs, repos
}

func createUser(t *testing.T, repos *repositories.Repositories, name string, role models.RoleType, karma int) models.Identity {
	t.Helper()
	user := &models.User{
		Name:  name,
		Email: fmt.Sprintf("%s@example.com", name),
		Role:  role,
		Karma: karma,
	}
	id, err := repos.Users.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("creating user %s: %v", name, err)
	}
	return models.Identity{UserID: id, Name: name, Role: role}
}

func createPost(t *testing.T, svcs *Services, author models.Identity, anonymous bool) *models.Post {
	t.Helper()
	post, err := svcs.Posts.Create(context.Background(), author, "Cafeteria food", "The lines are too long", anonymous, models.PostTypeComplaint)
	if err != nil {
		t.Fatalf("creating post: %v", err)
	}
	return post
}

func TestCastPostVoteRejectsSecondVote(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()
	author := createUser(t, repos, "author", models.RoleStudent, 0)
	voter := createUser(t, repos, "voter", models.RoleStudent, 0)
	post := createPost(t, svcs, author, false)

	if _, err := svcs.Votes.CastPostVote(ctx, voter, post.ID, models.VoteDirectionUp); err != nil {
		t.Fatalf("first vote: %v", err)
	}

	// Same direction
	_, err := svcs.Votes.CastPostVote(ctx, voter, post.ID, models.VoteDirectionUp)
	if !errors.Is(err, apperrors.ErrAlreadyVoted) {
		t.Errorf("repeat vote error = %v, want %v", err, apperrors.ErrAlreadyVoted)
	}

	// Opposite direction is still a repeat vote
	_, err = svcs.Votes.CastPostVote(ctx, voter, post.ID, models.VoteDirectionDown)
	if !errors.Is(err, apperrors.ErrAlreadyVoted) {
		t.Errorf("direction switch error = %v, want %v", err, apperrors.ErrAlreadyVoted)
	}

	got, err := svcs.Posts.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Upvotes != 1 || got.Downvotes != 0 {
		t.Errorf("tallies = %d/%d, want 1/0", got.Upvotes, got.Downvotes)
	}
}

func TestCastPostVoteInvalidDirection(t *testing.T) {
	svcs, repos := newTestServices(t)
	author := createUser(t, repos, "author", models.RoleStudent, 0)
	voter := createUser(t, repos, "voter", models.RoleStudent, 0)
	post := createPost(t, svcs, author, false)

	_, err := svcs.Votes.CastPostVote(context.Background(), voter, post.ID, models.VoteDirection("sideways"))
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrBadRequest)
	}
}

func TestCastPostVoteMissingPost(t *testing.T) {
	svcs, repos := newTestServices(t)
	voter := createUser(t, repos, "voter", models.RoleStudent, 0)

	_, err := svcs.Votes.CastPostVote(context.Background(), voter, 12345, models.VoteDirectionUp)
	if !errors.Is(err, apperrors.ErrPostNotFound) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrPostNotFound)
	}
}

func TestUpvoteCreditsAuthorKarma(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()

	// Dana posts under her own name with 200 karma; Eve upvotes
	dana := createUser(t, repos, "Dana", models.RoleStudent, 200)
	eve := createUser(t, repos, "Eve", models.RoleStudent, 0)
	post := createPost(t, svcs, dana, false)

	// Creating the post already earned Dana 10
	if _, err := svcs.Votes.CastPostVote(ctx, eve, post.ID, models.VoteDirectionUp); err != nil {
		t.Fatalf("vote: %v", err)
	}

	user, err := repos.Users.GetByID(ctx, dana.UserID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if want := 200 + KarmaPerPost + KarmaPerUpvote; user.Karma != want {
		t.Errorf("Karma = %d, want %d", user.Karma, want)
	}
}

func TestDownvoteDoesNotTouchKarma(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()
	dana := createUser(t, repos, "Dana", models.RoleStudent, 200)
	eve := createUser(t, repos, "Eve", models.RoleStudent, 0)
	post := createPost(t, svcs, dana, false)

	if _, err := svcs.Votes.CastPostVote(ctx, eve, post.ID, models.VoteDirectionDown); err != nil {
		t.Fatalf("vote: %v", err)
	}

	user, err := repos.Users.GetByID(ctx, dana.UserID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if want := 200 + KarmaPerPost; user.Karma != want {
		t.Errorf("Karma = %d, want %d", user.Karma, want)
	}
}

func TestUpvoteOnAnonymousPostCreditsNobody(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()
	dana := createUser(t, repos, "Dana", models.RoleStudent, 200)
	eve := createUser(t, repos, "Eve", models.RoleStudent, 0)
	post := createPost(t, svcs, dana, true)

	if post.Author != AnonymousAuthor {
		t.Errorf("Author = %q, want %q", post.Author, AnonymousAuthor)
	}

	if _, err := svcs.Votes.CastPostVote(ctx, eve, post.ID, models.VoteDirectionUp); err != nil {
		t.Fatalf("vote: %v", err)
	}

	user, err := repos.Users.GetByID(ctx, dana.UserID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.Karma != 200 {
		t.Errorf("Karma = %d, want 200", user.Karma)
	}
}

func TestConcurrentUpvotesAllCountAndCredit(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()
	dana := createUser(t, repos, "Dana", models.RoleStudent, 0)
	post := createPost(t, svcs, dana, false)

	const voters = 40
	identities := make([]models.Identity, voters)
	for i := range identities {
		identities[i] = createUser(t, repos, fmt.Sprintf("voter-%d", i), models.RoleStudent, 0)
	}

	var wg sync.WaitGroup
	for _, voter := range identities {
		wg.Add(1)
		go func(v models.Identity) {
			defer wg.Done()
			if _, err := svcs.Votes.CastPostVote(ctx, v, post.ID, models.VoteDirectionUp); err != nil {
				t.Errorf("vote from %s: %v", v.Name, err)
			}
		}(voter)
	}
	wg.Wait()

	got, err := svcs.Posts.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Upvotes != voters {
		t.Errorf("Upvotes = %d, want %d", got.Upvotes, voters)
	}

	user, err := repos.Users.GetByID(ctx, dana.UserID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if want := KarmaPerPost + voters*KarmaPerUpvote; user.Karma != want {
		t.Errorf("Karma = %d, want %d", user.Karma, want)
	}
}

func TestConcurrentVotesSameIdentityOnlyOneLands(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()
	author := createUser(t, repos, "author", models.RoleStudent, 0)
	voter := createUser(t, repos, "voter", models.RoleStudent, 0)
	post := createPost(t, svcs, author, false)

	const attempts = 24
	var wg sync.WaitGroup
	var succeeded atomic.Int32
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svcs.Votes.CastPostVote(ctx, voter, post.ID, models.VoteDirectionUp); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	if succeeded.Load() != 1 {
		t.Errorf("successful votes = %d, want exactly 1", succeeded.Load())
	}

	got, err := svcs.Posts.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Upvotes != 1 {
		t.Errorf("Upvotes = %d, want 1", got.Upvotes)
	}
}

func TestCastElectionVote(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()
	professor := createUser(t, repos, "Dr. Bob Professor", models.RoleProfessor, 0)
	ivan := createUser(t, repos, "Ivan", models.RoleStudent, 0)

	election, err := svcs.Elections.Create(ctx, professor, "Club Budget Poll", "", models.ElectionTypePoll, []string{"Approve", "Reject", "Abstain"})
	if err != nil {
		t.Fatalf("creating election: %v", err)
	}

	// Seed opt2 with existing votes to check the increment is relative
	for i := 0; i < 12; i++ {
		seeded := createUser(t, repos, fmt.Sprintf("seed-%d", i), models.RoleStudent, 0)
		if _, err := svcs.Votes.CastElectionVote(ctx, seeded, election.ID, "opt2"); err != nil {
			t.Fatalf("seed vote %d: %v", i, err)
		}
	}

	got, err := svcs.Votes.CastElectionVote(ctx, ivan, election.ID, "opt2")
	if err != nil {
		t.Fatalf("vote: %v", err)
	}
	if votes := got.Option("opt2").Votes; votes != 13 {
		t.Errorf("opt2 votes = %d, want 13", votes)
	}

	// Repeat attempt fails even for a different option
	_, err = svcs.Votes.CastElectionVote(ctx, ivan, election.ID, "opt0")
	if !errors.Is(err, apperrors.ErrAlreadyVoted) {
		t.Errorf("repeat vote error = %v, want %v", err, apperrors.ErrAlreadyVoted)
	}
}

func TestCastElectionVoteUnknownOption(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()
	professor := createUser(t, repos, "prof", models.RoleProfessor, 0)
	voter := createUser(t, repos, "voter", models.RoleStudent, 0)

	election, err := svcs.Elections.Create(ctx, professor, "Poll", "", models.ElectionTypePoll, []string{"A", "B"})
	if err != nil {
		t.Fatalf("creating election: %v", err)
	}

	_, err = svcs.Votes.CastElectionVote(ctx, voter, election.ID, "opt7")
	if !errors.Is(err, apperrors.ErrOptionNotFound) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrOptionNotFound)
	}

	// The failed attempt must not consume the voter's ballot
	if _, err := svcs.Votes.CastElectionVote(ctx, voter, election.ID, "opt0"); err != nil {
		t.Errorf("vote after failed attempt: %v", err)
	}
}

func TestCastElectionVoteConcurrentDistinctVoters(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()
	professor := createUser(t, repos, "prof", models.RoleProfessor, 0)

	election, err := svcs.Elections.Create(ctx, professor, "Council Seat", "", models.ElectionTypeElection, []string{"North", "South"})
	if err != nil {
		t.Fatalf("creating election: %v", err)
	}

	const voters = 30
	identities := make([]models.Identity, voters)
	for i := range identities {
		identities[i] = createUser(t, repos, fmt.Sprintf("voter-%d", i), models.RoleStudent, 0)
	}

	var wg sync.WaitGroup
	for i, voter := range identities {
		wg.Add(1)
		go func(v models.Identity, n int) {
			defer wg.Done()
			optionID := fmt.Sprintf("opt%d", n%2)
			if _, err := svcs.Votes.CastElectionVote(ctx, v, election.ID, optionID); err != nil {
				t.Errorf("vote from %s: %v", v.Name, err)
			}
		}(voter, i)
	}
	wg.Wait()

	got, err := svcs.Elections.GetByID(ctx, election.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	total := got.Option("opt0").Votes + got.Option("opt1").Votes
	if total != voters {
		t.Errorf("total votes = %d, want %d", total, voters)
	}
}
