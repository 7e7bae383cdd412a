package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
)

func seedPost(t *testing.T, store *PostStore) int64 {
	t.Helper()
	id, err := store.Create(context.Background(), &models.Post{
		Title:  "Broken projector in LH-3",
		Body:   "Still not fixed after two weeks",
		Author: "Alice Student",
		Type:   models.PostTypeComplaint,
	})
	if err != nil {
		t.Fatalf("seeding post: %v", err)
	}
	return id
}

func seedElection(t *testing.T, store *ElectionStore, status models.ElectionStatus) int64 {
	t.Helper()
	id, err := store.Create(context.Background(), &models.Election{
		Title:  "Student Council President",
		Type:   models.ElectionTypeElection,
		Status: status,
		Options: []models.ElectionOption{
			{ID: "opt0", Text: "Alice", Position: 0},
			{ID: "opt1", Text: "Bob", Position: 1},
		},
	})
	if err != nil {
		t.Fatalf("seeding election: %v", err)
	}
	return id
}

func TestPostApplyVoteRejectsRepeat(t *testing.T) {
	s := NewStore()
	posts := &PostStore{s}
	ctx := context.Background()
	postID := seedPost(t, posts)

	if err := posts.ApplyVote(ctx, postID, 7, models.VoteDirectionUp); err != nil {
		t.Fatalf("first vote: %v", err)
	}

	// The second attempt must fail even when the direction changes
	err := posts.ApplyVote(ctx, postID, 7, models.VoteDirectionDown)
	if !errors.Is(err, apperrors.ErrAlreadyVoted) {
		t.Errorf("second vote error = %v, want %v", err, apperrors.ErrAlreadyVoted)
	}

	post, err := posts.GetByID(ctx, postID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if post.Upvotes != 1 || post.Downvotes != 0 {
		t.Errorf("tallies = %d/%d, want 1/0", post.Upvotes, post.Downvotes)
	}
}

func TestPostApplyVoteMissingPost(t *testing.T) {
	s := NewStore()
	posts := &PostStore{s}

	err := posts.ApplyVote(context.Background(), 999, 1, models.VoteDirectionUp)
	if !errors.Is(err, apperrors.ErrPostNotFound) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrPostNotFound)
	}
}

func TestPostApplyVoteConcurrentDistinctUsers(t *testing.T) {
	s := NewStore()
	posts := &PostStore{s}
	ctx := context.Background()
	postID := seedPost(t, posts)

	const voters = 64
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			if err := posts.ApplyVote(ctx, postID, userID, models.VoteDirectionUp); err != nil {
				t.Errorf("vote from user %d: %v", userID, err)
			}
		}(int64(i + 1))
	}
	wg.Wait()

	post, err := posts.GetByID(ctx, postID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if post.Upvotes != voters {
		t.Errorf("Upvotes = %d, want %d", post.Upvotes, voters)
	}
	if len(post.VotedBy) != voters {
		t.Errorf("len(VotedBy) = %d, want %d", len(post.VotedBy), voters)
	}
}

func TestPostApplyVoteConcurrentSameUser(t *testing.T) {
	s := NewStore()
	posts := &PostStore{s}
	ctx := context.Background()
	postID := seedPost(t, posts)

	const attempts = 32
	var wg sync.WaitGroup
	var succeeded atomic.Int32
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := posts.ApplyVote(ctx, postID, 42, models.VoteDirectionUp); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	if succeeded.Load() != 1 {
		t.Errorf("successful votes = %d, want exactly 1", succeeded.Load())
	}

	post, err := posts.GetByID(ctx, postID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if post.Upvotes != 1 {
		t.Errorf("Upvotes = %d, want 1", post.Upvotes)
	}
}

func TestElectionApplyVote(t *testing.T) {
	s := NewStore()
	elections := &ElectionStore{s}
	ctx := context.Background()
	electionID := seedElection(t, elections, models.ElectionStatusActive)

	if err := elections.ApplyVote(ctx, electionID, 5, "opt1"); err != nil {
		t.Fatalf("vote: %v", err)
	}

	err := elections.ApplyVote(ctx, electionID, 5, "opt0")
	if !errors.Is(err, apperrors.ErrAlreadyVoted) {
		t.Errorf("repeat vote error = %v, want %v", err, apperrors.ErrAlreadyVoted)
	}

	election, err := elections.GetByID(ctx, electionID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got := election.Option("opt1").Votes; got != 1 {
		t.Errorf("opt1 votes = %d, want 1", got)
	}
	if got := election.Option("opt0").Votes; got != 0 {
		t.Errorf("opt0 votes = %d, want 0", got)
	}
}

func TestElectionApplyVoteClosed(t *testing.T) {
	s := NewStore()
	elections := &ElectionStore{s}
	electionID := seedElection(t, elections, models.ElectionStatusClosed)

	err := elections.ApplyVote(context.Background(), electionID, 5, "opt0")
	if !errors.Is(err, apperrors.ErrElectionClosed) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrElectionClosed)
	}
}

func TestElectionApplyVoteUnknownOption(t *testing.T) {
	s := NewStore()
	elections := &ElectionStore{s}
	ctx := context.Background()
	electionID := seedElection(t, elections, models.ElectionStatusActive)

	err := elections.ApplyVote(ctx, electionID, 5, "opt9")
	if !errors.Is(err, apperrors.ErrOptionNotFound) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrOptionNotFound)
	}

	// The failed vote must not put the user in the ledger
	if err := elections.ApplyVote(ctx, electionID, 5, "opt0"); err != nil {
		t.Errorf("vote after failed attempt: %v", err)
	}
}

func TestElectionApplyVoteConcurrent(t *testing.T) {
	s := NewStore()
	elections := &ElectionStore{s}
	ctx := context.Background()
	electionID := seedElection(t, elections, models.ElectionStatusActive)

	const voters = 50
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			optionID := fmt.Sprintf("opt%d", userID%2)
			if err := elections.ApplyVote(ctx, electionID, userID, optionID); err != nil {
				t.Errorf("vote from user %d: %v", userID, err)
			}
		}(int64(i + 1))
	}
	wg.Wait()

	election, err := elections.GetByID(ctx, electionID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	total := election.Option("opt0").Votes + election.Option("opt1").Votes
	if total != voters {
		t.Errorf("total votes = %d, want %d", total, voters)
	}
	if len(election.VotedBy) != voters {
		t.Errorf("len(VotedBy) = %d, want %d", len(election.VotedBy), voters)
	}
}

func TestElectionDelete(t *testing.T) {
	s := NewStore()
	elections := &ElectionStore{s}
	ctx := context.Background()
	electionID := seedElection(t, elections, models.ElectionStatusActive)

	if err := elections.Delete(ctx, electionID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := elections.Delete(ctx, electionID); !errors.Is(err, apperrors.ErrElectionNotFound) {
		t.Errorf("second delete error = %v, want %v", err, apperrors.ErrElectionNotFound)
	}
}

func TestUserAddKarmaConcurrent(t *testing.T) {
	s := NewStore()
	users := &UserStore{s}
	ctx := context.Background()

	userID, err := users.Create(ctx, &models.User{
		Name:  "Dana",
		Email: "dana@example.com",
		Role:  models.RoleStudent,
		Karma: 200,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	const credits = 40
	var wg sync.WaitGroup
	for i := 0; i < credits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := users.AddKarma(ctx, userID, 5); err != nil {
				t.Errorf("AddKarma: %v", err)
			}
		}()
	}
	wg.Wait()

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if want := 200 + credits*5; user.Karma != want {
		t.Errorf("Karma = %d, want %d", user.Karma, want)
	}
}

func TestLeaderboardOrderingAndLimit(t *testing.T) {
	s := NewStore()
	users := &UserStore{s}
	ctx := context.Background()

	for i, karma := range []int{10, 50, 50, 5} {
		_, err := users.Create(ctx, &models.User{
			Name:  fmt.Sprintf("user-%d", i),
			Email: fmt.Sprintf("user-%d@example.com", i),
			Role:  models.RoleStudent,
			Karma: karma,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	top, err := users.Leaderboard(ctx, 3)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	// Equal karma falls back to id order
	if top[0].Name != "user-1" || top[1].Name != "user-2" || top[2].Name != "user-0" {
		t.Errorf("order = %s, %s, %s", top[0].Name, top[1].Name, top[2].Name)
	}
	for _, u := range top {
		if u.Password != "" {
			t.Errorf("leaderboard leaked password hash for %s", u.Name)
		}
	}
}

func TestSOSAppendOnly(t *testing.T) {
	s := NewStore()
	sos := &SOSStore{s}
	ctx := context.Background()

	for _, loc := range []string{"Library, 2nd Floor", "Parking Lot B"} {
		if _, err := sos.Create(ctx, &models.SOSAlert{Author: "Alice Student", Location: loc}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	alerts, err := sos.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("len = %d, want 2", len(alerts))
	}
	if alerts[0].Location != "Parking Lot B" {
		t.Errorf("newest alert = %q, want %q", alerts[0].Location, "Parking Lot B")
	}
}
