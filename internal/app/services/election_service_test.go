package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
)

func TestElectionCreateRequiresProfessor(t *testing.T) {
	svcs, repos := newTestServices(t)
	student := createUser(t, repos, "student", models.RoleStudent, 0)

	_, err := svcs.Elections.Create(context.Background(), student, "Council", "", models.ElectionTypeElection, []string{"A", "B"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}
}

func TestElectionCreateAssignsSequentialOptionIDs(t *testing.T) {
	svcs, repos := newTestServices(t)
	professor := createUser(t, repos, "prof", models.RoleProfessor, 0)

	election, err := svcs.Elections.Create(context.Background(), professor, "Lunch Poll", "pick one",
		models.ElectionTypePoll, []string{" Pizza ", "", "Tacos", "Pizza"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if election.Status != models.ElectionStatusActive {
		t.Errorf("Status = %q, want %q", election.Status, models.ElectionStatusActive)
	}
	if len(election.Options) != 3 {
		t.Fatalf("len(Options) = %d, want 3", len(election.Options))
	}

	// Blank entries are dropped, text is trimmed, duplicates stay distinct
	wantIDs := []string{"opt0", "opt1", "opt2"}
	wantTexts := []string{"Pizza", "Tacos", "Pizza"}
	for i, opt := range election.Options {
		if opt.ID != wantIDs[i] {
			t.Errorf("Options[%d].ID = %q, want %q", i, opt.ID, wantIDs[i])
		}
		if opt.Text != wantTexts[i] {
			t.Errorf("Options[%d].Text = %q, want %q", i, opt.Text, wantTexts[i])
		}
		if opt.Votes != 0 {
			t.Errorf("Options[%d].Votes = %d, want 0", i, opt.Votes)
		}
	}
}

func TestElectionCreateNeedsTwoOptions(t *testing.T) {
	svcs, repos := newTestServices(t)
	professor := createUser(t, repos, "prof", models.RoleProfessor, 0)

	_, err := svcs.Elections.Create(context.Background(), professor, "Poll", "", models.ElectionTypePoll, []string{"Only one", "  "})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrBadRequest)
	}
}

func TestElectionCreateUnknownType(t *testing.T) {
	svcs, repos := newTestServices(t)
	professor := createUser(t, repos, "prof", models.RoleProfessor, 0)

	_, err := svcs.Elections.Create(context.Background(), professor, "Poll", "", models.ElectionType("referendum"), []string{"A", "B"})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrBadRequest)
	}
}

func TestElectionDeleteIgnoresAccumulatedVotes(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()
	professor := createUser(t, repos, "prof", models.RoleProfessor, 0)
	voter := createUser(t, repos, "voter", models.RoleStudent, 0)

	election, err := svcs.Elections.Create(ctx, professor, "Poll", "", models.ElectionTypePoll, []string{"A", "B"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svcs.Votes.CastElectionVote(ctx, voter, election.ID, "opt0"); err != nil {
		t.Fatalf("vote: %v", err)
	}

	// Deletion succeeds even while the election is active with votes
	if err := svcs.Elections.Delete(ctx, professor, election.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err = svcs.Elections.GetByID(ctx, election.ID)
	if !errors.Is(err, apperrors.ErrElectionNotFound) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrElectionNotFound)
	}
}

func TestElectionDeleteRequiresProfessor(t *testing.T) {
	svcs, repos := newTestServices(t)
	ctx := context.Background()
	professor := createUser(t, repos, "prof", models.RoleProfessor, 0)
	student := createUser(t, repos, "student", models.RoleStudent, 0)

	election, err := svcs.Elections.Create(ctx, professor, "Poll", "", models.ElectionTypePoll, []string{"A", "B"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svcs.Elections.Delete(ctx, student, election.ID)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrPermissionDenied)
	}
}
