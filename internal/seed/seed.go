package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/vani-campus/vani/internal/app/models"
	appRepos "github.com/vani-campus/vani/internal/app/repositories"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
)

// CreateDefaultData seeds the demo accounts and sample content. Seeding is
// idempotent: it runs only when the demo student account does not exist yet.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	_, err := repos.Users.GetByEmail(ctx, "alice@campus.edu")
	if err == nil {
		lgr.Debug().Msg("Default data already present, skipping seed")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	lgr.Info().Msg("Creating default data...")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	alice := &appModels.User{
		Name:     "Alice Student",
		Email:    "alice@campus.edu",
		Password: string(hashed),
		Role:     appModels.RoleStudent,
		Karma:    200,
	}
	aliceID, err := repos.Users.Create(ctx, alice)
	if err != nil {
		return err
	}

	bob := &appModels.User{
		Name:     "Dr. Bob Professor",
		Email:    "bob@campus.edu",
		Password: string(hashed),
		Role:     appModels.RoleProfessor,
		Karma:    500,
	}
	if _, err := repos.Users.Create(ctx, bob); err != nil {
		return err
	}

	post := &appModels.Post{
		Title:       "WiFi is down in the library again",
		Body:        "Third time this week. Can facilities please look into this?",
		Author:      alice.Name,
		AuthorID:    &aliceID,
		IsAnonymous: false,
		Type:        appModels.PostTypeComplaint,
	}
	if _, err := repos.Posts.Create(ctx, post); err != nil {
		return err
	}

	election := &appModels.Election{
		Title:       "Student Council President",
		Description: "Vote for next year's student council president",
		Type:        appModels.ElectionTypeElection,
		Status:      appModels.ElectionStatusActive,
		Options: []appModels.ElectionOption{
			{ID: "opt0", Text: "Carol Chen", Votes: 0, Position: 0},
			{ID: "opt1", Text: "David Park", Votes: 5, Position: 1},
			{ID: "opt2", Text: "Erin Walsh", Votes: 8, Position: 2},
		},
	}
	if _, err := repos.Elections.Create(ctx, election); err != nil {
		return err
	}

	lgr.Info().Msg("Default data created")
	return nil
}
