package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/app/repositories"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
)

// ElectionService handles the election lifecycle. Creation and deletion are
// restricted to professors; voting is open to any authenticated identity.
type ElectionService struct {
	elections repositories.ElectionStore
}

// NewElectionService creates a new ElectionService
func NewElectionService(elections repositories.ElectionStore) *ElectionService {
	return &ElectionService{elections: elections}
}

// Create opens a new election or poll. Option ids are assigned sequentially
// in input order; duplicate texts stay distinct options. Blank entries are
// dropped before ids are assigned.
func (s *ElectionService) Create(ctx context.Context, creator models.Identity, title, description string, electionType models.ElectionType, optionTexts []string) (*models.Election, error) {
	if creator.Role != models.RoleProfessor {
		return nil, apperrors.NewForbiddenError("only professors can create elections")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.NewBadRequestError("title is required")
	}
	if !electionType.IsValid() {
		return nil, apperrors.NewBadRequestError("unknown election type")
	}

	options := make([]models.ElectionOption, 0, len(optionTexts))
	for _, text := range optionTexts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		options = append(options, models.ElectionOption{
			ID:       fmt.Sprintf("opt%d", len(options)),
			Text:     text,
			Position: len(options),
		})
	}
	if len(options) < 2 {
		return nil, apperrors.NewBadRequestError("at least two options are required")
	}

	election := &models.Election{
		Title:       title,
		Description: strings.TrimSpace(description),
		Type:        electionType,
		Status:      models.ElectionStatusActive,
		Options:     options,
	}

	if _, err := s.elections.Create(ctx, election); err != nil {
		return nil, err
	}

	return election, nil
}

// GetByID returns a single election
func (s *ElectionService) GetByID(ctx context.Context, id int64) (*models.Election, error) {
	return s.elections.GetByID(ctx, id)
}

// List returns all elections
func (s *ElectionService) List(ctx context.Context) ([]models.Election, error) {
	return s.elections.GetAll(ctx)
}

// Delete removes an election. Deletion does not check the status and does not
// touch karma already earned through the election's lifetime.
func (s *ElectionService) Delete(ctx context.Context, caller models.Identity, id int64) error {
	if caller.Role != models.RoleProfessor {
		return apperrors.NewForbiddenError("only professors can delete elections")
	}

	return s.elections.Delete(ctx, id)
}
