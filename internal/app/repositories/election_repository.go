package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/db"
	"github.com/vani-campus/vani/internal/pkg/apperrors"
	"github.com/vani-campus/vani/internal/pkg/logger"
)

// ElectionRepository handles database operations for elections and their options
type ElectionRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewElectionRepository creates a new ElectionRepository
func NewElectionRepository(database *db.PostgresDB) *ElectionRepository {
	return &ElectionRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an election with its options in one transaction
func (r *ElectionRepository) Create(ctx context.Context, election *models.Election) (int64, error) {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("elections").
			Columns("title", "description", "type", "status").
			Values(election.Title, election.Description, string(election.Type), string(election.Status)).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create election query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&election.ID); err != nil {
			return fmt.Errorf("error creating election: %w", err)
		}

		for i := range election.Options {
			opt := &election.Options[i]
			optSQL, optArgs, err := r.sb.Insert("election_options").
				Columns("election_id", "option_id", "text", "votes", "position").
				Values(election.ID, opt.ID, opt.Text, opt.Votes, opt.Position).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build create option query: %w", err)
			}
			if _, err := tx.Exec(ctx, optSQL, optArgs...); err != nil {
				return fmt.Errorf("error creating election option: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("title", election.Title).Msg("Error inserting election")
		return 0, err
	}

	return election.ID, nil
}

// GetByID retrieves an election with its options
func (r *ElectionRepository) GetByID(ctx context.Context, id int64) (*models.Election, error) {
	election := &models.Election{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, title, description, type, status, voted_by FROM elections WHERE id = $1`,
		id,
	).Scan(&election.ID, &election.Title, &election.Description, &election.Type, &election.Status, &election.VotedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrElectionNotFound
		}
		logger.Error().Err(err).Int64("electionID", id).Msg("Error scanning election row")
		return nil, fmt.Errorf("error getting election: %w", err)
	}

	options, err := r.loadOptions(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	election.Options = options[id]

	return election, nil
}

// GetAll retrieves all elections with their options
func (r *ElectionRepository) GetAll(ctx context.Context) ([]models.Election, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, title, description, type, status, voted_by FROM elections ORDER BY id`)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list elections query")
		return nil, fmt.Errorf("error querying elections: %w", err)
	}
	defer rows.Close()

	elections := []models.Election{}
	ids := []int64{}
	for rows.Next() {
		var e models.Election
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Type, &e.Status, &e.VotedBy); err != nil {
			return nil, fmt.Errorf("error scanning election row: %w", err)
		}
		elections = append(elections, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating election rows: %w", err)
	}

	if len(ids) > 0 {
		options, err := r.loadOptions(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range elections {
			elections[i].Options = options[elections[i].ID]
		}
	}

	return elections, nil
}

// loadOptions fetches the options for the given elections, in position order
func (r *ElectionRepository) loadOptions(ctx context.Context, electionIDs []int64) (map[int64][]models.ElectionOption, error) {
	sql, args, err := r.sb.Select("election_id", "option_id", "text", "votes", "position").
		From("election_options").
		Where(squirrel.Eq{"election_id": electionIDs}).
		OrderBy("election_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build load options query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying election options: %w", err)
	}
	defer rows.Close()

	result := map[int64][]models.ElectionOption{}
	for rows.Next() {
		var electionID int64
		var opt models.ElectionOption
		if err := rows.Scan(&electionID, &opt.ID, &opt.Text, &opt.Votes, &opt.Position); err != nil {
			return nil, fmt.Errorf("error scanning option row: %w", err)
		}
		result[electionID] = append(result[electionID], opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating option rows: %w", err)
	}

	return result, nil
}

// ApplyVote runs the vote inside a short transaction. The election row is
// locked first so the status check, the ledger check, the option bump and the
// ledger append all observe and produce a consistent state.
func (r *ElectionRepository) ApplyVote(ctx context.Context, electionID, userID int64, optionID string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var status models.ElectionStatus
		var votedBy []int64
		err := tx.QueryRow(ctx,
			`SELECT status, voted_by FROM elections WHERE id = $1 FOR UPDATE`,
			electionID,
		).Scan(&status, &votedBy)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrElectionNotFound
			}
			return fmt.Errorf("error locking election row: %w", err)
		}

		if status != models.ElectionStatusActive {
			return apperrors.ErrElectionClosed
		}
		for _, id := range votedBy {
			if id == userID {
				return apperrors.ErrAlreadyVoted
			}
		}

		cmdTag, err := tx.Exec(ctx,
			`UPDATE election_options SET votes = votes + 1 WHERE election_id = $1 AND option_id = $2`,
			electionID, optionID,
		)
		if err != nil {
			return fmt.Errorf("error incrementing option votes: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrOptionNotFound
		}

		if _, err := tx.Exec(ctx,
			`UPDATE elections SET voted_by = array_append(voted_by, $2) WHERE id = $1`,
			electionID, userID,
		); err != nil {
			return fmt.Errorf("error appending to vote ledger: %w", err)
		}

		return nil
	})
}

// Delete removes an election and its options regardless of status
func (r *ElectionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM election_options WHERE election_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting election options: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM elections WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting election: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrElectionNotFound
		}

		return nil
	})
}
