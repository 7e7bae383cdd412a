package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vani-campus/vani/internal/app/models"
	"github.com/vani-campus/vani/internal/db"
	"github.com/vani-campus/vani/internal/pkg/logger"
)

// SOSRepository handles database operations for SOS alerts
type SOSRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewSOSRepository creates a new SOSRepository
func NewSOSRepository(database *db.PostgresDB) *SOSRepository {
	return &SOSRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new SOS alert and returns its id
func (r *SOSRepository) Create(ctx context.Context, alert *models.SOSAlert) (int64, error) {
	sql, args, err := r.sb.Insert("sos_alerts").
		Columns("author", "location").
		Values(alert.Author, alert.Location).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create alert query: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&alert.ID, &alert.Timestamp)
	if err != nil {
		logger.Error().Err(err).Str("author", alert.Author).Msg("Error inserting SOS alert")
		return 0, fmt.Errorf("error creating SOS alert: %w", err)
	}

	return alert.ID, nil
}

// GetAll retrieves all alerts, newest first
func (r *SOSRepository) GetAll(ctx context.Context) ([]models.SOSAlert, error) {
	sql, args, err := r.sb.Select("id", "author", "location", "created_at").
		From("sos_alerts").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list alerts query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list alerts query")
		return nil, fmt.Errorf("error querying SOS alerts: %w", err)
	}
	defer rows.Close()

	alerts := []models.SOSAlert{}
	for rows.Next() {
		var alert models.SOSAlert
		if err := rows.Scan(&alert.ID, &alert.Author, &alert.Location, &alert.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert rows: %w", err)
	}

	return alerts, nil
}
