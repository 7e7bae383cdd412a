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

// PostRepository handles database operations for posts
type PostRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(database *db.PostgresDB) *PostRepository {
	return &PostRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new post and returns its id
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	sql, args, err := r.sb.Insert("posts").
		Columns("title", "body", "author", "author_id", "is_anonymous", "type").
		Values(post.Title, post.Body, post.Author, post.AuthorID, post.IsAnonymous, string(post.Type)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create post query: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Str("title", post.Title).Msg("Error inserting post")
		return 0, fmt.Errorf("error creating post: %w", err)
	}

	return post.ID, nil
}

// GetByID retrieves a post by id
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	sql, args, err := r.sb.Select(
		"id", "title", "body", "author", "author_id", "is_anonymous", "type",
		"upvotes", "downvotes", "voted_by", "created_at",
	).
		From("posts").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}

	post := &models.Post{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&post.ID, &post.Title, &post.Body, &post.Author, &post.AuthorID, &post.IsAnonymous,
		&post.Type, &post.Upvotes, &post.Downvotes, &post.VotedBy, &post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Int64("postID", id).Msg("Error scanning post row")
		return nil, fmt.Errorf("error getting post: %w", err)
	}

	return post, nil
}

// GetAll retrieves all posts, newest first
func (r *PostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	sql, args, err := r.sb.Select(
		"id", "title", "body", "author", "author_id", "is_anonymous", "type",
		"upvotes", "downvotes", "voted_by", "created_at",
	).
		From("posts").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list posts query")
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Body, &post.Author, &post.AuthorID, &post.IsAnonymous,
			&post.Type, &post.Upvotes, &post.Downvotes, &post.VotedBy, &post.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

// ApplyVote records the vote in a single conditional update. The WHERE clause
// admits the row only when the voter is absent from the ledger, so the tally
// bump and the ledger append either both happen or neither does, and two
// racing votes from the same user can never both pass.
func (r *PostRepository) ApplyVote(ctx context.Context, postID, userID int64, direction models.VoteDirection) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `
		UPDATE posts
		SET upvotes   = upvotes   + CASE WHEN $3 = 'up'   THEN 1 ELSE 0 END,
		    downvotes = downvotes + CASE WHEN $3 = 'down' THEN 1 ELSE 0 END,
		    voted_by  = array_append(voted_by, $2)
		WHERE id = $1 AND NOT ($2 = ANY(voted_by))`,
		postID, userID, string(direction),
	)
	if err != nil {
		logger.Error().Err(err).Int64("postID", postID).Int64("userID", userID).Msg("Error applying post vote")
		return fmt.Errorf("error applying post vote: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the post is missing or the user already voted
		var exists bool
		err = r.db.Pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, postID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking post existence: %w", err)
		}
		if !exists {
			return apperrors.ErrPostNotFound
		}
		return apperrors.ErrAlreadyVoted
	}

	return nil
}
