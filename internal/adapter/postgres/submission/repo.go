// Package submission implements the Submission repository using PostgreSQL.
package submission

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/neologe-backend/internal/adapter/postgres"
	"github.com/heartmarshall/neologe-backend/internal/domain"
)

const submissionColumns = "id, user_id, word, user_definition, context, status, created_at, updated_at"

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

// New creates a new submission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a new submission in the pending status.
func (r *Repo) Create(ctx context.Context, params domain.SubmissionCreate) (domain.Submission, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.qb.Insert("submissions").
		Columns("id", "user_id", "word", "user_definition", "context", "status", "created_at", "updated_at").
		Values(id, params.UserID, params.Word, params.UserDefinition, params.Context, domain.StatusPending, now, now).
		Suffix("RETURNING " + submissionColumns).
		ToSql()
	if err != nil {
		return domain.Submission{}, fmt.Errorf("build create submission: %w", err)
	}

	s, err := scanSubmission(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Submission{}, postgres.MapError(err, "submission", id)
	}

	return s, nil
}

// GetByID returns a submission by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Submission, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.qb.Select(submissionColumns).
		From("submissions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Submission{}, fmt.Errorf("build get submission: %w", err)
	}

	s, err := scanSubmission(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Submission{}, postgres.MapError(err, "submission", id)
	}

	return s, nil
}

// ListByUser returns the user's submissions, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.SubmissionFilter) ([]domain.Submission, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := r.qb.Select(submissionColumns).
		From("submissions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list submissions: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	subs := []domain.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}

	return subs, nil
}

// UpdateStatus moves a submission from one status to another atomically.
// The WHERE clause on the current status makes concurrent updaters race
// safely: exactly one wins, the rest get domain.ErrInvalidStateTransition.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.SubmissionStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.qb.Update("submissions").
		Set("status", to).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "submission", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("submission %s is not %s: %w", id, from, domain.ErrInvalidStateTransition)
	}

	return nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (domain.Submission, error) {
	var s domain.Submission
	var status string

	err := row.Scan(&s.ID, &s.UserID, &s.Word, &s.UserDefinition, &s.Context,
		&status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Submission{}, err
	}

	s.Status = domain.SubmissionStatus(status)
	return s, nil
}
