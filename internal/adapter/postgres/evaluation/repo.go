// Package evaluation implements the evaluation repository using PostgreSQL.
// A submission carries at most one evaluation; the unique index on
// submission_id enforces that under concurrent writers.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/neologe-backend/internal/adapter/postgres"
	"github.com/heartmarshall/neologe-backend/internal/domain"
)

const evaluationColumns = "id, submission_id, response_ids, conflict, explanation, resolution_choice, resolution_feedback, created_at"

// Repo provides evaluation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

// New creates a new evaluation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts the evaluation for a submission. A second insert for the
// same submission returns domain.ErrAlreadyExists instead of a new row.
func (r *Repo) Create(ctx context.Context, params domain.EvaluationCreate) (domain.Evaluation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.qb.Insert("evaluations").
		Columns("id", "submission_id", "response_ids", "conflict", "explanation", "created_at").
		Values(id, params.SubmissionID, params.ResponseIDs, params.Conflict, params.Explanation, now).
		Suffix("ON CONFLICT (submission_id) DO NOTHING RETURNING " + evaluationColumns).
		ToSql()
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("build create evaluation: %w", err)
	}

	ev, err := scanEvaluation(querier.QueryRow(ctx, query, args...))
	if err != nil {
		// DO NOTHING swallows the conflicting row, so RETURNING yields nothing.
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Evaluation{}, fmt.Errorf("evaluation for submission %s: %w", params.SubmissionID, domain.ErrAlreadyExists)
		}
		return domain.Evaluation{}, postgres.MapError(err, "evaluation", id)
	}

	return ev, nil
}

// GetBySubmission returns the evaluation attached to a submission.
func (r *Repo) GetBySubmission(ctx context.Context, submissionID uuid.UUID) (domain.Evaluation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.qb.Select(evaluationColumns).
		From("evaluations").
		Where(sq.Eq{"submission_id": submissionID}).
		ToSql()
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("build get evaluation: %w", err)
	}

	ev, err := scanEvaluation(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Evaluation{}, postgres.MapError(err, "evaluation", submissionID)
	}

	return ev, nil
}

// SetResolution records the user's choice on a conflicted evaluation.
func (r *Repo) SetResolution(ctx context.Context, submissionID uuid.UUID, choice string, feedback *string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.qb.Update("evaluations").
		Set("resolution_choice", choice).
		Set("resolution_feedback", feedback).
		Where(sq.Eq{"submission_id": submissionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set resolution: %w", err)
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "evaluation", submissionID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("evaluation for submission %s: %w", submissionID, domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(row rowScanner) (domain.Evaluation, error) {
	var ev domain.Evaluation

	err := row.Scan(&ev.ID, &ev.SubmissionID, &ev.ResponseIDs, &ev.Conflict,
		&ev.Explanation, &ev.ResolutionChoice, &ev.ResolutionFeedback, &ev.CreatedAt)
	if err != nil {
		return domain.Evaluation{}, err
	}

	return ev, nil
}
