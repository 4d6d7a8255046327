// Package response implements the provider response repository using
// PostgreSQL. Rows are append-only: every provider call, successful or not,
// leaves exactly one row.
package response

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/neologe-backend/internal/adapter/postgres"
	"github.com/heartmarshall/neologe-backend/internal/domain"
)

const responseColumns = "id, submission_id, provider, raw_response, definition, failure_kind, failure_detail, received_at"

// Repo provides provider response persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

// New creates a new provider response repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts one provider response row.
func (r *Repo) Create(ctx context.Context, resp domain.ProviderResponse) (domain.ProviderResponse, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	var defJSON []byte
	if resp.Definition != nil {
		b, err := json.Marshal(resp.Definition)
		if err != nil {
			return domain.ProviderResponse{}, fmt.Errorf("marshal definition: %w", err)
		}
		defJSON = b
	}

	query, args, err := r.qb.Insert("provider_responses").
		Columns("id", "submission_id", "provider", "raw_response", "definition", "failure_kind", "failure_detail", "received_at").
		Values(id, resp.SubmissionID, resp.Provider, resp.RawResponse, defJSON, resp.FailureKind, resp.FailureDetail, now).
		Suffix("RETURNING " + responseColumns).
		ToSql()
	if err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("build create response: %w", err)
	}

	created, err := scanResponse(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ProviderResponse{}, postgres.MapError(err, "provider response", id)
	}

	return created, nil
}

// ListBySubmission returns all responses recorded for a submission,
// ordered by arrival.
func (r *Repo) ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]domain.ProviderResponse, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.qb.Select(responseColumns).
		From("provider_responses").
		Where(sq.Eq{"submission_id": submissionID}).
		OrderBy("received_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list responses: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	defer rows.Close()

	responses := []domain.ProviderResponse{}
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responses: %w", err)
	}

	return responses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResponse(row rowScanner) (domain.ProviderResponse, error) {
	var resp domain.ProviderResponse
	var defJSON []byte

	err := row.Scan(&resp.ID, &resp.SubmissionID, &resp.Provider, &resp.RawResponse,
		&defJSON, &resp.FailureKind, &resp.FailureDetail, &resp.ReceivedAt)
	if err != nil {
		return domain.ProviderResponse{}, err
	}

	if len(defJSON) > 0 {
		var def domain.StandardizedDefinition
		if err := json.Unmarshal(defJSON, &def); err != nil {
			return domain.ProviderResponse{}, fmt.Errorf("unmarshal definition: %w", err)
		}
		resp.Definition = &def
	}

	return resp, nil
}
