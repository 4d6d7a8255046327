// Package user implements the User repository using PostgreSQL.
package user

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

const userColumns = "id, username, email, password_hash, is_active, created_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a new user. A duplicate username or email results in
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, username, email, passwordHash string) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := r.qb.Insert("users").
		Columns("id", "username", "email", "password_hash", "is_active", "created_at").
		Values(id, username, email, passwordHash, true, now).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build create user: %w", err)
	}

	u, err := scanUser(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.qb.Select(userColumns).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build get user: %w", err)
	}

	u, err := scanUser(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.qb.Select(userColumns).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("build get user by username: %w", err)
	}

	u, err := scanUser(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User

	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsActive, &u.CreatedAt)
	if err != nil {
		return domain.User{}, err
	}

	return u, nil
}
