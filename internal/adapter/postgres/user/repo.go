// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/aditya-zanzad/quizapp-backend/internal/adapter/postgres"
	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, password_hash, role, created_at, updated_at`

const createSQL = `
INSERT INTO users (` + userColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const getByIDSQL = `
SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + ` FROM users WHERE email = $1`

// Create inserts a new user.
// A duplicate email results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		u.ID, u.Email, u.Name, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.ID)
	}

	return u, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, userID))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// GetByEmail returns a user by email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	return u, nil
}
