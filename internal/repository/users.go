package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User is a persisted account record. The password column holds an opaque
// credential (a bcrypt hash); it never leaves the API boundary.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password" json:"-"`
}

// CreateUserParams carries the fields of a new user.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
}

// NormalizeEmail lowercases and trims an email address. Emails are matched
// case-insensitively, so both lookups and inserts normalize first.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UsersRepository performs user lookups and inserts against the users table.
type UsersRepository struct {
	pool *pgxpool.Pool
}

func NewUsersRepository(pool *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{pool: pool}
}

const userColumns = "id, name, email, password"

// GetByEmail returns the user with the given email, or (nil, nil) when no
// user matches. The email is normalized before binding, so lookups are
// case-insensitive.
//
// Exactly one row is expected on a match. If the store ever holds more
// than one row for an email, that surfaces as an error rather than
// silently picking a row.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE users.email = $1",
		NormalizeEmail(email),
	)
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if errors.Is(err, pgx.ErrTooManyRows) {
			return nil, fmt.Errorf("data integrity: multiple users share email %q: %w", NormalizeEmail(email), err)
		}
		return nil, fmt.Errorf("collecting user by email: %w", err)
	}

	return &user, nil
}

// GetByID returns the user with the given id, or (nil, nil) when absent.
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE users.id = $1",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("collecting user by id: %w", err)
	}

	return &user, nil
}

// Create inserts a new user and returns the persisted record including its
// assigned id. A duplicate email violates the unique constraint on the
// email column; the wrapped driver error classifies as
// sqlerr.UniqueViolation.
func (r *UsersRepository) Create(ctx context.Context, params CreateUserParams) (*User, error) {
	rows, err := r.pool.Query(ctx,
		"INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING "+userColumns,
		params.Name,
		NormalizeEmail(params.Email),
		params.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[User])
	if err != nil {
		return nil, fmt.Errorf("collecting inserted user: %w", err)
	}

	return &user, nil
}
