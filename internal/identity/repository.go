package identity

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
)

const uniqueViolation = "23505"

// Repository persists users. Implementations return apperr.ErrUserNotFound
// and apperr.ErrDuplicateEmail for the corresponding conditions.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed identity repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user. The primary key on email backs the
// one-user-per-email invariant when two registrations race.
func (r *PostgresRepository) Create(ctx context.Context, user User) error {
	_, err := r.db.Exec(ctx, `INSERT INTO users (email, name, age, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5)`, user.Email, user.Name, user.Age, user.PasswordHash, user.CreatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperr.ErrDuplicateEmail
		}
		return apperr.Store("insert user", err)
	}
	return nil
}

// FindByEmail fetches a user by normalized email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT email, name, age, password_hash, created_at FROM users WHERE email = $1`, email)
	var (
		user      User
		createdAt time.Time
	)
	if err := row.Scan(&user.Email, &user.Name, &user.Age, &user.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.ErrUserNotFound
		}
		return User{}, apperr.Store("find user", err)
	}
	user.CreatedAt = createdAt.UTC()
	return user, nil
}
