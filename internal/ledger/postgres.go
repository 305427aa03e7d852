package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
)

const selectColumns = `SELECT id, email, amount::text, description, date, created_at FROM transactions`

// PostgresStore persists transactions in PostgreSQL.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constructs a Postgres-backed ledger store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts a single transaction row.
func (s *PostgresStore) Create(ctx context.Context, tx Transaction) error {
	id, err := uuid.Parse(tx.ID)
	if err != nil {
		return fmt.Errorf("transaction id: %w", err)
	}
	_, err = s.db.Exec(ctx, `INSERT INTO transactions (id, email, amount, description, date, created_at)
        VALUES ($1, $2, $3::numeric, $4, $5, $6)`, id, tx.Email, tx.Amount.String(), tx.Description, tx.Date.UTC(), tx.CreatedAt.UTC())
	if err != nil {
		return apperr.Store("insert transaction", err)
	}
	return nil
}

// FindAll returns every transaction ordered by creation time.
func (s *PostgresStore) FindAll(ctx context.Context) ([]Transaction, error) {
	rows, err := s.db.Query(ctx, selectColumns+` ORDER BY created_at, id`)
	if err != nil {
		return nil, apperr.Store("list transactions", err)
	}
	return collect(rows)
}

// FindByOwner returns the transactions owned by email.
func (s *PostgresStore) FindByOwner(ctx context.Context, email string) ([]Transaction, error) {
	rows, err := s.db.Query(ctx, selectColumns+` WHERE email = $1 ORDER BY created_at, id`, email)
	if err != nil {
		return nil, apperr.Store("list transactions by owner", err)
	}
	return collect(rows)
}

// Get fetches one transaction. A malformed id cannot exist and is reported
// as not found.
func (s *PostgresStore) Get(ctx context.Context, id string) (Transaction, error) {
	txID, err := uuid.Parse(id)
	if err != nil {
		return Transaction{}, apperr.ErrNotFound
	}
	rows, err := s.db.Query(ctx, selectColumns+` WHERE id = $1`, txID)
	if err != nil {
		return Transaction{}, apperr.Store("get transaction", err)
	}
	return collectOne(rows, "get transaction")
}

// Delete removes one transaction and returns it.
func (s *PostgresStore) Delete(ctx context.Context, id string) (Transaction, error) {
	txID, err := uuid.Parse(id)
	if err != nil {
		return Transaction{}, apperr.ErrNotFound
	}
	rows, err := s.db.Query(ctx, `DELETE FROM transactions WHERE id = $1
        RETURNING id, email, amount::text, description, date, created_at`, txID)
	if err != nil {
		return Transaction{}, apperr.Store("delete transaction", err)
	}
	return collectOne(rows, "delete transaction")
}

func collectOne(rows pgx.Rows, op string) (Transaction, error) {
	tx, err := pgx.CollectExactlyOneRow(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Transaction{}, apperr.ErrNotFound
		}
		return Transaction{}, apperr.Store(op, err)
	}
	return tx, nil
}

func collect(rows pgx.Rows) ([]Transaction, error) {
	txs, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, apperr.Store("scan transactions", err)
	}
	return txs, nil
}

func scanTransaction(row pgx.CollectableRow) (Transaction, error) {
	var (
		id        uuid.UUID
		amount    string
		date      time.Time
		createdAt time.Time
		tx        Transaction
	)
	if err := row.Scan(&id, &tx.Email, &amount, &tx.Description, &date, &createdAt); err != nil {
		return Transaction{}, err
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return Transaction{}, fmt.Errorf("amount %q: %w", amount, err)
	}
	tx.ID = id.String()
	tx.Amount = parsed
	tx.Date = date.UTC()
	tx.CreatedAt = createdAt.UTC()
	return tx, nil
}
