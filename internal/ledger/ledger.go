package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Listings carry amounts and totals as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is a single ledger record owned by a user email.
type Transaction struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NewTransaction is the client-supplied part of a transaction. The owner is
// never part of it.
type NewTransaction struct {
	Amount      string
	Description string
	Date        time.Time
}

// Summary is a list of transactions with the sum of their amounts.
type Summary struct {
	Transactions []Transaction   `json:"transactions"`
	Total        decimal.Decimal `json:"totalAmount"`
}

// Store defines the contract implemented by ledger backends (e.g. Postgres).
// Get and Delete return apperr.ErrNotFound for unknown ids; listings are
// ordered by creation time.
type Store interface {
	Create(ctx context.Context, tx Transaction) error
	FindAll(ctx context.Context) ([]Transaction, error)
	FindByOwner(ctx context.Context, email string) ([]Transaction, error)
	Get(ctx context.Context, id string) (Transaction, error)
	Delete(ctx context.Context, id string) (Transaction, error)
}

// Sum folds amounts starting from zero.
func Sum(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}
