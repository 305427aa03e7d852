package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
	"github.com/congo-pay/pocket_ledger/internal/auth"
	"github.com/congo-pay/pocket_ledger/internal/identity"
	"github.com/congo-pay/pocket_ledger/internal/metrics"
	"github.com/congo-pay/pocket_ledger/internal/notification"
)

// Service records, lists and deletes transactions on behalf of sessions.
//
// With ownerScoped unset, listing and deletion ignore ownership: every
// caller sees and may delete every transaction. Setting it restricts both
// to the session's own records.
type Service struct {
	store       Store
	notifier    notification.Notifier
	ownerScoped bool
	now         func() time.Time
}

// NewService builds a ledger service. notifier may be nil.
func NewService(store Store, notifier notification.Notifier, ownerScoped bool) *Service {
	return &Service{store: store, notifier: notifier, ownerScoped: ownerScoped, now: time.Now}
}

// OwnerScoped reports whether list and delete are restricted to the session owner.
func (s *Service) OwnerScoped() bool {
	return s.ownerScoped
}

// AddTransaction validates input and stores a transaction owned by the
// session email. Nothing is written when validation fails.
func (s *Service) AddTransaction(ctx context.Context, claims auth.SessionClaims, input NewTransaction) (Transaction, error) {
	tx, err := s.addTransaction(ctx, claims, input)
	metrics.LedgerOperation("add", err)
	return tx, err
}

func (s *Service) addTransaction(ctx context.Context, claims auth.SessionClaims, input NewTransaction) (Transaction, error) {
	owner := identity.NormalizeEmail(claims.Email)
	if owner == "" {
		return Transaction{}, apperr.ErrUnauthenticated
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return Transaction{}, err
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return Transaction{}, apperr.Validation("description", "is required")
	}

	now := s.now().UTC()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	tx := Transaction{
		ID:          uuid.NewString(),
		Email:       owner,
		Amount:      amount,
		Description: description,
		Date:        date.UTC(),
		CreatedAt:   now,
	}
	if err := s.store.Create(ctx, tx); err != nil {
		return Transaction{}, err
	}

	s.notify(ctx, notification.KindTransactionAdded, tx)
	return tx, nil
}

// ListTransactions returns the transactions visible to the caller and their
// total. An empty ledger totals zero.
func (s *Service) ListTransactions(ctx context.Context, claims auth.SessionClaims) (Summary, error) {
	summary, err := s.listTransactions(ctx, claims)
	metrics.LedgerOperation("list", err)
	return summary, err
}

func (s *Service) listTransactions(ctx context.Context, claims auth.SessionClaims) (Summary, error) {
	var (
		txs []Transaction
		err error
	)
	if s.ownerScoped {
		owner := identity.NormalizeEmail(claims.Email)
		if owner == "" {
			return Summary{}, apperr.ErrUnauthenticated
		}
		txs, err = s.store.FindByOwner(ctx, owner)
	} else {
		txs, err = s.store.FindAll(ctx)
	}
	if err != nil {
		return Summary{}, err
	}
	if txs == nil {
		txs = []Transaction{}
	}
	return Summary{Transactions: txs, Total: Sum(txs)}, nil
}

// DeleteTransaction removes a transaction by id. Unknown ids, including a
// repeated delete, yield apperr.ErrNotFound.
func (s *Service) DeleteTransaction(ctx context.Context, claims auth.SessionClaims, id string) (Transaction, error) {
	tx, err := s.deleteTransaction(ctx, claims, id)
	metrics.LedgerOperation("delete", err)
	return tx, err
}

func (s *Service) deleteTransaction(ctx context.Context, claims auth.SessionClaims, id string) (Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Transaction{}, apperr.ErrNotFound
	}

	if s.ownerScoped {
		owner := identity.NormalizeEmail(claims.Email)
		if owner == "" {
			return Transaction{}, apperr.ErrUnauthenticated
		}
		existing, err := s.store.Get(ctx, id)
		if err != nil {
			return Transaction{}, err
		}
		// Foreign records are indistinguishable from missing ones.
		if existing.Email != owner {
			return Transaction{}, apperr.ErrNotFound
		}
	}

	tx, err := s.store.Delete(ctx, id)
	if err != nil {
		return Transaction{}, err
	}

	s.notify(ctx, notification.KindTransactionDeleted, tx)
	return tx, nil
}

func (s *Service) notify(ctx context.Context, kind string, tx Transaction) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Send(ctx, notification.Message{
		Kind:          kind,
		Destination:   tx.Email,
		TransactionID: tx.ID,
		Body:          fmt.Sprintf("%s %s", tx.Amount.String(), tx.Description),
	})
}

const (
	// Amounts fit NUMERIC(14,2): twelve integer digits and cents.
	maxIntegerDigits = 12
	maxScale         = 2
)

func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, apperr.Validation("amount", "is required")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, apperr.Validation("amount", "must be a number")
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, apperr.Validation("amount", "must be greater than zero")
	}
	// Bound the exponent before any arithmetic; rescaling "1e5000000" or
	// "1e-1000000000" allocates a coefficient with that many digits.
	exp := int(amount.Exponent())
	if amount.NumDigits()+exp > maxIntegerDigits {
		return decimal.Decimal{}, apperr.Validation("amount", "must be less than 1000000000000")
	}
	if exp < -(maxScale+maxIntegerDigits) || !amount.Equal(amount.Round(maxScale)) {
		return decimal.Decimal{}, apperr.Validation("amount", "must have at most 2 decimal places")
	}
	return amount, nil
}
