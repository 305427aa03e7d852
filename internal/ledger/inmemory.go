package ledger

import (
	"context"
	"errors"
	"sync"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
)

var errDuplicateID = errors.New("duplicate transaction id")

type inMemoryStore struct {
	mu    sync.RWMutex
	byID  map[string]Transaction
	order []string
}

// NewInMemory creates a concurrency-safe in-memory store useful for unit tests.
func NewInMemory() Store {
	return &inMemoryStore{byID: make(map[string]Transaction)}
}

func (s *inMemoryStore) Create(_ context.Context, tx Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[tx.ID]; exists {
		return apperr.Store("insert transaction", errDuplicateID)
	}
	s.byID[tx.ID] = tx
	s.order = append(s.order, tx.ID)
	return nil
}

func (s *inMemoryStore) FindAll(_ context.Context) ([]Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

func (s *inMemoryStore) FindByOwner(_ context.Context, email string) ([]Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, 0)
	for _, id := range s.order {
		if tx := s.byID[id]; tx.Email == email {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *inMemoryStore) Get(_ context.Context, id string) (Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.byID[id]
	if !ok {
		return Transaction{}, apperr.ErrNotFound
	}
	return tx, nil
}

func (s *inMemoryStore) Delete(_ context.Context, id string) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.byID[id]
	if !ok {
		return Transaction{}, apperr.ErrNotFound
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return tx, nil
}
