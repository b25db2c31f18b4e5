package repository

import (
	"context"
	"sync"

	"nifinova/internal/entity"
)

// AccountRepository defines the interface for login account lookups.
type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
	FindByID(ctx context.Context, id int64) (*entity.Account, error)
}

// NewAccountRepository creates an in-memory account repository pre-seeded
// with the given accounts.
func NewAccountRepository(seed ...entity.Account) AccountRepository {
	r := &accountRepository{accounts: make(map[int64]entity.Account)}
	for i, acc := range seed {
		if acc.ID == 0 {
			acc.ID = int64(i + 1)
		}
		r.accounts[acc.ID] = acc
	}
	return r
}

type accountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]entity.Account
}

// FindByUsername retrieves an account by its login name.
func (r *accountRepository) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, acc := range r.accounts {
		if acc.Username == username {
			found := acc
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(_ context.Context, id int64) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &acc, nil
}
