package repository

import (
	"context"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// SessionRepository manages login sessions. Sessions live for the process
// lifetime; there is no expiry or rotation.
type SessionRepository interface {
	Create(ctx context.Context, accountID int64) (string, error)
	Get(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}

// NewSessionRepository creates a cache-backed session repository.
func NewSessionRepository() SessionRepository {
	return &sessionRepository{cache: gocache.New(gocache.NoExpiration, 0)}
}

type sessionRepository struct {
	cache *gocache.Cache
}

// Create opens a new session for an account and returns its token.
func (r *sessionRepository) Create(_ context.Context, accountID int64) (string, error) {
	token := uuid.NewString()
	r.cache.Set(token, accountID, gocache.NoExpiration)
	return token, nil
}

// Get resolves a session token to its account ID.
func (r *sessionRepository) Get(_ context.Context, token string) (int64, error) {
	v, ok := r.cache.Get(token)
	if !ok {
		return 0, ErrNotFound
	}
	return v.(int64), nil
}

// Delete closes a session. Deleting an unknown token is a no-op.
func (r *sessionRepository) Delete(_ context.Context, token string) error {
	r.cache.Delete(token)
	return nil
}
