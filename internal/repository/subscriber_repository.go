package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"nifinova/internal/entity"
)

// SubscriberRepository defines the interface for WhatsApp subscriber data
// operations. Removal deactivates the record rather than deleting it.
type SubscriberRepository interface {
	Create(ctx context.Context, phoneNumber string) (*entity.Subscriber, error)
	FindActive(ctx context.Context) ([]entity.Subscriber, error)
	Deactivate(ctx context.Context, phoneNumber string) error
	CountActive(ctx context.Context) (int, error)
}

// NewSubscriberRepository creates an in-memory subscriber repository.
func NewSubscriberRepository() SubscriberRepository {
	return &subscriberRepository{subscribers: make(map[int64]entity.Subscriber), nextID: 1}
}

type subscriberRepository struct {
	mu          sync.RWMutex
	subscribers map[int64]entity.Subscriber
	nextID      int64
}

// Create registers a new subscriber. A phone number that already has an
// active record is rejected; a previously deactivated number may re-register
// under a fresh ID.
func (r *subscriberRepository) Create(_ context.Context, phoneNumber string) (*entity.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sub := range r.subscribers {
		if sub.PhoneNumber == phoneNumber && sub.IsActive {
			return nil, ErrAlreadyExists
		}
	}

	sub := entity.Subscriber{
		ID:          r.nextID,
		PhoneNumber: phoneNumber,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	r.subscribers[sub.ID] = sub
	r.nextID++

	return &sub, nil
}

// FindActive returns all active subscribers ordered by ID.
func (r *subscriberRepository) FindActive(_ context.Context) ([]entity.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []entity.Subscriber
	for _, sub := range r.subscribers {
		if sub.IsActive {
			active = append(active, sub)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}

// Deactivate soft-deletes the active subscriber with the given phone number.
func (r *subscriberRepository) Deactivate(_ context.Context, phoneNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, sub := range r.subscribers {
		if sub.PhoneNumber == phoneNumber && sub.IsActive {
			sub.IsActive = false
			r.subscribers[id] = sub
			return nil
		}
	}
	return ErrNotFound
}

// CountActive returns the number of active subscribers.
func (r *subscriberRepository) CountActive(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, sub := range r.subscribers {
		if sub.IsActive {
			count++
		}
	}
	return count, nil
}
