package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"nifinova/internal/entity"
)

// signalFreshness bounds how long a signal stays in list reads.
const signalFreshness = 24 * time.Hour

// SignalRepository defines the interface for trading signal data operations.
type SignalRepository interface {
	Create(ctx context.Context, signal *entity.TradingSignal) error
	FindActive(ctx context.Context) ([]entity.TradingSignal, error)
	CountActive(ctx context.Context) (int, error)
	MarkNotified(ctx context.Context, id int64) error
}

// NewSignalRepository creates an in-memory trading signal repository.
func NewSignalRepository() SignalRepository {
	return &signalRepository{signals: make(map[int64]entity.TradingSignal), nextID: 1}
}

type signalRepository struct {
	mu      sync.RWMutex
	signals map[int64]entity.TradingSignal
	nextID  int64
}

// Create stores a new signal, assigning its ID and creation time.
func (r *signalRepository) Create(_ context.Context, signal *entity.TradingSignal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	signal.ID = r.nextID
	signal.IsActive = true
	if signal.CreatedAt.IsZero() {
		signal.CreatedAt = time.Now()
	}
	r.signals[signal.ID] = *signal
	r.nextID++

	return nil
}

// FindActive returns active signals created within the freshness window,
// newest first.
func (r *signalRepository) FindActive(_ context.Context) ([]entity.TradingSignal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := time.Now().Add(-signalFreshness)
	var active []entity.TradingSignal
	for _, sig := range r.signals {
		if sig.IsActive && sig.CreatedAt.After(cutoff) {
			active = append(active, sig)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID > active[j].ID })
	return active, nil
}

// CountActive returns the number of signals FindActive would report.
func (r *signalRepository) CountActive(ctx context.Context) (int, error) {
	active, err := r.FindActive(ctx)
	if err != nil {
		return 0, err
	}
	return len(active), nil
}

// MarkNotified flips the whatsapp_sent flag exactly once. A second call for
// the same signal returns ErrAlreadyNotified.
func (r *signalRepository) MarkNotified(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sig, ok := r.signals[id]
	if !ok {
		return ErrNotFound
	}
	if sig.WhatsAppSent {
		return ErrAlreadyNotified
	}
	sig.WhatsAppSent = true
	r.signals[id] = sig

	return nil
}
