package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"nifinova/internal/entity"
)

// PositionRepository defines the interface for portfolio position data
// operations. Nothing creates positions at runtime yet; the write path exists
// for a future order-entry flow.
type PositionRepository interface {
	Create(ctx context.Context, position *entity.StockPosition) error
	FindActive(ctx context.Context) ([]entity.StockPosition, error)
}

// NewPositionRepository creates an in-memory position repository.
func NewPositionRepository() PositionRepository {
	return &positionRepository{positions: make(map[int64]entity.StockPosition), nextID: 1}
}

type positionRepository struct {
	mu        sync.RWMutex
	positions map[int64]entity.StockPosition
	nextID    int64
}

// Create stores a new position, assigning its ID and creation time.
func (r *positionRepository) Create(_ context.Context, position *entity.StockPosition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	position.ID = r.nextID
	position.IsActive = true
	if position.CreatedAt.IsZero() {
		position.CreatedAt = time.Now()
	}
	r.positions[position.ID] = *position
	r.nextID++

	return nil
}

// FindActive returns all active positions ordered by ID.
func (r *positionRepository) FindActive(_ context.Context) ([]entity.StockPosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []entity.StockPosition
	for _, pos := range r.positions {
		if pos.IsActive {
			active = append(active, pos)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active, nil
}
