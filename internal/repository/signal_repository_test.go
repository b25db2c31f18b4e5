package repository

import (
	"context"
	"testing"
	"time"

	"nifinova/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalRepository_CreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewSignalRepository()
	ctx := context.Background()

	first := &entity.TradingSignal{Type: entity.SignalCall, StrikePrice: 19850, Confidence: 72}
	second := &entity.TradingSignal{Type: entity.SignalPut, StrikePrice: 19800, Confidence: 65}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestSignalRepository_FindActiveFiltersStaleSignals(t *testing.T) {
	repo := NewSignalRepository()
	ctx := context.Background()

	stale := &entity.TradingSignal{
		Type:      entity.SignalCall,
		CreatedAt: time.Now().Add(-25 * time.Hour),
	}
	fresh := &entity.TradingSignal{Type: entity.SignalPut}

	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, repo.Create(ctx, fresh))

	active, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, fresh.ID, active[0].ID)

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSignalRepository_MarkNotifiedExactlyOnce(t *testing.T) {
	repo := NewSignalRepository()
	ctx := context.Background()

	sig := &entity.TradingSignal{Type: entity.SignalCall, Confidence: 92}
	require.NoError(t, repo.Create(ctx, sig))

	require.NoError(t, repo.MarkNotified(ctx, sig.ID))

	active, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.True(t, active[0].WhatsAppSent)

	assert.ErrorIs(t, repo.MarkNotified(ctx, sig.ID), ErrAlreadyNotified)
}

func TestSignalRepository_MarkNotifiedUnknownSignal(t *testing.T) {
	repo := NewSignalRepository()

	err := repo.MarkNotified(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
