package service

import (
	"context"
	"testing"

	"nifinova/internal/entity"
	"nifinova/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioService_EmptySummary(t *testing.T) {
	svc := NewPortfolioService(repository.NewPositionRepository())

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.ActivePositions)
	assert.Zero(t, summary.TotalPnL)
	assert.Zero(t, summary.InvestedValue)
	assert.Zero(t, summary.CurrentValue)
}

func TestPortfolioService_SummaryAggregatesPositions(t *testing.T) {
	repo := repository.NewPositionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.StockPosition{
		Symbol: "NIFTY", Type: entity.SignalCall, StrikePrice: 19800,
		Quantity: 50, EntryPrice: 100, CurrentPrice: 130, IsActive: true,
	}))
	require.NoError(t, repo.Create(ctx, &entity.StockPosition{
		Symbol: "NIFTY", Type: entity.SignalPut, StrikePrice: 19900,
		Quantity: 25, EntryPrice: 80, CurrentPrice: 60, IsActive: true,
	}))

	svc := NewPortfolioService(repo)

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.ActivePositions)
	assert.InDelta(t, 50*100+25*80.0, summary.InvestedValue, 0.001)
	assert.InDelta(t, 50*130+25*60.0, summary.CurrentValue, 0.001)
	assert.InDelta(t, 50*30-25*20.0, summary.TotalPnL, 0.001)

	positions, err := svc.GetPositions(ctx)
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Less(t, positions[0].ID, positions[1].ID)
}
