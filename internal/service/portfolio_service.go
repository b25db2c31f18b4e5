package service

import (
	"context"

	"nifinova/internal/dto"
	"nifinova/internal/entity"
	"nifinova/internal/repository"

	"github.com/pkg/errors"
)

// PortfolioService exposes the demo portfolio: the open option positions and
// their aggregate profit and loss.
type PortfolioService interface {
	GetPositions(ctx context.Context) ([]entity.StockPosition, error)
	GetSummary(ctx context.Context) (*dto.PortfolioSummary, error)
}

// NewPortfolioService creates the portfolio service.
func NewPortfolioService(positionRepo repository.PositionRepository) PortfolioService {
	return &portfolioService{positionRepo: positionRepo}
}

type portfolioService struct {
	positionRepo repository.PositionRepository
}

// GetPositions returns the open positions, oldest first.
func (s *portfolioService) GetPositions(ctx context.Context) ([]entity.StockPosition, error) {
	positions, err := s.positionRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list positions")
	}
	return positions, nil
}

// GetSummary aggregates the open positions into invested value, current value
// and total P&L. An empty portfolio yields an all-zero summary.
func (s *portfolioService) GetSummary(ctx context.Context) (*dto.PortfolioSummary, error) {
	positions, err := s.positionRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list positions")
	}

	summary := &dto.PortfolioSummary{ActivePositions: len(positions)}
	for _, pos := range positions {
		qty := float64(pos.Quantity)
		summary.InvestedValue += pos.EntryPrice * qty
		summary.CurrentValue += pos.CurrentPrice * qty
		summary.TotalPnL += (pos.CurrentPrice - pos.EntryPrice) * qty
	}
	return summary, nil
}
