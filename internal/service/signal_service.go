package service

import (
	"context"

	"nifinova/internal/entity"
	"nifinova/internal/repository"
)

// SignalService exposes read access to the generated trading signals.
type SignalService interface {
	List(ctx context.Context) ([]entity.TradingSignal, error)
}

// NewSignalService creates the signal service.
func NewSignalService(signalRepo repository.SignalRepository) SignalService {
	return &signalService{signalRepo: signalRepo}
}

type signalService struct {
	signalRepo repository.SignalRepository
}

// List returns the active signals, newest first.
func (s *signalService) List(ctx context.Context) ([]entity.TradingSignal, error) {
	return s.signalRepo.FindActive(ctx)
}
