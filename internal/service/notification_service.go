package service

import (
	"context"

	"nifinova/internal/entity"
	"nifinova/internal/repository"
	"nifinova/pkg/logger"
	"nifinova/pkg/telegram"
	"nifinova/pkg/whatsapp"

	"github.com/pkg/errors"
)

// NotificationService fans signal and market alerts out to the active
// subscribers. Delivery is best-effort: send failures are logged and
// reported, never propagated.
type NotificationService interface {
	NotifyHighConfidenceSignal(ctx context.Context, signal *entity.TradingSignal)
	NotifyMarketAlert(ctx context.Context, data *entity.MarketData)
}

// NewNotificationService creates a notification service. telegramNotifier
// may be nil when the broadcast channel is not configured.
func NewNotificationService(
	subscriberRepo repository.SubscriberRepository,
	signalRepo repository.SignalRepository,
	whatsappNotifier whatsapp.Notifier,
	telegramNotifier telegram.Notifier,
	log *logger.Logger,
) NotificationService {
	return &notificationService{
		subscriberRepo:   subscriberRepo,
		signalRepo:       signalRepo,
		whatsappNotifier: whatsappNotifier,
		telegramNotifier: telegramNotifier,
		log:              log,
	}
}

type notificationService struct {
	subscriberRepo   repository.SubscriberRepository
	signalRepo       repository.SignalRepository
	whatsappNotifier whatsapp.Notifier
	telegramNotifier telegram.Notifier
	log              *logger.Logger
}

// NotifyHighConfidenceSignal sends a signal alert to every active subscriber
// exactly once. The notified flag is claimed before any send, so a repeated
// call for the same signal is a no-op.
func (s *notificationService) NotifyHighConfidenceSignal(ctx context.Context, signal *entity.TradingSignal) {
	if err := s.signalRepo.MarkNotified(ctx, signal.ID); err != nil {
		if errors.Is(err, repository.ErrAlreadyNotified) {
			s.log.WarnContext(ctx, "Signal already notified, skipping fan-out",
				logger.Field("signal_id", signal.ID))
			return
		}
		s.log.ErrorContext(ctx, "Failed to mark signal as notified",
			logger.ErrorField(err), logger.Field("signal_id", signal.ID))
		return
	}
	signal.WhatsAppSent = true

	subscribers, err := s.subscriberRepo.FindActive(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list subscribers for fan-out", logger.ErrorField(err))
		return
	}

	message := whatsapp.FormatTradingSignal(signal)
	delivered := 0
	for _, sub := range subscribers {
		if s.whatsappNotifier.Send(ctx, sub.PhoneNumber, message) {
			delivered++
		}
	}

	s.log.InfoContext(ctx, "Signal fan-out complete",
		logger.Field("signal_id", signal.ID),
		logger.IntField("confidence", signal.Confidence),
		logger.IntField("subscribers", len(subscribers)),
		logger.IntField("delivered", delivered),
	)

	if s.telegramNotifier != nil {
		if err := s.telegramNotifier.SendMessage(telegram.FormatTradingSignal(signal)); err != nil {
			s.log.ErrorContext(ctx, "Failed to broadcast signal to Telegram", logger.ErrorField(err))
		}
	}
}

// NotifyMarketAlert sends a sentiment alert to every active subscriber.
func (s *notificationService) NotifyMarketAlert(ctx context.Context, data *entity.MarketData) {
	subscribers, err := s.subscriberRepo.FindActive(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list subscribers for market alert", logger.ErrorField(err))
		return
	}

	message := whatsapp.FormatMarketAlert(data)
	for _, sub := range subscribers {
		s.whatsappNotifier.Send(ctx, sub.PhoneNumber, message)
	}
}
