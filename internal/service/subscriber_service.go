package service

import (
	"context"
	"regexp"
	"strings"

	"nifinova/internal/entity"
	"nifinova/internal/repository"
	"nifinova/pkg/logger"

	"github.com/pkg/errors"
)

// ErrInvalidPhoneNumber is returned when a phone number fails shape
// validation.
var ErrInvalidPhoneNumber = errors.New("invalid phone number")

// Digits with an optional leading plus, 10 to 15 digits total.
var phoneNumberPattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// SubscriberService manages the WhatsApp notification recipients.
type SubscriberService interface {
	List(ctx context.Context) ([]entity.Subscriber, error)
	Add(ctx context.Context, phoneNumber string) (*entity.Subscriber, error)
	Remove(ctx context.Context, phoneNumber string) error
}

// NewSubscriberService creates the subscriber service.
func NewSubscriberService(subscriberRepo repository.SubscriberRepository, log *logger.Logger) SubscriberService {
	return &subscriberService{subscriberRepo: subscriberRepo, log: log}
}

type subscriberService struct {
	subscriberRepo repository.SubscriberRepository
	log            *logger.Logger
}

// List returns the active subscribers.
func (s *subscriberService) List(ctx context.Context) ([]entity.Subscriber, error) {
	return s.subscriberRepo.FindActive(ctx)
}

// Add validates and registers a new phone number. It returns
// ErrInvalidPhoneNumber on a malformed number and
// repository.ErrAlreadyExists on a duplicate active one.
func (s *subscriberService) Add(ctx context.Context, phoneNumber string) (*entity.Subscriber, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if !phoneNumberPattern.MatchString(phoneNumber) {
		return nil, ErrInvalidPhoneNumber
	}

	subscriber, err := s.subscriberRepo.Create(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Subscriber registered", logger.StringField("phone_number", phoneNumber))
	return subscriber, nil
}

// Remove deactivates a subscriber. It returns repository.ErrNotFound when the
// number has no active registration.
func (s *subscriberService) Remove(ctx context.Context, phoneNumber string) error {
	return s.subscriberRepo.Deactivate(ctx, strings.TrimSpace(phoneNumber))
}
