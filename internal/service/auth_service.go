package service

import (
	"context"

	"nifinova/internal/entity"
	"nifinova/internal/repository"
	"nifinova/pkg/logger"

	"github.com/pkg/errors"
)

// ErrInvalidCredentials is returned when a login attempt fails, without
// revealing whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles login, logout and session validation for the
// dashboard.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*entity.Account, string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*entity.Account, error)
}

// NewAuthService creates the auth service.
func NewAuthService(
	accountRepo repository.AccountRepository,
	sessionRepo repository.SessionRepository,
	log *logger.Logger,
) AuthService {
	return &authService{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

type authService struct {
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
	log         *logger.Logger
}

// Login verifies the credentials and opens a new session. On success it
// returns the account and the session token to set as a cookie.
func (s *authService) Login(ctx context.Context, username, password string) (*entity.Account, string, error) {
	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", errors.Wrap(err, "failed to look up account")
	}
	if account.Password != password {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessionRepo.Create(ctx, account.ID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to create session")
	}

	s.log.InfoContext(ctx, "User logged in", logger.StringField("username", account.Username))
	return account, token, nil
}

// Logout closes the session. An unknown token is treated as already logged
// out.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

// Authenticate resolves a session token to its account. It returns
// ErrInvalidCredentials when the token is unknown.
func (s *authService) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	accountID, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "failed to look up session")
	}

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "failed to look up account")
	}
	return account, nil
}
