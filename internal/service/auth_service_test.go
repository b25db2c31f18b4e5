package service

import (
	"context"
	"testing"

	"nifinova/internal/entity"
	"nifinova/internal/repository"
	"nifinova/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	accountRepo := repository.NewAccountRepository(entity.Account{
		Username: "pkrsolution",
		Password: "prabhanjan2025",
	})
	return NewAuthService(accountRepo, repository.NewSessionRepository(), log)
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	account, token, err := svc.Login(ctx, "pkrsolution", "prabhanjan2025")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "pkrsolution", account.Username)

	resolved, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, resolved.ID)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "pkrsolution", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "prabhanjan2025")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LogoutInvalidatesSession(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, token, err := svc.Login(ctx, "pkrsolution", "prabhanjan2025")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Logging out twice is fine.
	assert.NoError(t, svc.Logout(ctx, token))
}
