package services_test

import (
	"context"
	"testing"

	"github.com/acmedash/invoice_dashboard_app/internal/apperrors"
	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
	"github.com/acmedash/invoice_dashboard_app/internal/core/services"
	"github.com/acmedash/invoice_dashboard_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func seededUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &domain.User{
		UserID:       "user-1",
		Name:         "Demo User",
		Email:        "user@nextmail.com",
		PasswordHash: hash,
	}
}

func TestAuthenticate_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewAuthService(repo)

	repo.On("FindUserByEmail", mock.Anything, "user@nextmail.com").Return(seededUser(t, "123456"), nil)

	user, err := svc.Authenticate(context.Background(), "user@nextmail.com", "123456")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.UserID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewAuthService(repo)

	repo.On("FindUserByEmail", mock.Anything, "user@nextmail.com").Return(seededUser(t, "123456"), nil)

	user, err := svc.Authenticate(context.Background(), "user@nextmail.com", "wrong")

	require.Error(t, err)
	assert.Nil(t, user)
	var authErr *apperrors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apperrors.AuthKindInvalidCredentials, authErr.Kind)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewAuthService(repo)

	repo.On("FindUserByEmail", mock.Anything, "nobody@nextmail.com").Return(nil, apperrors.ErrNotFound)

	_, err := svc.Authenticate(context.Background(), "nobody@nextmail.com", "123456")

	var authErr *apperrors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apperrors.AuthKindInvalidCredentials, authErr.Kind)
}

func TestAuthenticate_MalformedHashIsProviderFailure(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewAuthService(repo)

	repo.On("FindUserByEmail", mock.Anything, "user@nextmail.com").Return(&domain.User{
		UserID:       "user-1",
		Email:        "user@nextmail.com",
		PasswordHash: "not-a-bcrypt-hash",
	}, nil)

	_, err := svc.Authenticate(context.Background(), "user@nextmail.com", "123456")

	var authErr *apperrors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apperrors.AuthKindProviderFailure, authErr.Kind)
}

func TestAuthenticate_StoreFailurePassesThrough(t *testing.T) {
	repo := new(MockUserRepository)
	svc := services.NewAuthService(repo)

	repo.On("FindUserByEmail", mock.Anything, "user@nextmail.com").Return(nil, assert.AnError)

	_, err := svc.Authenticate(context.Background(), "user@nextmail.com", "123456")

	require.Error(t, err)
	var authErr *apperrors.AuthError
	assert.NotErrorAs(t, err, &authErr, "infrastructure failures must not be classified as auth failures")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLoginFailureMessage(t *testing.T) {
	invalid := apperrors.NewAuthError(apperrors.AuthKindInvalidCredentials, nil)
	msg, ok := services.LoginFailureMessage(invalid)
	assert.True(t, ok)
	assert.Equal(t, "Invalid credentials.", msg)

	provider := apperrors.NewAuthError(apperrors.AuthKindProviderFailure, nil)
	msg, ok = services.LoginFailureMessage(provider)
	assert.True(t, ok)
	assert.Equal(t, "Something went wrong.", msg)

	// Unclassified errors must not be converted into a login message.
	_, ok = services.LoginFailureMessage(assert.AnError)
	assert.False(t, ok)
}
