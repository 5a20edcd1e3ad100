package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/acmedash/invoice_dashboard_app/internal/apperrors"
	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
	portsrepo "github.com/acmedash/invoice_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/acmedash/invoice_dashboard_app/internal/core/ports/services"
	"github.com/acmedash/invoice_dashboard_app/internal/utils"
)

// User-facing login failure vocabulary. Anything outside these two messages
// is not an authentication failure and is surfaced to the caller as an error.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgLoginWentWrong     = "Something went wrong."
)

type authService struct {
	userRepo portsrepo.UserRepository
}

// NewAuthService creates the credential check service.
func NewAuthService(userRepo portsrepo.UserRepository) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Authenticate validates the submitted credentials against the user store.
// An unknown email or a wrong password both come back as an AuthError of kind
// invalid_credentials; a malformed stored hash is an AuthError of kind
// provider_failure. A store lookup failure is returned unchanged.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAuthError(apperrors.AuthKindInvalidCredentials, err)
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}

	if err := utils.CheckPasswordHash(password, user.PasswordHash); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return nil, apperrors.NewAuthError(apperrors.AuthKindInvalidCredentials, err)
		}
		return nil, apperrors.NewAuthError(apperrors.AuthKindProviderFailure, err)
	}

	return user, nil
}

// LoginFailureMessage maps a classified authentication failure to its
// user-facing message. ok is false when err is not an authentication failure,
// in which case the error must be re-surfaced rather than converted into a
// login message.
func LoginFailureMessage(err error) (message string, ok bool) {
	var authErr *apperrors.AuthError
	if !errors.As(err, &authErr) {
		return "", false
	}
	switch authErr.Kind {
	case apperrors.AuthKindInvalidCredentials:
		return MsgInvalidCredentials, true
	default:
		return MsgLoginWentWrong, true
	}
}
