package services

import (
	"context"

	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
)

// AuthSvcFacade is the credential check against the backing identity store.
type AuthSvcFacade interface {
	// Authenticate validates the submitted credentials. Classified
	// authentication failures come back as *apperrors.AuthError; any other
	// error is passed through unchanged so infrastructure failures are never
	// masked as credential failures.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
