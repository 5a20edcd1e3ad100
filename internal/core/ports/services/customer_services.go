package services

import (
	"context"

	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
)

// CustomerSvcFacade exposes the read-only customer operations.
type CustomerSvcFacade interface {
	// ListCustomers returns every customer, ordered by name, for the
	// customer select control on the invoice forms.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}
