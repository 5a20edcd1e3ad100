package services

import (
	"log/slog"

	portsrepo "github.com/acmedash/invoice_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/acmedash/invoice_dashboard_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, listingCache portsrepo.ListingCache, logger *slog.Logger) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Invoice:  NewInvoiceService(repos.InvoiceRepo, listingCache, logger),
		Customer: NewCustomerService(repos.CustomerRepo),
		Auth:     NewAuthService(repos.UserRepo),
	}
}
