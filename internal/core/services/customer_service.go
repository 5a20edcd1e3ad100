package services

import (
	"context"
	"fmt"

	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
	portsrepo "github.com/acmedash/invoice_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/acmedash/invoice_dashboard_app/internal/core/ports/services"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates the read-only customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.FindCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers in service: %w", err)
	}
	return customers, nil
}
