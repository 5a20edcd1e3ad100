package pgsql

import (
	portsrepo "github.com/acmedash/invoice_dashboard_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories for service setup.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
