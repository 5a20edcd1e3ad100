package repositories

import (
	"context"

	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
)

// NewInvoice is the insert shape for an invoice: the store assigns the id.
type NewInvoice struct {
	CustomerID  string
	AmountCents int64
	Status      domain.InvoiceStatus
	Date        string // YYYY-MM-DD, assigned by the create command
}

// InvoiceRepository defines the persistence operations for invoices. Every
// operation is a single parameterized statement; no operation performs a
// logically dependent second write.
type InvoiceRepository interface {
	// InsertInvoice persists a new invoice and returns the store-generated id.
	InsertInvoice(ctx context.Context, inv NewInvoice) (string, error)
	// UpdateInvoice overwrites customer_id, amount and status of an existing
	// invoice unconditionally. The id and date columns are never touched.
	// Returns apperrors.ErrNotFound when no row matches invoiceID.
	UpdateInvoice(ctx context.Context, invoiceID string, customerID string, amountCents int64, status domain.InvoiceStatus) error
	// DeleteInvoice removes the invoice by id.
	// Returns apperrors.ErrNotFound when no row matches invoiceID.
	DeleteInvoice(ctx context.Context, invoiceID string) error
	// FindInvoiceByID fetches a single invoice for the edit form.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	// FindFilteredInvoices returns a page of the invoices listing joined with
	// customer fields, filtered by a free-text query.
	FindFilteredInvoices(ctx context.Context, query string, limit, offset int) ([]domain.InvoiceWithCustomer, error)
	// CountFilteredInvoices counts all rows matching the free-text query.
	CountFilteredInvoices(ctx context.Context, query string) (int64, error)
}

// CustomerRepository defines read operations for customers. Customers are
// never mutated by this application.
type CustomerRepository interface {
	FindCustomers(ctx context.Context) ([]domain.Customer, error)
}

// UserRepository defines the identity-store lookup for the credential check.
type UserRepository interface {
	// FindUserByEmail returns apperrors.ErrNotFound when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ListingCache marks cached listing views stale and serves read-through reads
// of listing pages. Invalidate is idempotent: invalidating an already-stale
// listing is a no-op.
type ListingCache interface {
	// Get loads a cached page into dest. The second return is false on a miss.
	Get(ctx context.Context, listingPath, pageKey string, dest any) (bool, error)
	// Set stores a computed page under the listing.
	Set(ctx context.Context, listingPath, pageKey string, value any) error
	// Invalidate drops every cached page of the listing so the next read is
	// forced to hit the store.
	Invalidate(ctx context.Context, listingPath string) error
}

// RepositoryProvider bundles the concrete repositories for service wiring.
type RepositoryProvider struct {
	InvoiceRepo  InvoiceRepository
	CustomerRepo CustomerRepository
	UserRepo     UserRepository
}
