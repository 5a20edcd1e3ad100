package services

import (
	"context"

	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
	"github.com/acmedash/invoice_dashboard_app/internal/dto"
)

// InvoiceReaderSvc defines read operations over invoices.
type InvoiceReaderSvc interface {
	// ListInvoices returns one page of the filtered invoices listing,
	// read-through the listing cache.
	ListInvoices(ctx context.Context, query string, page int) (*dto.ListInvoicesResponse, error)

	// GetInvoiceByID fetches a single invoice for the edit form.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

// InvoiceMutatorSvc defines the three mutation commands. Each command runs the
// full pipeline: schema validation, normalization, one persistence operation,
// then listing cache invalidation. Persistence failures are converted into the
// FormActionState shape at this boundary, never propagated as raw faults.
type InvoiceMutatorSvc interface {
	CreateInvoice(ctx context.Context, form map[string]string) dto.CommandResult
	UpdateInvoice(ctx context.Context, invoiceID string, form map[string]string) dto.CommandResult
	DeleteInvoice(ctx context.Context, invoiceID string) dto.CommandResult
}

// InvoiceSvcFacade combines all invoice-related service interfaces.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceMutatorSvc
}
