package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
	portsrepo "github.com/acmedash/invoice_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/acmedash/invoice_dashboard_app/internal/core/ports/services"
	"github.com/acmedash/invoice_dashboard_app/internal/dto"
	"github.com/acmedash/invoice_dashboard_app/internal/invoiceform"
	"github.com/shopspring/decimal"
)

// InvoicesListingPath is the canonical listing view. Mutations invalidate its
// cache and create/update transfer control back to it.
const InvoicesListingPath = "/dashboard/invoices"

// InvoicesPerPage is the listing page size.
const InvoicesPerPage = 6

// User-facing messages of the mutation pipeline.
const (
	msgMissingFieldsCreate = "Missing Fields. Failed to Create Invoice."
	msgMissingFieldsUpdate = "Missing Fields. Failed to Update Invoice."
	msgCreateFailed        = "Database Error: Failed to create invoice"
	msgUpdateFailed        = "Database Error: Failed to update invoice"
	msgDeleteFailed        = "Database Error: Failed to delete invoice"
	msgDeleted             = "Invoice deleted successfully"
)

var centsFactor = decimal.NewFromInt(100)

type invoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepository
	listingCache portsrepo.ListingCache
	logger       *slog.Logger
}

// NewInvoiceService creates the invoice service backing both the listing
// reads and the three mutation commands.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, listingCache portsrepo.ListingCache, logger *slog.Logger) portssvc.InvoiceSvcFacade {
	if logger == nil {
		logger = slog.Default()
	}
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		listingCache: listingCache,
		logger:       logger,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// toCents converts a validated major-unit amount to minor units, rounding to
// the nearest cent. Decimal arithmetic keeps float drift out of the pipeline.
func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(centsFactor).Round(0).IntPart()
}

// CreateInvoice runs the full create pipeline: validate, normalize, persist,
// invalidate the listing cache, then hand the caller a redirect target. The
// redirect is part of the result, not a thrown control transfer, so it can
// never be swallowed by the error handling around persistence.
func (s *invoiceService) CreateInvoice(ctx context.Context, form map[string]string) dto.CommandResult {
	res := invoiceform.Validate(form)
	if !res.Valid() {
		return dto.CommandResult{State: dto.FormActionState{
			Errors:  res.FieldErrors,
			Message: msgMissingFieldsCreate,
		}}
	}

	inv := portsrepo.NewInvoice{
		CustomerID:  res.Data.CustomerID,
		AmountCents: toCents(res.Data.Amount),
		Status:      res.Data.Status,
		Date:        time.Now().Format("2006-01-02"),
	}
	invoiceID, err := s.invoiceRepo.InsertInvoice(ctx, inv)
	if err != nil {
		s.logger.Error("Failed to insert invoice", slog.String("error", err.Error()))
		return dto.CommandResult{State: dto.FormActionState{Message: msgCreateFailed}}
	}
	s.logger.Info("Invoice created", slog.String("invoice_id", invoiceID))

	s.invalidateListing(ctx)
	return dto.CommandResult{Succeeded: true, Redirect: InvoicesListingPath}
}

// UpdateInvoice overwrites the mutable fields of an existing invoice. The
// invoice id and date are never modified.
func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, form map[string]string) dto.CommandResult {
	res := invoiceform.Validate(form)
	if !res.Valid() {
		return dto.CommandResult{State: dto.FormActionState{
			Errors:  res.FieldErrors,
			Message: msgMissingFieldsUpdate,
		}}
	}

	err := s.invoiceRepo.UpdateInvoice(ctx, invoiceID, res.Data.CustomerID, toCents(res.Data.Amount), res.Data.Status)
	if err != nil {
		s.logger.Error("Failed to update invoice",
			slog.String("invoice_id", invoiceID),
			slog.String("error", err.Error()),
		)
		return dto.CommandResult{State: dto.FormActionState{Message: msgUpdateFailed}}
	}
	s.logger.Info("Invoice updated", slog.String("invoice_id", invoiceID))

	s.invalidateListing(ctx)
	return dto.CommandResult{Succeeded: true, Redirect: InvoicesListingPath}
}

// DeleteInvoice removes an invoice. Deletion happens from within the listing
// view, so a success reports in place instead of redirecting.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) dto.CommandResult {
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.logger.Error("Failed to delete invoice",
			slog.String("invoice_id", invoiceID),
			slog.String("error", err.Error()),
		)
		return dto.CommandResult{State: dto.FormActionState{Message: msgDeleteFailed}}
	}
	s.logger.Info("Invoice deleted", slog.String("invoice_id", invoiceID))

	s.invalidateListing(ctx)
	return dto.CommandResult{Succeeded: true, State: dto.FormActionState{Message: msgDeleted}}
}

// invalidateListing marks the invoices listing stale. It runs synchronously
// after persistence and before the command result is returned, so the next
// listing read never observes pre-mutation data. Invalidation is idempotent;
// a cache-layer failure is logged rather than failing the completed mutation.
func (s *invoiceService) invalidateListing(ctx context.Context) {
	if err := s.listingCache.Invalidate(ctx, InvoicesListingPath); err != nil {
		s.logger.Warn("Failed to invalidate invoices listing cache", slog.String("error", err.Error()))
	}
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice by ID in service: %w", err)
	}
	return inv, nil
}

// ListInvoices serves one page of the filtered listing, read-through the
// listing cache keyed by the canonical search state.
func (s *invoiceService) ListInvoices(ctx context.Context, query string, page int) (*dto.ListInvoicesResponse, error) {
	if page < 1 {
		page = 1
	}
	pageKey := fmt.Sprintf("query=%s&page=%d", query, page)

	var cached dto.ListInvoicesResponse
	hit, err := s.listingCache.Get(ctx, InvoicesListingPath, pageKey, &cached)
	if err != nil {
		s.logger.Warn("Listing cache read failed, falling back to store", slog.String("error", err.Error()))
	} else if hit {
		return &cached, nil
	}

	rows, err := s.invoiceRepo.FindFilteredInvoices(ctx, query, InvoicesPerPage, (page-1)*InvoicesPerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices in service: %w", err)
	}
	total, err := s.invoiceRepo.CountFilteredInvoices(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices in service: %w", err)
	}

	items := make([]dto.InvoiceListItem, len(rows))
	for i := range rows {
		items[i] = dto.ToInvoiceListItem(&rows[i])
	}
	resp := &dto.ListInvoicesResponse{
		Invoices:   items,
		TotalPages: int((total + InvoicesPerPage - 1) / InvoicesPerPage),
		Query:      query,
		Page:       page,
	}

	if err := s.listingCache.Set(ctx, InvoicesListingPath, pageKey, resp); err != nil {
		s.logger.Warn("Failed to cache invoices listing page", slog.String("error", err.Error()))
	}
	return resp, nil
}
