package dto

import (
	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormActionState is the value threaded back to a still-mounted form after a
// failed submission. A successful create/update never observes this value
// because the caller transfers control to the listing instead.
type FormActionState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// CommandResult is the discriminated outcome of a mutation command.
// Succeeded with a non-empty Redirect means the caller must transfer control
// to that path; otherwise State carries what the form should re-render.
// Success is never signalled by a panic or other non-local control transfer.
type CommandResult struct {
	Succeeded bool
	Redirect  string
	State     FormActionState
}

// InvoiceResponse is the single-invoice shape used by the edit form, with the
// amount converted back to major units.
type InvoiceResponse struct {
	InvoiceID  string `json:"invoiceID"`
	CustomerID string `json:"customerID"`
	Amount     string `json:"amount"` // major units, e.g. "19.99"
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// ToInvoiceResponse converts a domain.Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:  inv.InvoiceID,
		CustomerID: inv.CustomerID,
		Amount:     decimal.NewFromInt(inv.AmountCents).Div(decimal.NewFromInt(100)).StringFixed(2),
		Status:     string(inv.Status),
		Date:       inv.Date,
	}
}

// InvoiceListItem is one row of the invoices table view.
type InvoiceListItem struct {
	InvoiceID        string `json:"invoiceID"`
	CustomerID       string `json:"customerID"`
	CustomerName     string `json:"customerName"`
	CustomerEmail    string `json:"customerEmail"`
	CustomerImageURL string `json:"customerImageURL"`
	Amount           string `json:"amount"`
	Status           string `json:"status"`
	Date             string `json:"date"`
}

// ListInvoicesResponse wraps a page of the invoices listing together with the
// canonical search state it was computed from.
type ListInvoicesResponse struct {
	Invoices   []InvoiceListItem `json:"invoices"`
	TotalPages int               `json:"totalPages"`
	Query      string            `json:"query,omitempty"`
	Page       int               `json:"page"`
}

// ToInvoiceListItem converts a joined listing row to its response DTO.
func ToInvoiceListItem(row *domain.InvoiceWithCustomer) InvoiceListItem {
	return InvoiceListItem{
		InvoiceID:        row.InvoiceID,
		CustomerID:       row.CustomerID,
		CustomerName:     row.CustomerName,
		CustomerEmail:    row.CustomerEmail,
		CustomerImageURL: row.CustomerImageURL,
		Amount:           decimal.NewFromInt(row.AmountCents).Div(decimal.NewFromInt(100)).StringFixed(2),
		Status:           string(row.Status),
		Date:             row.Date,
	}
}
