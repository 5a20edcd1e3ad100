package domain

// InvoiceStatus enumerates the lifecycle states of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// IsValid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice is the core invoice record. Amount is stored in minor units (cents)
// so that no floating point value ever reaches persistence. InvoiceID and Date
// are assigned at creation and never change afterwards.
type Invoice struct {
	InvoiceID   string        `json:"invoiceID"`
	CustomerID  string        `json:"customerID"`
	AmountCents int64         `json:"amountCents"`
	Status      InvoiceStatus `json:"status"`
	Date        string        `json:"date"` // YYYY-MM-DD
}

// InvoiceWithCustomer is the listing read model: an invoice joined with the
// customer fields shown in the invoices table.
type InvoiceWithCustomer struct {
	Invoice
	CustomerName     string `json:"customerName"`
	CustomerEmail    string `json:"customerEmail"`
	CustomerImageURL string `json:"customerImageURL"`
}
