package models

import "time"

// Invoice is the database row shape for the invoices table.
type Invoice struct {
	InvoiceID   string
	CustomerID  string
	AmountCents int64
	Status      string
	Date        time.Time
}

// InvoiceWithCustomer is the joined row shape for the invoices listing query.
type InvoiceWithCustomer struct {
	Invoice
	CustomerName     string
	CustomerEmail    string
	CustomerImageURL string
}
