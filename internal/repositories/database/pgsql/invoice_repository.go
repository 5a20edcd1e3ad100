package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/acmedash/invoice_dashboard_app/internal/apperrors"
	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
	portsrepo "github.com/acmedash/invoice_dashboard_app/internal/core/ports/repositories"
	"github.com/acmedash/invoice_dashboard_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	db *pgxpool.Pool
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{db: db}
}

var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

const dateLayout = "2006-01-02"

// Helper to convert models.Invoice to domain.Invoice
func toDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.InvoiceID,
		CustomerID:  m.CustomerID,
		AmountCents: m.AmountCents,
		Status:      domain.InvoiceStatus(m.Status),
		Date:        m.Date.Format(dateLayout),
	}
}

func (r *PgxInvoiceRepository) InsertInvoice(ctx context.Context, inv portsrepo.NewInvoice) (string, error) {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING invoice_id;
	`
	var invoiceID string
	err := r.db.QueryRow(ctx, query,
		inv.CustomerID,
		inv.AmountCents,
		string(inv.Status),
		inv.Date,
	).Scan(&invoiceID)
	if err != nil {
		return "", fmt.Errorf("failed to insert invoice: %w", err)
	}
	return invoiceID, nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoiceID string, customerID string, amountCents int64, status domain.InvoiceStatus) error {
	// All mutable fields are overwritten unconditionally from validated
	// input; invoice_id and date stay untouched.
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE invoice_id = $4;
	`
	tag, err := r.db.Exec(ctx, query, customerID, amountCents, string(status), invoiceID)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	query := `DELETE FROM invoices WHERE invoice_id = $1;`
	tag, err := r.db.Exec(ctx, query, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, customer_id, amount, status, date
		FROM invoices
		WHERE invoice_id = $1;
	`
	var m models.Invoice
	err := r.db.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.CustomerID,
		&m.AmountCents,
		&m.Status,
		&m.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	inv := toDomainInvoice(m)
	return &inv, nil
}

func (r *PgxInvoiceRepository) FindFilteredInvoices(ctx context.Context, query string, limit, offset int) ([]domain.InvoiceWithCustomer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	// The free-text filter matches the same columns the listing renders,
	// including the textual forms of amount and date.
	sqlQuery := `
		SELECT
			invoices.invoice_id, invoices.customer_id, invoices.amount, invoices.status, invoices.date,
			customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.customer_id
		WHERE
			customers.name ILIKE $1 OR
			customers.email ILIKE $1 OR
			invoices.amount::text ILIKE $1 OR
			invoices.date::text ILIKE $1 OR
			invoices.status ILIKE $1
		ORDER BY invoices.date DESC, invoices.invoice_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, sqlQuery, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	result := []domain.InvoiceWithCustomer{}
	for rows.Next() {
		var m models.InvoiceWithCustomer
		err := rows.Scan(
			&m.InvoiceID,
			&m.CustomerID,
			&m.AmountCents,
			&m.Status,
			&m.Date,
			&m.CustomerName,
			&m.CustomerEmail,
			&m.CustomerImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		result = append(result, domain.InvoiceWithCustomer{
			Invoice:          toDomainInvoice(m.Invoice),
			CustomerName:     m.CustomerName,
			CustomerEmail:    m.CustomerEmail,
			CustomerImageURL: m.CustomerImageURL,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}

	return result, nil
}

func (r *PgxInvoiceRepository) CountFilteredInvoices(ctx context.Context, query string) (int64, error) {
	sqlQuery := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.customer_id
		WHERE
			customers.name ILIKE $1 OR
			customers.email ILIKE $1 OR
			invoices.amount::text ILIKE $1 OR
			invoices.date::text ILIKE $1 OR
			invoices.status ILIKE $1;
	`
	var count int64
	if err := r.db.QueryRow(ctx, sqlQuery, likePattern(query)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

// likePattern wraps the free-text query for ILIKE matching. The query is a
// bound parameter, never interpolated into the statement.
func likePattern(query string) string {
	return "%" + query + "%"
}
