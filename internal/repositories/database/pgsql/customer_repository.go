package pgsql

import (
	"context"
	"fmt"

	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
	portsrepo "github.com/acmedash/invoice_dashboard_app/internal/core/ports/repositories"
	"github.com/acmedash/invoice_dashboard_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	db *pgxpool.Pool
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{db: db}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func toDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Email:      m.Email,
		ImageURL:   m.ImageURL,
	}
}

func (r *PgxCustomerRepository) FindCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, image_url
		FROM customers
		ORDER BY name ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var m models.Customer
		if err := rows.Scan(&m.CustomerID, &m.Name, &m.Email, &m.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, toDomainCustomer(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}

	return customers, nil
}
