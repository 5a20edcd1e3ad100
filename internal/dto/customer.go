package dto

import "github.com/acmedash/invoice_dashboard_app/internal/core/domain"

// CustomerResponse is the shape used to fill the customer select control.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"imageURL"`
}

// ListCustomersResponse wraps the list of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToListCustomersResponse converts a slice of domain.Customer to its response DTO.
func ToListCustomersResponse(customers []domain.Customer) ListCustomersResponse {
	out := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = CustomerResponse{
			CustomerID: c.CustomerID,
			Name:       c.Name,
			Email:      c.Email,
			ImageURL:   c.ImageURL,
		}
	}
	return ListCustomersResponse{Customers: out}
}
