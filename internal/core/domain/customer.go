package domain

// Customer is read-only from this application's perspective; customers are
// sourced externally and only referenced by invoices.
type Customer struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"imageURL"`
}
