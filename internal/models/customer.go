package models

// Customer is the database row shape for the customers table.
type Customer struct {
	CustomerID string
	Name       string
	Email      string
	ImageURL   string
}
