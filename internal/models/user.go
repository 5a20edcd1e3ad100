package models

import "time"

// User is the database row shape for the users table.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
