package user

import "context"

// Service defines the interface for user business logic
type Service interface {
	// Register creates a new account with a hashed password
	Register(ctx context.Context, email, password string) (*User, error)

	// Authenticate verifies the password for the given email
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)
}
