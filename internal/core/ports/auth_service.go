package ports

import "context"

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService implements registration and login.
type AuthService interface {
	// Register hashes the password and persists the user, returning the new
	// user id.
	Register(ctx context.Context, input RegisterInput) (string, error)
	// Login verifies the credentials and returns a signed access token
	// embedding the user id and role.
	Login(ctx context.Context, email, password string) (string, error)
}
