package ports

import (
	"context"

	"github.com/QaissAA/web-assignment3/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create persists a new user and returns its assigned id. A unique index
	// on email makes duplicate registrations fail with domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
