package ports

import (
	"context"
	"time"
)

// TokenDenylist tracks revoked token ids until their natural expiry.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// Revoke marks the token id as revoked until the given expiry time.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
}
