// Package session binds opaque session tokens to user IDs.
//
// Two Store backends are provided: MemoryStore keeps sessions in the process
// and RedisStore shares them between instances. The token never travels to the
// client as-is; CookieCodec wraps it into a signed cookie value.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is the lifetime of a session
const DefaultTTL = 24 * time.Hour

// Store is the interface that wraps methods for session storage
type Store interface {
	// Method Create issues a new opaque token bound to "userID" that expires after the store TTL.
	//
	// If some error occurs while saving the session, the error will be returned together with empty string.
	Create(ctx context.Context, userID int) (string, error)
	// Method Resolve returns the user ID bound to "token".
	//
	// Unknown or expired tokens are reported with ok == false and nil error.
	Resolve(ctx context.Context, token string) (userID int, ok bool, err error)
	// Method Destroy removes the session bound to "token".
	//
	// Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
	// Method Close releases resources held by the store.
	Close() error
}

// newToken returns a random opaque session token
func newToken() string {
	return uuid.NewString()
}
