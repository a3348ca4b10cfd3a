package session

import (
	"context"
	"errors"
)

// ErrUnknownDriver is returned when a session storage driver is requested that does not exist
var ErrUnknownDriver = errors.New("unknown session storage driver")

// Storage defines the session storage API.
// Implementations key sessions by their (hashed) ID and have to be safe for concurrent use.
type Storage interface {
	// Get retrieves a session by its ID; nil is returned if it does not exist
	Get(ctx context.Context, id string) (*Session, error)

	// Set creates or replaces a session
	Set(ctx context.Context, ses *Session) error

	// Delete deletes a session by its ID
	Delete(ctx context.Context, id string) error

	// TerminateExpired terminates all sessions that are expired
	TerminateExpired(ctx context.Context) (int, error)

	// Close releases the resources held by the storage
	Close()
}
