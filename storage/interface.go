package storage

import (
	"context"
	"errors"

	"github.com/inkpaste/inkpaste/models"
)

// Sentinel errors shared by all backends. Handlers dispatch on these with
// errors.Is; anything else is a backend failure.
var (
	// ErrNotFound is returned when no paste exists for the given ID.
	ErrNotFound = errors.New("paste not found")

	// ErrDuplicateID is returned by Put when the ID is already taken.
	// The store is the authority on duplicate detection; the short-ID
	// generator does not guarantee uniqueness on its own.
	ErrDuplicateID = errors.New("paste id already exists")
)

// PasteStore defines the interface for paste storage backends.
type PasteStore interface {
	// Put inserts a new paste. Returns ErrDuplicateID if the ID is
	// already taken by a live record.
	Put(ctx context.Context, paste *models.Paste) error

	// Get retrieves a paste by its ID with no side effects.
	// Returns ErrNotFound if no record exists.
	Get(ctx context.Context, id string) (*models.Paste, error)

	// Delete removes a paste. Deleting an absent ID is not an error;
	// it just means the record is already gone.
	Delete(ctx context.Context, id string) error

	// Take atomically removes the paste and returns it. Under concurrent
	// access at most one caller receives the record; the rest get
	// ErrNotFound. This is the burn-after-read primitive.
	Take(ctx context.Context, id string) (*models.Paste, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close closes the storage connection.
	Close() error
}
