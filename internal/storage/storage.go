package storage

import (
	"context"
	"errors"
)

// ErrNotFound distinguishes a missing object from other I/O failures.
var ErrNotFound = errors.New("storage: object not found")

type Store interface {
	// Save writes the object durably: when Save returns nil the bytes must be
	// retrievable by Load immediately, even across a crash.
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
}
