package registry

import (
	"context"
	"time"
)

// Backend defines the storage contract required by the registry.
// Implementations must make Register atomic with respect to concurrent
// writers: no two live records may share an address, and generated ids
// must be unique among current records.
type Backend interface {
	// Register stores a fresh record for name at address and returns
	// it with a generated id. Fails with ErrAddressInUse when a live
	// record already claims the address.
	Register(ctx context.Context, name, address string) (ServiceRecord, error)

	// Unregister removes the record with the given id. Unknown ids
	// are a no-op, mirroring best-effort shutdown cleanup.
	Unregister(ctx context.Context, id string) error

	// Find returns the first record whose id or name equals key, or
	// ErrServiceNotFound.
	Find(ctx context.Context, key string) (ServiceRecord, error)

	// List returns a point-in-time snapshot of all current records.
	List(ctx context.Context) ([]ServiceRecord, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// ServiceRecord is one live service known to the registry.
type ServiceRecord struct {
	ID           string
	Name         string
	Address      string
	RegisteredAt time.Time
}
