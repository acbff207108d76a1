// Package memory provides the in-memory registry backend. It is the
// default backend and the authoritative implementation of the registry
// semantics: one table guarded by one mutex, nothing persisted.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/warefleet/warefleet/internal/registry"
)

type Backend struct {
	cfg *registry.MemoryConfig

	mu        sync.RWMutex
	records   map[string]registry.ServiceRecord
	addresses map[string]string // address -> id
}

func New(cfg *registry.MemoryConfig) (*Backend, error) {
	return &Backend{
		cfg:       cfg,
		records:   make(map[string]registry.ServiceRecord),
		addresses: make(map[string]string),
	}, nil
}

func (b *Backend) Register(ctx context.Context, name, address string) (registry.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return registry.ServiceRecord{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, taken := b.addresses[address]; taken {
		return registry.ServiceRecord{}, fmt.Errorf("%w: %s", registry.ErrAddressInUse, address)
	}

	rec := registry.ServiceRecord{
		ID:           uuid.NewString(),
		Name:         name,
		Address:      address,
		RegisteredAt: time.Now().UTC(),
	}

	b.records[rec.ID] = rec
	b.addresses[address] = rec.ID
	return rec, nil
}

func (b *Backend) Unregister(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.records[id]
	if !ok {
		return nil
	}
	delete(b.records, id)
	delete(b.addresses, rec.Address)
	return nil
}

func (b *Backend) Find(ctx context.Context, key string) (registry.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return registry.ServiceRecord{}, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if rec, ok := b.records[key]; ok {
		return rec, nil
	}
	for _, rec := range b.records {
		if rec.Name == key {
			return rec, nil
		}
	}
	return registry.ServiceRecord{}, fmt.Errorf("%w: %s", registry.ErrServiceNotFound, key)
}

func (b *Backend) List(ctx context.Context) ([]registry.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	records := make([]registry.ServiceRecord, 0, len(b.records))
	for _, rec := range b.records {
		records = append(records, rec)
	}
	return records, nil
}

func (b *Backend) Close(ctx context.Context) error {
	return nil
}
