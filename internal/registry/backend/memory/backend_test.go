package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/warefleet/warefleet/internal/registry"
)

var _ registry.Backend = (*Backend)(nil)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()

	backend, err := New(&registry.MemoryConfig{})
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}
	return backend
}

func TestBackendServiceLifecycle(t *testing.T) {
	t.Parallel()

	backend := newTestBackend(t)
	ctx := context.Background()

	rec, err := backend.Register(ctx, "warehouse", "127.0.0.1:50001")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected a generated service id")
	}

	byName, err := backend.Find(ctx, "warehouse")
	if err != nil {
		t.Fatalf("Find by name: %v", err)
	}
	if byName.ID != rec.ID {
		t.Fatalf("expected id %q, got %q", rec.ID, byName.ID)
	}

	byID, err := backend.Find(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Find by id: %v", err)
	}
	if byID.Address != "127.0.0.1:50001" {
		t.Fatalf("unexpected address %q", byID.Address)
	}

	if err := backend.Unregister(ctx, rec.ID); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if _, err := backend.Find(ctx, rec.ID); !errors.Is(err, registry.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestBackendDuplicateAddressRejected(t *testing.T) {
	t.Parallel()

	backend := newTestBackend(t)
	ctx := context.Background()

	if _, err := backend.Register(ctx, "warehouse", "127.0.0.1:50001"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := backend.Register(ctx, "imposter", "127.0.0.1:50001"); !errors.Is(err, registry.ErrAddressInUse) {
		t.Fatalf("expected ErrAddressInUse, got %v", err)
	}
}

func TestBackendUnregisterIdempotent(t *testing.T) {
	t.Parallel()

	backend := newTestBackend(t)
	ctx := context.Background()

	if err := backend.Unregister(ctx, "never-registered"); err != nil {
		t.Fatalf("Unregister of unknown id: %v", err)
	}

	rec, err := backend.Register(ctx, "robot", "127.0.0.1:50100")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := backend.Unregister(ctx, rec.ID); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if err := backend.Unregister(ctx, rec.ID); err != nil {
		t.Fatalf("second Unregister: %v", err)
	}

	if _, err := backend.Register(ctx, "robot", "127.0.0.1:50100"); err != nil {
		t.Fatalf("re-register freed address: %v", err)
	}
}

func TestBackendConcurrentRegistrations(t *testing.T) {
	t.Parallel()

	backend := newTestBackend(t)
	ctx := context.Background()

	const robots = 20
	var wg sync.WaitGroup
	for i := 0; i < robots; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			addr := fmt.Sprintf("127.0.0.1:%d", 50100+i)
			if _, err := backend.Register(ctx, "robot", addr); err != nil {
				t.Errorf("Register %s: %v", addr, err)
			}
		}(i)
	}
	wg.Wait()

	records, err := backend.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != robots {
		t.Fatalf("expected %d records, got %d", robots, len(records))
	}
}

func TestBackendContextCanceled(t *testing.T) {
	t.Parallel()

	backend := newTestBackend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := backend.Register(ctx, "warehouse", "127.0.0.1:50001"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := backend.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
