package redis

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/warefleet/warefleet/internal/registry"
)

var _ registry.Backend = (*Backend)(nil)

func newTestBackend(t *testing.T) (*Backend, *miniredis.Miniredis, func()) {
	t.Helper()

	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}

	host, portStr, err := net.SplitHostPort(s.Addr())
	if err != nil {
		s.Close()
		t.Fatalf("split host/port: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		s.Close()
		t.Fatalf("parse port: %v", err)
	}

	backend, err := New(&registry.RedisConfig{Address: host, Port: port})
	if err != nil {
		s.Close()
		t.Fatalf("new backend: %v", err)
	}

	cleanup := func() {
		_ = backend.Close(context.Background())
		s.Close()
	}

	return backend, s, cleanup
}

func TestBackendServiceLifecycle(t *testing.T) {
	backend, _, cleanup := newTestBackend(t)
	defer cleanup()

	ctx := context.Background()

	rec, err := backend.Register(ctx, "warehouse", "127.0.0.1:50001")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected a generated service id")
	}
	if rec.RegisteredAt.IsZero() {
		t.Fatal("expected RegisteredAt to be set")
	}

	records, err := backend.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ID != rec.ID || records[0].Name != "warehouse" || records[0].Address != "127.0.0.1:50001" {
		t.Fatalf("record mismatch: %#v", records[0])
	}

	if err := backend.Unregister(ctx, rec.ID); err != nil {
		t.Fatalf("Unregister: %v", err)
	}

	records, err = backend.List(ctx)
	if err != nil {
		t.Fatalf("List after unregister: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected 0 records after unregister, got %d", len(records))
	}
}

func TestBackendFindByIDAndName(t *testing.T) {
	backend, _, cleanup := newTestBackend(t)
	defer cleanup()

	ctx := context.Background()

	rec, err := backend.Register(ctx, "robot", "127.0.0.1:50100")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	byID, err := backend.Find(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Find by id: %v", err)
	}
	if byID.Address != rec.Address {
		t.Fatalf("expected address %q, got %q", rec.Address, byID.Address)
	}

	byName, err := backend.Find(ctx, "robot")
	if err != nil {
		t.Fatalf("Find by name: %v", err)
	}
	if byName.ID != rec.ID {
		t.Fatalf("expected id %q, got %q", rec.ID, byName.ID)
	}

	if _, err := backend.Find(ctx, "no-such-service"); !errors.Is(err, registry.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestBackendDuplicateAddressRejected(t *testing.T) {
	backend, _, cleanup := newTestBackend(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := backend.Register(ctx, "warehouse", "127.0.0.1:50001"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := backend.Register(ctx, "imposter", "127.0.0.1:50001"); !errors.Is(err, registry.ErrAddressInUse) {
		t.Fatalf("expected ErrAddressInUse, got %v", err)
	}
}

func TestBackendUnregisterIdempotent(t *testing.T) {
	backend, _, cleanup := newTestBackend(t)
	defer cleanup()

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

	// The address must be claimable again after removal.
	if _, err := backend.Register(ctx, "robot", "127.0.0.1:50100"); err != nil {
		t.Fatalf("re-register freed address: %v", err)
	}
}

func TestBackendStaleIndexCleaned(t *testing.T) {
	backend, server, cleanup := newTestBackend(t)
	defer cleanup()

	ctx := context.Background()

	rec, err := backend.Register(ctx, "warehouse", "127.0.0.1:50001")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Simulate a crashed writer: the record hash is gone but the id
	// lingers in the index set.
	server.Del(serviceKey(rec.ID))

	records, err := backend.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected stale record to be dropped, got %d", len(records))
	}
}
