package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/warefleet/warefleet/internal/grpcutil"
	"github.com/warefleet/warefleet/internal/registry"
	"github.com/warefleet/warefleet/internal/registry/backend/memory"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	backend, err := memory.New(&registry.MemoryConfig{})
	if err != nil {
		t.Fatalf("memory backend: %v", err)
	}

	cfg := &registry.Config{
		Backend: registry.BackendConfig{
			Type:   registry.MemoryRegistryBackend,
			Memory: &registry.MemoryConfig{},
		},
		GRPC: grpcutil.ListenConfig{
			Address: "127.0.0.1",
			Port:    registry.DefaultListenPort,
		},
		Ports: registry.PortConfig{Base: registry.DefaultPortBase},
	}

	reg, err := registry.New(cfg, backend, nil)
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return reg
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	ctx := context.Background()

	if _, err := reg.Register(ctx, "", "127.0.0.1:50001"); !errors.Is(err, registry.ErrEmptyServiceName) {
		t.Fatalf("expected ErrEmptyServiceName, got %v", err)
	}
	if _, err := reg.Register(ctx, "warehouse", ""); !errors.Is(err, registry.ErrEmptyServiceAddress) {
		t.Fatalf("expected ErrEmptyServiceAddress, got %v", err)
	}
}

func TestRegisterFindUnregister(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	ctx := context.Background()

	rec, err := reg.Register(ctx, "warehouse", "127.0.0.1:50001")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	found, err := reg.Find(ctx, "warehouse")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found.ID != rec.ID {
		t.Fatalf("expected id %q, got %q", rec.ID, found.ID)
	}

	if err := reg.Unregister(ctx, rec.ID); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if _, err := reg.Find(ctx, "warehouse"); !errors.Is(err, registry.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestUnregisterEmptyIDIsNoop(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	if err := reg.Unregister(context.Background(), ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestFindEmptyKey(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	if _, err := reg.Find(context.Background(), ""); !errors.Is(err, registry.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestFreePortPrefersRequested(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	ctx := context.Background()

	port, err := reg.FreePort(ctx, 50123)
	if err != nil {
		t.Fatalf("FreePort: %v", err)
	}
	if port != 50123 {
		t.Fatalf("expected preferred port 50123, got %d", port)
	}
}

func TestFreePortScansPastTakenPorts(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	ctx := context.Background()

	if _, err := reg.Register(ctx, "robot", "127.0.0.1:50100"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := reg.Register(ctx, "robot", "127.0.0.1:50101"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	port, err := reg.FreePort(ctx, 50100)
	if err != nil {
		t.Fatalf("FreePort: %v", err)
	}
	if port != 50102 {
		t.Fatalf("expected first unused port 50102, got %d", port)
	}
}

func TestFreePortIgnoresUnparseableAddresses(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	ctx := context.Background()

	if _, err := reg.Register(ctx, "oddball", "not-a-host-port"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	port, err := reg.FreePort(ctx, 0)
	if err != nil {
		t.Fatalf("FreePort: %v", err)
	}
	if port != registry.DefaultPortBase {
		t.Fatalf("expected base port %d, got %d", registry.DefaultPortBase, port)
	}
}
