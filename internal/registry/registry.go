// Package registry implements the warefleet service registry.
//
// The registry is the directory of every live process in a warefleet
// deployment: the warehouse core and each robot controller register a
// {id, name, address} record at startup, discover each other through
// lookups, and drop their record at shutdown. The registry also hands
// out advisory free ports so dynamically started robots can pick a
// listen address without coordinating among themselves.
//
// The registry is backend-agnostic. It defines a stable, backend
// independent contract while allowing multiple implementations (an
// in-memory table, Redis) to be plugged in via configuration. The
// in-memory backend is authoritative for semantics; nothing persists
// across a restart and every dependent service must re-register.
//
// Address uniqueness and id generation are enforced at the backend so
// a registration is atomic with respect to concurrent writers. The
// registry exposes its functionality over gRPC and registers itself
// under a well-known name so other processes can discover "the
// registry" the same way they discover each other.
package registry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
)

// Transport is the serving surface the registry runs. The gRPC adapter
// in internal/transport/grpc satisfies it.
type Transport interface {
	Serve(lis net.Listener) error
	GracefulStop()
}

type Registry struct {
	cfg     *Config
	log     *zap.Logger
	backend Backend

	RunFunc func(ctx context.Context, t Transport, shutdownTimeout time.Duration) error
}

func New(cfg *Config, backend Backend, log *zap.Logger) (*Registry, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	reg := &Registry{
		cfg:     cfg,
		log:     log,
		backend: backend,
	}

	reg.RunFunc = reg.Run

	return reg, nil
}

// Register validates the request and stores a fresh record. The id is
// generated by the backend and unique among current records; a second
// registration for a live address fails with ErrAddressInUse.
func (r *Registry) Register(ctx context.Context, name, address string) (ServiceRecord, error) {
	if name == "" {
		return ServiceRecord{}, ErrEmptyServiceName
	}
	if address == "" {
		return ServiceRecord{}, ErrEmptyServiceAddress
	}

	rec, err := r.backend.Register(ctx, name, address)
	if err != nil {
		return ServiceRecord{}, err
	}

	r.log.Info("service registered",
		zap.String("service_id", rec.ID),
		zap.String("service_name", rec.Name),
		zap.String("service_address", rec.Address))

	return rec, nil
}

// Unregister removes the record for id. Removing an unknown id is a
// no-op; shutdown cleanup is best-effort and must not fail loudly.
func (r *Registry) Unregister(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	if err := r.backend.Unregister(ctx, id); err != nil {
		return err
	}

	r.log.Info("service unregistered", zap.String("service_id", id))
	return nil
}

// Find returns the first record whose name or id equals key. When
// several services share a name the match is arbitrary.
func (r *Registry) Find(ctx context.Context, key string) (ServiceRecord, error) {
	if key == "" {
		return ServiceRecord{}, fmt.Errorf("%w: empty name or id", ErrServiceNotFound)
	}
	return r.backend.Find(ctx, key)
}

// List snapshots the current records. Callers stream the snapshot;
// concurrent mutation during enumeration is not reflected.
func (r *Registry) List(ctx context.Context) ([]ServiceRecord, error) {
	return r.backend.List(ctx)
}

func (r *Registry) Run(ctx context.Context, t Transport, shutdownTimeout time.Duration) error {
	addr := r.cfg.GRPC.Addr()
	lis, err := r.cfg.GRPC.Listen()
	if err != nil {
		return err
	}

	// Bootstrap symmetry: the registry appears in its own table so
	// clients can look it up like any other service.
	self, err := r.Register(ctx, WellKnownName, addr)
	if err != nil {
		_ = lis.Close()
		return fmt.Errorf("self-register: %w", err)
	}

	r.log.Info("registry listening", zap.String("address", addr))

	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- t.Serve(lis)
	}()

	select {
	case err := <-runErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		if ctx.Err() == nil {
			return nil
		}
	case <-ctx.Done():
	}

	shutdownCtx := context.Background()
	var cancel context.CancelFunc
	if shutdownTimeout > 0 {
		shutdownCtx, cancel = context.WithTimeout(context.Background(), shutdownTimeout)
	} else {
		shutdownCtx, cancel = context.WithCancel(context.Background())
	}
	defer cancel()

	shutdownErrCh := make(chan error, 1)
	go func() {
		t.GracefulStop()
		_ = r.Unregister(shutdownCtx, self.ID)
		shutdownErrCh <- r.backend.Close(shutdownCtx)
	}()

	select {
	case err := <-shutdownErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	case <-shutdownCtx.Done():
		return shutdownCtx.Err()
	}
}
