// Package warehouse implements the warefleet warehouse core: the
// location inventory, the robot fleet roster, and the orchestration
// that moves items between shelves and robot hands. Both halves of a
// transfer go through here so the inventory and the fleet cannot be
// mutated out of step by the transport layer.
package warehouse

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/warefleet/warefleet/internal/discovery"
)

// Transport is the serving surface the warehouse drives. The gRPC
// server in internal/transport/grpc satisfies it.
type Transport interface {
	Serve(lis net.Listener) error
	GracefulStop()
}

// Warehouse ties the inventory and the fleet together.
type Warehouse struct {
	cfg   *Config
	log   *zap.Logger
	inv   *Inventory
	fleet *Fleet
}

// New wires up a warehouse from its parts.
func New(cfg *Config, inv *Inventory, fleet *Fleet, log *zap.Logger) (*Warehouse, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Warehouse{cfg: cfg, log: log, inv: inv, fleet: fleet}, nil
}

// Inventory surface. These delegate to the location table; the
// transfer operations further down are the ones that touch robots.

func (w *Warehouse) AddItem(locationKey, itemName string) error {
	return w.inv.AddItem(locationKey, itemName)
}

func (w *Warehouse) RemoveItem(locationKey, itemName string) error {
	return w.inv.RemoveItem(locationKey, itemName)
}

// TakeItem is the strict removal used by batch operations: a missing
// item is an error, not a no-op.
func (w *Warehouse) TakeItem(locationKey, itemName string) error {
	return w.inv.TakeItem(locationKey, itemName)
}

func (w *Warehouse) LocationItems(locationKey string) ([]string, error) {
	return w.inv.Items(locationKey)
}

func (w *Warehouse) Locations() []LocationSummary {
	return w.inv.Summaries()
}

func (w *Warehouse) Location(locationKey string) (LocationSummary, error) {
	return w.inv.Lookup(locationKey)
}

// Fleet surface.

func (w *Warehouse) AddRobot(ctx context.Context, name, address string) error {
	if err := w.fleet.Add(ctx, name, address); err != nil {
		return err
	}
	w.log.Info("robot joined fleet",
		zap.String("robot", name),
		zap.String("address", address))
	return nil
}

func (w *Warehouse) RemoveRobot(name string) error {
	if err := w.fleet.Remove(name); err != nil {
		return err
	}
	w.log.Info("robot left fleet", zap.String("robot", name))
	return nil
}

func (w *Warehouse) SetRobotStatus(name, status, location, heldItem string) error {
	return w.fleet.SetStatus(name, status, location, heldItem)
}

func (w *Warehouse) Robot(name string) (RobotRecord, error) {
	return w.fleet.Get(name)
}

func (w *Warehouse) Robots() []RobotRecord {
	return w.fleet.List()
}

// MoveRobot resolves the destination before commanding the robot so a
// bad location name fails here instead of at the robot.
func (w *Warehouse) MoveRobot(ctx context.Context, robotName, locationKey string) (string, error) {
	loc, err := w.inv.Lookup(locationKey)
	if err != nil {
		return "", err
	}
	return w.fleet.Move(ctx, robotName, loc.Name)
}

// LoadItem hands an item from the robot's current location to the
// robot. The robot takes the item first; only a confirmed pickup
// removes it from the shelf. If the shelf changed underneath us in the
// meantime the inventory and the robot now disagree, which is
// surfaced as ErrInventoryConflict.
func (w *Warehouse) LoadItem(ctx context.Context, robotName, itemName string) error {
	record, err := w.fleet.Get(robotName)
	if err != nil {
		return err
	}
	loc, err := w.inv.Lookup(record.Location)
	if err != nil {
		return err
	}
	present, err := w.inv.HasItem(loc.Name, itemName)
	if err != nil {
		return err
	}
	if !present {
		return fmt.Errorf("%w: %q at %s", ErrItemNotFound, itemName, loc.Name)
	}

	if err := w.fleet.Load(ctx, robotName, itemName); err != nil {
		return err
	}
	if err := w.inv.TakeItem(loc.Name, itemName); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			w.log.Error("robot holds an item the shelf no longer has",
				zap.String("robot", robotName),
				zap.String("location", loc.Name),
				zap.String("item", itemName))
			return fmt.Errorf("%w: %q taken from %s concurrently", ErrInventoryConflict, itemName, loc.Name)
		}
		return err
	}
	return nil
}

// UnloadItem takes the robot's held item and shelves it where the
// robot is standing. Capacity is checked before the robot lets go so a
// full shelf leaves the item in the robot's hands.
func (w *Warehouse) UnloadItem(ctx context.Context, robotName string) (string, error) {
	record, err := w.fleet.Get(robotName)
	if err != nil {
		return "", err
	}
	if record.HeldItem == "" {
		return "", fmt.Errorf("%w: %s", ErrRobotNotHolding, robotName)
	}
	loc, err := w.inv.Lookup(record.Location)
	if err != nil {
		return "", err
	}
	spare, err := w.inv.SpareCapacity(loc.Name)
	if err != nil {
		return "", err
	}
	if spare <= 0 {
		return "", fmt.Errorf("%w: %s", ErrLocationFull, loc.Name)
	}

	item, err := w.fleet.Unload(ctx, robotName)
	if err != nil {
		return "", err
	}
	if err := w.inv.AddItem(loc.Name, item); err != nil {
		// The robot already released the item. Record the
		// discrepancy rather than inventing a rollback move.
		w.log.Error("unloaded item could not be shelved",
			zap.String("robot", robotName),
			zap.String("location", loc.Name),
			zap.String("item", item),
			zap.Error(err))
		return "", fmt.Errorf("%w: %q unloaded but not shelved at %s", ErrInventoryConflict, item, loc.Name)
	}
	return item, nil
}

// Authenticate accepts any non-empty key. Real credential checks live
// behind this seam.
func (w *Warehouse) Authenticate(key string) bool {
	return key != ""
}

// Run serves the warehouse until ctx is canceled, announcing it to the
// registry for the duration.
func (w *Warehouse) Run(ctx context.Context, t Transport, shutdownTimeout time.Duration) error {
	addr := w.cfg.GRPC.Addr()
	lis, err := w.cfg.GRPC.Listen()
	if err != nil {
		return err
	}

	reg, err := discovery.Dial(w.cfg.Registry, w.log)
	if err != nil {
		_ = lis.Close()
		return err
	}

	selfID, err := reg.Register(ctx, WellKnownName, addr)
	if err != nil {
		_ = lis.Close()
		_ = reg.Close()
		return fmt.Errorf("registering with registry: %w", err)
	}

	w.log.Info("warehouse listening",
		zap.String("address", addr),
		zap.Int("locations", len(w.inv.Summaries())))

	// Robots that came up before us are only discoverable through the
	// registry; they re-announce via AddRobot once they find us.
	if records, err := reg.List(ctx); err == nil {
		for _, rec := range records {
			if rec.Name == robotServiceName {
				w.log.Info("robot already registered",
					zap.String("service_id", rec.ID),
					zap.String("address", rec.Address))
			}
		}
	}

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
		reg.UnregisterQuiet(shutdownCtx, selfID)
		_ = reg.Close()
		shutdownErrCh <- w.fleet.Close()
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
