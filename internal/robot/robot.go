// Package robot implements a single warehouse robot: a small state
// machine over location and held item, plus the controller that wires
// it into the registry and the warehouse at startup.
package robot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status is a point-in-time snapshot of the robot's state.
type Status struct {
	Location  string
	HeldItem  string
	InTransit bool
}

// Reporter receives status snapshots whenever the robot's state
// changes. The controller installs one that forwards to the warehouse;
// reports are best-effort and must not block command handling long.
type Reporter interface {
	Report(ctx context.Context, st Status)
}

// Robot is the moving half of the fleet. Exactly one command mutates
// it at a time; a move in progress rejects everything until the
// transit timer fires.
type Robot struct {
	mu        sync.Mutex
	location  string
	heldItem  string
	inTransit bool
	reporter  Reporter

	transitDelay time.Duration
	log          *zap.Logger
}

// New builds an idle robot with empty hands and no position. Its first
// move establishes where it is.
func New(transitDelay time.Duration, log *zap.Logger) *Robot {
	return &Robot{transitDelay: transitDelay, log: log}
}

// SetReporter installs the status sink. Pass nil to silence reports.
func (r *Robot) SetReporter(rep Reporter) {
	r.mu.Lock()
	r.reporter = rep
	r.mu.Unlock()
}

// Status returns the current snapshot.
func (r *Robot) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Status{Location: r.location, HeldItem: r.heldItem, InTransit: r.inTransit}
}

// GoToLocation starts a move and blocks until the robot arrives or ctx
// gives up waiting. The move itself always completes: once the transit
// timer is armed the robot will arrive even if the caller stopped
// listening, so its position never ends up between two locations.
func (r *Robot) GoToLocation(ctx context.Context, target string) (string, error) {
	r.mu.Lock()
	if r.inTransit {
		r.mu.Unlock()
		return "", fmt.Errorf("%w: refusing move to %s", ErrInTransit, target)
	}
	if target == r.location {
		r.mu.Unlock()
		return target, nil
	}
	r.inTransit = true
	rep := r.reporter
	r.mu.Unlock()

	r.log.Info("moving", zap.String("target", target))
	if rep != nil {
		rep.Report(ctx, Status{Location: r.location, HeldItem: r.heldItem, InTransit: true})
	}

	arrived := make(chan Status, 1)
	time.AfterFunc(r.transitDelay, func() {
		r.mu.Lock()
		r.location = target
		r.inTransit = false
		st := Status{Location: r.location, HeldItem: r.heldItem}
		rep := r.reporter
		r.mu.Unlock()

		r.log.Info("arrived", zap.String("location", target))
		if rep != nil {
			rep.Report(context.Background(), st)
		}
		arrived <- st
	})

	select {
	case st := <-arrived:
		return st.Location, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// LoadItem puts an item into the robot's hands.
func (r *Robot) LoadItem(ctx context.Context, itemName string) error {
	if itemName == "" {
		return ErrEmptyItemName
	}

	r.mu.Lock()
	if r.inTransit {
		r.mu.Unlock()
		return fmt.Errorf("%w: refusing load of %q", ErrInTransit, itemName)
	}
	if r.heldItem != "" {
		r.mu.Unlock()
		return fmt.Errorf("%w: holding %q", ErrAlreadyHolding, r.heldItem)
	}
	r.heldItem = itemName
	st := Status{Location: r.location, HeldItem: r.heldItem}
	rep := r.reporter
	r.mu.Unlock()

	r.log.Info("loaded", zap.String("item", itemName))
	if rep != nil {
		rep.Report(ctx, st)
	}
	return nil
}

// UnloadItem empties the robot's hands and returns what it was holding.
func (r *Robot) UnloadItem(ctx context.Context) (string, error) {
	r.mu.Lock()
	if r.inTransit {
		r.mu.Unlock()
		return "", fmt.Errorf("%w: refusing unload", ErrInTransit)
	}
	if r.heldItem == "" {
		r.mu.Unlock()
		return "", ErrNotHolding
	}
	item := r.heldItem
	r.heldItem = ""
	st := Status{Location: r.location}
	rep := r.reporter
	r.mu.Unlock()

	r.log.Info("unloaded", zap.String("item", item))
	if rep != nil {
		rep.Report(ctx, st)
	}
	return item, nil
}
