package robot

import "errors"

var (
	// ErrNilConfig is returned when a nil Config is used.
	ErrNilConfig = errors.New("config is nil")

	// ErrEmptyName is returned when the robot has no name to
	// register under.
	ErrEmptyName = errors.New("robot name is empty")

	// ErrTransitDelayInvalid is returned when the configured transit
	// delay is not positive.
	ErrTransitDelayInvalid = errors.New("transit delay must be positive")

	// ErrEmptyItemName is returned by LoadItem for a blank item.
	ErrEmptyItemName = errors.New("item name is empty")

	// ErrInTransit is returned when a command arrives while the
	// robot is still moving.
	ErrInTransit = errors.New("robot is in transit")

	// ErrAlreadyHolding is returned by LoadItem when the robot's
	// hands are full.
	ErrAlreadyHolding = errors.New("robot is already holding an item")

	// ErrNotHolding is returned by UnloadItem when there is nothing
	// to put down.
	ErrNotHolding = errors.New("robot is not holding an item")

	// ErrWarehouseUnavailable is returned when the warehouse cannot
	// be found or reached during startup.
	ErrWarehouseUnavailable = errors.New("warehouse unavailable")
)
