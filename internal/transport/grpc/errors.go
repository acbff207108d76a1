package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/warefleet/warefleet/internal/registry"
	"github.com/warefleet/warefleet/internal/robot"
	"github.com/warefleet/warefleet/internal/warehouse"
)

// toStatus maps a domain error onto a gRPC status. The mapping lives
// in one place so every handler agrees on the taxonomy. Errors that
// are already statuses pass through untouched.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := codes.Internal
	switch {
	case errors.Is(err, registry.ErrEmptyServiceName),
		errors.Is(err, registry.ErrEmptyServiceAddress),
		errors.Is(err, robot.ErrEmptyItemName):
		code = codes.InvalidArgument
	case errors.Is(err, registry.ErrServiceNotFound),
		errors.Is(err, warehouse.ErrLocationNotFound),
		errors.Is(err, warehouse.ErrItemNotFound),
		errors.Is(err, warehouse.ErrRobotNotFound):
		code = codes.NotFound
	case errors.Is(err, registry.ErrAddressInUse),
		errors.Is(err, warehouse.ErrRobotExists):
		code = codes.AlreadyExists
	case errors.Is(err, registry.ErrNoFreePort),
		errors.Is(err, warehouse.ErrLocationFull):
		code = codes.ResourceExhausted
	case errors.Is(err, warehouse.ErrRobotNotHolding),
		errors.Is(err, warehouse.ErrRobotRejected),
		errors.Is(err, robot.ErrInTransit),
		errors.Is(err, robot.ErrAlreadyHolding),
		errors.Is(err, robot.ErrNotHolding):
		code = codes.FailedPrecondition
	case errors.Is(err, warehouse.ErrRobotUnavailable):
		code = codes.Unavailable
	case errors.Is(err, warehouse.ErrInventoryConflict):
		code = codes.Aborted
	}
	return status.Error(code, err.Error())
}
