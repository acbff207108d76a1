package warehouse

import "errors"

var (
	ErrNilConfig          = errors.New("warehouse config is nil")
	ErrLocationNotFound   = errors.New("location not found")
	ErrLocationFull       = errors.New("location at capacity")
	ErrItemNotFound       = errors.New("item not found at location")
	ErrDuplicateLocation  = errors.New("duplicate location name")
	ErrCapacityInvalid    = errors.New("location capacity must be > 0")
	ErrLayoutEmpty        = errors.New("warehouse layout has no locations")
	ErrLayoutOverfull     = errors.New("layout seeds more items than capacity")
	ErrRobotExists        = errors.New("robot already tracked")
	ErrRobotNotFound      = errors.New("robot not tracked")
	ErrRobotNotHolding    = errors.New("robot is not holding an item")
	ErrRobotRejected      = errors.New("robot rejected the command")
	ErrRobotUnavailable   = errors.New("robot call failed")
	ErrInventoryConflict  = errors.New("item changed between validation and removal")
	ErrCallTimeoutInvalid = errors.New("robot call timeout must be > 0")
)
