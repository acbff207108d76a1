package robot

import "time"

const (
	// WellKnownName is the registry entry name shared by every
	// robot. Individual robots are told apart by id.
	WellKnownName = "robot"

	// DefaultTransitDelay is how long a move between two locations
	// takes.
	DefaultTransitDelay = 1000 * time.Millisecond

	// DefaultPreferredPort seeds the registry's free-port scan.
	DefaultPreferredPort = 50100
)
