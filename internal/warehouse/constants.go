package warehouse

import "time"

const (
	// WellKnownName is the registry entry every client looks up to
	// find the warehouse.
	WellKnownName = "warehouse"

	// DefaultListenPort is one above the registry's so a stock
	// deployment fits on one host.
	DefaultListenPort = 50001

	// DefaultCallTimeout bounds each robot command.
	DefaultCallTimeout = 5 * time.Second

	// robotServiceName is the registry name robots publish under.
	robotServiceName = "robot"
)
