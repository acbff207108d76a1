package warehouse

import (
	"fmt"
	"time"

	"github.com/warefleet/warefleet/internal/discovery"
	"github.com/warefleet/warefleet/internal/grpcutil"
)

// Config carries everything the warehouse service needs to run.
type Config struct {
	GRPC        grpcutil.ListenConfig
	Registry    discovery.Config
	LayoutPath  string
	CallTimeout time.Duration
}

func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if err := c.GRPC.Validate(); err != nil {
		return fmt.Errorf("GRPC Config invalid: %w", err)
	}
	if err := c.Registry.Validate(); err != nil {
		return fmt.Errorf("Registry Config invalid: %w", err)
	}
	if c.CallTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrCallTimeoutInvalid, c.CallTimeout)
	}
	return nil
}

// LoadConfiguredLayout resolves the layout: a file when a path is set,
// the built-in floor plan otherwise.
func (c *Config) LoadConfiguredLayout() (Layout, error) {
	if c.LayoutPath == "" {
		return DefaultLayout(), nil
	}
	return LoadLayout(c.LayoutPath)
}
