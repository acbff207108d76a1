package robot

import (
	"fmt"
	"time"

	"github.com/warefleet/warefleet/internal/discovery"
)

// Config carries everything one robot process needs to come up. The
// listen port is not configured here: the robot asks the registry for
// a free one, seeded by PreferredPort.
type Config struct {
	Name          string
	Address       string
	PreferredPort int
	Registry      discovery.Config
	TransitDelay  time.Duration
}

func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if c.Name == "" {
		return ErrEmptyName
	}
	if err := c.Registry.Validate(); err != nil {
		return fmt.Errorf("Registry Config invalid: %w", err)
	}
	if c.TransitDelay <= 0 {
		return fmt.Errorf("%w: %s", ErrTransitDelayInvalid, c.TransitDelay)
	}
	return nil
}
