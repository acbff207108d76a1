package registry

import (
	"fmt"

	"github.com/warefleet/warefleet/internal/grpcutil"
)

// Config defines the runtime configuration for the registry process.
// It captures transport configuration (gRPC), backend configuration,
// and the advisory port allocation policy in a backend-agnostic way.
type Config struct {
	// Backend defines which registry backend implementation is used
	// (memory or redis) and its associated configuration.
	Backend BackendConfig

	// GRPC defines the gRPC server endpoint used to expose the
	// registry APIs.
	GRPC grpcutil.ListenConfig

	// Ports defines the advisory free-port allocation policy handed
	// to dynamically started services.
	Ports PortConfig
}

// PortConfig defines the advisory port allocation policy. Allocation
// inspects registered addresses only, not OS-level socket state, so a
// caller must still handle a subsequent bind failure.
type PortConfig struct {
	// Base is the first port considered when scanning for a free one.
	Base int
}

// BackendConfig defines which registry backend implementation is used
// and provides backend-specific configuration.
type BackendConfig struct {
	// Type specifies the registry backend implementation.
	Type RegistryBackend

	// Redis contains Redis-specific configuration when the Redis
	// backend is used. It must be non-nil when Type selects Redis.
	Redis *RedisConfig

	// Memory contains configuration for the in-memory backend.
	Memory *MemoryConfig
}

// RegistryBackend represents the supported registry backend implementations.
type RegistryBackend string

// RedisConfig defines configuration for the Redis-backed registry implementation.
type RedisConfig struct {
	// Address is the Redis server hostname or IP.
	Address string

	// Port is the Redis server port.
	Port int

	// Username is the Redis username used for authentication.
	Username string

	// Password is the Redis password used for authentication.
	Password string

	// DB is the Redis logical database index to use.
	DB int
}

// MemoryConfig defines configuration for the in-memory backend.
type MemoryConfig struct{}

func ParseRegistryBackend(backend string) (RegistryBackend, error) {
	if registryBackend, ok := registryMap[backend]; ok {
		return registryBackend, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedBackend, backend)
}

func (c *Config) Validate() error {
	switch c.Backend.Type {
	case RedisRegistryBackend:
		if c.Backend.Redis == nil {
			return ErrRedisConfigNil
		}

		if err := c.Backend.Redis.Validate(); err != nil {
			return fmt.Errorf("redis config invalid: %w", err)
		}
	case MemoryRegistryBackend:
	default:
		return fmt.Errorf("unknown registry backend: %s", c.Backend.Type)
	}

	if err := c.GRPC.Validate(); err != nil {
		return fmt.Errorf("GRPC Config invalid: %w", err)
	}

	if err := c.Ports.Validate(); err != nil {
		return fmt.Errorf("Port Config invalid: %w", err)
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Address == "" {
		return ErrRedisAddrEmpty
	}

	if r.Port <= 0 {
		return ErrRedisPortInvalid
	}

	if r.DB < 0 {
		return ErrRedisDBInvalid
	}

	return nil
}

func (p *PortConfig) Validate() error {
	if p.Base <= 1024 {
		return ErrPortBaseInvalid
	}

	return nil
}
