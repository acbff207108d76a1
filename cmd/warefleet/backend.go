package main

import (
	"github.com/warefleet/warefleet/internal/registry"
	"github.com/warefleet/warefleet/internal/registry/backend/memory"
	"github.com/warefleet/warefleet/internal/registry/backend/redis"
)

func buildBackendFromConfig(cfg *registry.Config) (registry.Backend, error) {
	switch cfg.Backend.Type {
	case registry.RedisRegistryBackend:
		return redis.New(cfg.Backend.Redis)
	case registry.MemoryRegistryBackend:
		return memory.New(cfg.Backend.Memory)
	default:
		return nil, registry.ErrUnsupportedBackend
	}
}
