package registry

import "errors"

var (
	ErrUnsupportedBackend  = errors.New("unsupported registry backend")
	ErrRedisConfigNil      = errors.New("redis config is nil")
	ErrRedisAddrEmpty      = errors.New("redis address is empty")
	ErrRedisPortInvalid    = errors.New("redis port must be > 0")
	ErrRedisDBInvalid      = errors.New("redis db must be >= 0")
	ErrPortBaseInvalid     = errors.New("port allocation base must be > 1024")
	ErrNilConfig           = errors.New("registry config is nil")
	ErrEmptyServiceName    = errors.New("service name is empty")
	ErrEmptyServiceAddress = errors.New("service address is empty")
	ErrAddressInUse        = errors.New("service address already registered")
	ErrServiceNotFound     = errors.New("service not found")
	ErrNoFreePort          = errors.New("no free port in allocation range")
)
