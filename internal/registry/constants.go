package registry

const (
	// WellKnownName is the name the registry registers itself under.
	WellKnownName = "registry"

	// DefaultListenPort is the fixed, well-known registry port.
	// Everything below DefaultPortBase is reserved for statically
	// addressed services.
	DefaultListenPort = 50000

	// DefaultPortBase is where dynamic port allocation starts.
	DefaultPortBase = 50100

	// portScanSpan bounds the upward scan from the base port.
	portScanSpan = 1000
)

const (
	RedisRegistryBackend  RegistryBackend = "redis"
	MemoryRegistryBackend RegistryBackend = "memory"
)

var registryMap = map[string]RegistryBackend{
	"redis":  RedisRegistryBackend,
	"memory": MemoryRegistryBackend,
}
