package main

// cli flag names
const (
	LogLevelFlag  = "log-level"
	LogFormatFlag = "log-format"

	BackendFlag         = "backend"
	GRPCListenAddrFlag  = "grpc-listen-address"
	GRPCListenPortFlag  = "grpc-listen-port"
	TLSEnabledFlag      = "tls"
	TLSKeyPathFlag      = "tls-key-path"
	TLSCertPathFlag     = "tls-cert-path"
	PortBaseFlag        = "port-base"
	ShutdownTimeoutFlag = "shutdown-timeout"

	RedisAddrFlag     = "redis-addr"
	RedisPortFlag     = "redis-port"
	RedisUsernameFlag = "redis-user"
	RedisPasswordFlag = "redis-password"
	RedisDBFlag       = "redis-db"

	RegistryAddrFlag = "registry-address"
	CallTimeoutFlag  = "call-timeout"

	LayoutPathFlag = "layout"

	RobotNameFlag     = "name"
	RobotAddrFlag     = "address"
	PreferredPortFlag = "preferred-port"
	TransitDelayFlag  = "transit-delay"
)
