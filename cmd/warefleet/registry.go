package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/warefleet/warefleet/internal/grpcutil"
	"github.com/warefleet/warefleet/internal/registry"
	transport "github.com/warefleet/warefleet/internal/transport/grpc"
)

var registryCmd = cli.Command{
	Name:   "registry",
	Usage:  "run the warefleet service registry process",
	Action: RunRegistry,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  BackendFlag,
			Value: "memory",
			Usage: "the specified backend for the registry.",
		},
		&cli.StringFlag{
			Name:  GRPCListenAddrFlag,
			Usage: "the address the grpc server should listen on",
			Value: "127.0.0.1",
		},
		&cli.IntFlag{
			Name:  GRPCListenPortFlag,
			Usage: "the port the registry's grpc server will listen on",
			Value: registry.DefaultListenPort,
		},
		&cli.BoolFlag{
			Name:  TLSEnabledFlag,
			Usage: "serve with tls",
		},
		&cli.StringFlag{
			Name:  TLSKeyPathFlag,
			Usage: "path to tls key file",
		},
		&cli.StringFlag{
			Name:  TLSCertPathFlag,
			Usage: "path to tls crt file",
		},
		&cli.IntFlag{
			Name:  PortBaseFlag,
			Usage: "first port considered when leasing free ports",
			Value: registry.DefaultPortBase,
		},
		&cli.DurationFlag{
			Name:  ShutdownTimeoutFlag,
			Usage: "how long a graceful shutdown may take",
			Value: 10 * time.Second,
		},
		&cli.StringFlag{
			Name:  RedisAddrFlag,
			Usage: "redis instance address",
			Value: "localhost",
		},
		&cli.IntFlag{
			Name:  RedisPortFlag,
			Usage: "redis instance port",
			Value: 6379,
		},
		&cli.StringFlag{
			Name:  RedisUsernameFlag,
			Usage: "redis username",
			Value: "default",
		},
		&cli.StringFlag{
			Name:  RedisPasswordFlag,
			Usage: "redis password",
			Value: "",
		},
		&cli.IntFlag{
			Name:  RedisDBFlag,
			Usage: "specified redis db to use",
			Value: 0,
		},
	},
}

func RunRegistry(ctx context.Context, cmd *cli.Command) error {
	logger, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := buildRegistryConfigFromCLI(cmd)
	if err != nil {
		return err
	}

	backend, err := buildBackendFromConfig(cfg)
	if err != nil {
		return err
	}

	reg, err := registry.New(cfg, backend, logger.Named("registry"))
	if err != nil {
		return err
	}

	opts, err := grpcutil.ServerOptions(cfg.GRPC.TLS)
	if err != nil {
		return err
	}
	srv, err := transport.NewRegistryServer(reg, opts...)
	if err != nil {
		return err
	}

	return reg.RunFunc(ctx, srv, cmd.Duration(ShutdownTimeoutFlag))
}

func buildRegistryConfigFromCLI(cmd *cli.Command) (*registry.Config, error) {
	backendType, err := registry.ParseRegistryBackend(cmd.String(BackendFlag))
	if err != nil {
		return nil, err
	}

	registryConfig := &registry.Config{
		Backend: registry.BackendConfig{
			Type: backendType,
		},
		GRPC: grpcutil.ListenConfig{
			Address: cmd.String(GRPCListenAddrFlag),
			Port:    int(cmd.Int(GRPCListenPortFlag)),
			TLS: grpcutil.TLSConfig{
				Enabled:  cmd.Bool(TLSEnabledFlag),
				CertPath: cmd.String(TLSCertPathFlag),
				KeyPath:  cmd.String(TLSKeyPathFlag),
			},
		},
		Ports: registry.PortConfig{
			Base: int(cmd.Int(PortBaseFlag)),
		},
	}

	switch registryConfig.Backend.Type {
	case registry.RedisRegistryBackend:
		registryConfig.Backend.Redis = &registry.RedisConfig{
			Address:  cmd.String(RedisAddrFlag),
			Port:     int(cmd.Int(RedisPortFlag)),
			Username: cmd.String(RedisUsernameFlag),
			Password: cmd.String(RedisPasswordFlag),
			DB:       int(cmd.Int(RedisDBFlag)),
		}
	case registry.MemoryRegistryBackend:
		registryConfig.Backend.Memory = &registry.MemoryConfig{}
	default:
		return nil, fmt.Errorf("%w: %s", registry.ErrUnsupportedBackend, registryConfig.Backend.Type)
	}

	if err := registryConfig.Validate(); err != nil {
		return nil, err
	}
	return registryConfig, nil
}
