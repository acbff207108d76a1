package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/warefleet/warefleet/internal/discovery"
	"github.com/warefleet/warefleet/internal/grpcutil"
	transport "github.com/warefleet/warefleet/internal/transport/grpc"
	"github.com/warefleet/warefleet/internal/warehouse"
)

var warehouseCmd = cli.Command{
	Name:   "warehouse",
	Usage:  "run the warefleet warehouse core process",
	Action: RunWarehouse,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  GRPCListenAddrFlag,
			Usage: "the address the grpc server should listen on",
			Value: "127.0.0.1",
		},
		&cli.IntFlag{
			Name:  GRPCListenPortFlag,
			Usage: "the port the warehouse's grpc server will listen on",
			Value: warehouse.DefaultListenPort,
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
		&cli.StringFlag{
			Name:  RegistryAddrFlag,
			Usage: "address of the service registry",
			Value: "127.0.0.1:50000",
		},
		&cli.StringFlag{
			Name:  LayoutPathFlag,
			Usage: "path to a yaml floor layout, empty for the built-in one",
		},
		&cli.DurationFlag{
			Name:  CallTimeoutFlag,
			Usage: "per-call timeout for registry and robot rpcs",
			Value: warehouse.DefaultCallTimeout,
		},
		&cli.DurationFlag{
			Name:  ShutdownTimeoutFlag,
			Usage: "how long a graceful shutdown may take",
			Value: 10 * time.Second,
		},
	},
}

func RunWarehouse(ctx context.Context, cmd *cli.Command) error {
	logger, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg := &warehouse.Config{
		GRPC: grpcutil.ListenConfig{
			Address: cmd.String(GRPCListenAddrFlag),
			Port:    int(cmd.Int(GRPCListenPortFlag)),
			TLS: grpcutil.TLSConfig{
				Enabled:  cmd.Bool(TLSEnabledFlag),
				CertPath: cmd.String(TLSCertPathFlag),
				KeyPath:  cmd.String(TLSKeyPathFlag),
			},
		},
		Registry: discovery.Config{
			Address:     cmd.String(RegistryAddrFlag),
			CallTimeout: cmd.Duration(CallTimeoutFlag),
		},
		LayoutPath:  cmd.String(LayoutPathFlag),
		CallTimeout: cmd.Duration(CallTimeoutFlag),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	layout, err := cfg.LoadConfiguredLayout()
	if err != nil {
		return err
	}
	inv, err := warehouse.NewInventory(layout)
	if err != nil {
		return err
	}

	log := logger.Named("warehouse")
	fleet := warehouse.NewFleet(nil, cfg.CallTimeout, log)
	wh, err := warehouse.New(cfg, inv, fleet, log)
	if err != nil {
		return err
	}

	opts, err := grpcutil.ServerOptions(cfg.GRPC.TLS)
	if err != nil {
		return err
	}
	srv, err := transport.NewWarehouseServer(wh, opts...)
	if err != nil {
		return err
	}

	return wh.Run(ctx, srv, cmd.Duration(ShutdownTimeoutFlag))
}
