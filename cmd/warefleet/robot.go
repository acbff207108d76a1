package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/warefleet/warefleet/internal/discovery"
	"github.com/warefleet/warefleet/internal/robot"
	transport "github.com/warefleet/warefleet/internal/transport/grpc"
	"github.com/warefleet/warefleet/internal/warehouse"
)

var robotCmd = cli.Command{
	Name:   "robot",
	Usage:  "run one warefleet robot process",
	Action: RunRobot,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     RobotNameFlag,
			Usage:    "unique robot name",
			Required: true,
		},
		&cli.StringFlag{
			Name:  RobotAddrFlag,
			Usage: "the address the robot's grpc server binds to",
			Value: "127.0.0.1",
		},
		&cli.IntFlag{
			Name:  PreferredPortFlag,
			Usage: "port offered to the registry's free-port lease",
			Value: robot.DefaultPreferredPort,
		},
		&cli.StringFlag{
			Name:  RegistryAddrFlag,
			Usage: "address of the service registry",
			Value: "127.0.0.1:50000",
		},
		&cli.DurationFlag{
			Name:  CallTimeoutFlag,
			Usage: "per-call timeout for registry and warehouse rpcs",
			Value: warehouse.DefaultCallTimeout,
		},
		&cli.DurationFlag{
			Name:  TransitDelayFlag,
			Usage: "how long a move between locations takes",
			Value: robot.DefaultTransitDelay,
		},
		&cli.DurationFlag{
			Name:  ShutdownTimeoutFlag,
			Usage: "how long a graceful shutdown may take",
			Value: 10 * time.Second,
		},
	},
}

func RunRobot(ctx context.Context, cmd *cli.Command) error {
	logger, err := buildLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg := &robot.Config{
		Name:          cmd.String(RobotNameFlag),
		Address:       cmd.String(RobotAddrFlag),
		PreferredPort: int(cmd.Int(PreferredPortFlag)),
		Registry: discovery.Config{
			Address:     cmd.String(RegistryAddrFlag),
			CallTimeout: cmd.Duration(CallTimeoutFlag),
		},
		TransitDelay: cmd.Duration(TransitDelayFlag),
	}

	log := logger.Named("robot").With(zap.String("name", cfg.Name))
	r := robot.New(cfg.TransitDelay, log)
	ctrl, err := robot.NewController(cfg, r, log)
	if err != nil {
		return err
	}

	srv, err := transport.NewRobotServer(r)
	if err != nil {
		return err
	}

	return ctrl.Run(ctx, srv, cmd.Duration(ShutdownTimeoutFlag))
}
