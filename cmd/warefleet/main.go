package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/warefleet/warefleet/internal/logging"
)

var rootCmd = cli.Command{
	Name:  "warefleet",
	Usage: "warehouse automation fleet simulator",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  LogLevelFlag,
			Usage: "log level (debug, info, warn, error)",
			Value: "info",
		},
		&cli.StringFlag{
			Name:  LogFormatFlag,
			Usage: "log output format (console, json)",
			Value: "console",
		},
	},
	Commands: []*cli.Command{
		&registryCmd,
		&warehouseCmd,
		&robotCmd,
	},
}

func buildLogger(cmd *cli.Command) (*zap.Logger, error) {
	return logging.New(cmd.String(LogLevelFlag), logging.Format(cmd.String(LogFormatFlag)))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
