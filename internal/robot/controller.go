package robot

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	warehousev1 "github.com/warefleet/warefleet/gen/go/warefleet/warehouse/v1"
	"github.com/warefleet/warefleet/internal/discovery"
	"github.com/warefleet/warefleet/internal/grpcutil"
	"github.com/warefleet/warefleet/internal/warehouse"
)

// Transport is the serving surface the controller drives.
type Transport interface {
	Serve(lis net.Listener) error
	GracefulStop()
}

// Controller owns one robot's lifecycle: it leases a port from the
// registry, binds, registers, serves, then announces the robot to the
// warehouse. Teardown walks the same steps in reverse, best-effort.
type Controller struct {
	cfg   *Config
	log   *zap.Logger
	robot *Robot
}

// NewController validates cfg and pairs it with a robot.
func NewController(cfg *Config, r *Robot, log *zap.Logger) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{cfg: cfg, log: log, robot: r}, nil
}

// Run brings the robot online and serves until ctx is canceled.
func (c *Controller) Run(ctx context.Context, t Transport, shutdownTimeout time.Duration) error {
	reg, err := discovery.Dial(c.cfg.Registry, c.log)
	if err != nil {
		return err
	}
	defer func() { _ = reg.Close() }()

	port, err := reg.FreePort(ctx, c.cfg.PreferredPort)
	if err != nil {
		return fmt.Errorf("leasing port: %w", err)
	}
	addr := net.JoinHostPort(c.cfg.Address, strconv.Itoa(port))
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on leased port: %w", err)
	}

	selfID, err := reg.Register(ctx, WellKnownName, addr)
	if err != nil {
		_ = lis.Close()
		return fmt.Errorf("registering with registry: %w", err)
	}

	c.log.Info("robot listening",
		zap.String("name", c.cfg.Name),
		zap.String("address", addr))

	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- t.Serve(lis)
	}()

	// The warehouse dials back on the address above, so the server
	// must already be up before AddRobot goes out.
	whConn, whErr := c.announce(ctx, reg, addr)
	if whErr != nil {
		c.log.Error("warehouse announcement failed, serving anyway", zap.Error(whErr))
	}

	select {
	case err := <-runErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		if ctx.Err() == nil {
			return nil
		}
	case <-ctx.Done():
	}

	shutdownCtx := context.Background()
	var cancel context.CancelFunc
	if shutdownTimeout > 0 {
		shutdownCtx, cancel = context.WithTimeout(context.Background(), shutdownTimeout)
	} else {
		shutdownCtx, cancel = context.WithCancel(context.Background())
	}
	defer cancel()

	shutdownErrCh := make(chan error, 1)
	go func() {
		t.GracefulStop()
		c.robot.SetReporter(nil)
		if whConn != nil {
			c.withdraw(shutdownCtx, whConn)
			_ = whConn.Close()
		}
		reg.UnregisterQuiet(shutdownCtx, selfID)
		shutdownErrCh <- nil
	}()

	select {
	case err := <-shutdownErrCh:
		return err
	case <-shutdownCtx.Done():
		return shutdownCtx.Err()
	}
}

// announce finds the warehouse, joins its fleet, and installs the
// status reporter. The returned connection stays open for reports.
func (c *Controller) announce(ctx context.Context, reg *discovery.Client, addr string) (*grpc.ClientConn, error) {
	rec, err := reg.Find(ctx, warehouse.WellKnownName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWarehouseUnavailable, err)
	}
	conn, err := grpcutil.NewClient(rec.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWarehouseUnavailable, err)
	}
	wh := warehousev1.NewWarehouseServiceClient(conn)

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Registry.CallTimeout)
	defer cancel()
	_, err = wh.AddRobot(callCtx, &warehousev1.AddRobotRequest{
		ServiceId:      c.cfg.Name,
		ServiceAddress: addr,
	})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: joining fleet: %v", ErrWarehouseUnavailable, err)
	}

	c.robot.SetReporter(&warehouseReporter{
		wh:      wh,
		name:    c.cfg.Name,
		timeout: c.cfg.Registry.CallTimeout,
		log:     c.log,
	})
	c.log.Info("joined warehouse fleet", zap.String("warehouse", rec.Address))
	return conn, nil
}

// withdraw removes the robot from the fleet, best-effort.
func (c *Controller) withdraw(ctx context.Context, conn *grpc.ClientConn) {
	wh := warehousev1.NewWarehouseServiceClient(conn)
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Registry.CallTimeout)
	defer cancel()
	if _, err := wh.RemoveRobot(callCtx, &warehousev1.RemoveRobotRequest{ServiceId: c.cfg.Name}); err != nil {
		c.log.Warn("leaving fleet", zap.Error(err))
	}
}

// warehouseReporter forwards robot status snapshots to the warehouse.
type warehouseReporter struct {
	wh      warehousev1.WarehouseServiceClient
	name    string
	timeout time.Duration
	log     *zap.Logger
}

func (r *warehouseReporter) Report(ctx context.Context, st Status) {
	state := warehousev1.RobotState_ROBOT_STATE_IDLE
	if st.InTransit {
		state = warehousev1.RobotState_ROBOT_STATE_BUSY
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	_, err := r.wh.SetRobotStatus(callCtx, &warehousev1.SetRobotStatusRequest{
		ServiceId: r.name,
		Status:    state,
		Location:  st.Location,
		HeldItem:  st.HeldItem,
	})
	if err != nil {
		r.log.Warn("status report failed", zap.Error(err))
	}
}
