package warehouse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	robotv1 "github.com/warefleet/warefleet/gen/go/warefleet/robot/v1"
	"github.com/warefleet/warefleet/internal/grpcutil"
)

// RobotClient is the slice of the robot control surface the fleet
// needs. The default implementation speaks gRPC; tests substitute
// fakes.
type RobotClient interface {
	GoToLocation(ctx context.Context, locationNameOrID string) (string, error)
	LoadItem(ctx context.Context, itemName string) error
	UnloadItem(ctx context.Context) (string, error)
	io.Closer
}

// Dialer opens a control connection to a robot at address.
type Dialer func(address string) (RobotClient, error)

type grpcRobotClient struct {
	conn io.Closer
	rc   robotv1.RobotServiceClient
}

// DialRobot is the default Dialer.
func DialRobot(address string) (RobotClient, error) {
	conn, err := grpcutil.NewClient(address)
	if err != nil {
		return nil, fmt.Errorf("dialing robot at %s: %w", address, err)
	}
	return &grpcRobotClient{conn: conn, rc: robotv1.NewRobotServiceClient(conn)}, nil
}

func (c *grpcRobotClient) GoToLocation(ctx context.Context, locationNameOrID string) (string, error) {
	resp, err := c.rc.GoToLocation(ctx, &robotv1.GoToLocationRequest{LocationNameOrId: locationNameOrID})
	if err != nil {
		return "", err
	}
	return resp.GetLocation(), nil
}

func (c *grpcRobotClient) LoadItem(ctx context.Context, itemName string) error {
	_, err := c.rc.LoadItem(ctx, &robotv1.LoadItemRequest{ItemName: itemName})
	return err
}

func (c *grpcRobotClient) UnloadItem(ctx context.Context) (string, error) {
	resp, err := c.rc.UnloadItem(ctx, &robotv1.UnloadItemRequest{})
	if err != nil {
		return "", err
	}
	return resp.GetItemName(), nil
}

func (c *grpcRobotClient) Close() error { return c.conn.Close() }

// RobotRecord is the fleet's view of one registered robot.
type RobotRecord struct {
	Name     string
	Address  string
	Status   string
	Location string
	HeldItem string
}

type robotEntry struct {
	record RobotRecord
	client RobotClient
}

// Fleet tracks registered robots and proxies movement and transfer
// commands to them. The mutex guards the roster only; remote calls run
// outside it so one slow robot cannot stall the table.
type Fleet struct {
	mu          sync.Mutex
	robots      map[string]*robotEntry
	dial        Dialer
	callTimeout time.Duration
	home        string
	log         *zap.Logger
}

// NewFleet builds an empty fleet. A nil dialer selects DialRobot.
func NewFleet(dial Dialer, callTimeout time.Duration, log *zap.Logger) *Fleet {
	if dial == nil {
		dial = DialRobot
	}
	return &Fleet{
		robots:      make(map[string]*robotEntry),
		dial:        dial,
		callTimeout: callTimeout,
		home:        LoadingBayName,
		log:         log,
	}
}

// Add registers a robot under name and sends it to the loading bay. A
// failed homing move is logged and does not fail the registration; the
// robot reports its own position on the next command.
func (f *Fleet) Add(ctx context.Context, name, address string) error {
	if name == "" {
		return fmt.Errorf("%w: empty robot name", ErrRobotRejected)
	}

	f.mu.Lock()
	if _, ok := f.robots[name]; ok {
		f.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrRobotExists, name)
	}
	// Reserve the slot before dialing so a concurrent Add for the
	// same name fails fast instead of double-dialing.
	entry := &robotEntry{record: RobotRecord{
		Name:     name,
		Address:  address,
		Status:   "idle",
		Location: f.home,
	}}
	f.robots[name] = entry
	f.mu.Unlock()

	client, err := f.dial(address)
	if err != nil {
		f.mu.Lock()
		delete(f.robots, name)
		f.mu.Unlock()
		return fmt.Errorf("%w: %s: %v", ErrRobotUnavailable, name, err)
	}

	f.mu.Lock()
	entry.client = client
	f.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, f.callTimeout)
	defer cancel()
	if _, err := client.GoToLocation(callCtx, f.home); err != nil {
		f.log.Warn("homing move failed, keeping registration",
			zap.String("robot", name),
			zap.Error(err))
	}
	return nil
}

// Remove drops a robot from the roster and closes its connection.
func (f *Fleet) Remove(name string) error {
	f.mu.Lock()
	entry, ok := f.robots[name]
	if !ok {
		f.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrRobotNotFound, name)
	}
	delete(f.robots, name)
	f.mu.Unlock()

	if entry.client != nil {
		if err := entry.client.Close(); err != nil {
			f.log.Warn("closing robot connection",
				zap.String("robot", name),
				zap.Error(err))
		}
	}
	return nil
}

// SetStatus overwrites a robot's self-reported telemetry. An empty
// location means "unchanged"; an empty heldItem means empty hands.
func (f *Fleet) SetStatus(name, status, location, heldItem string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.robots[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRobotNotFound, name)
	}
	entry.record.Status = status
	if location != "" {
		entry.record.Location = location
	}
	entry.record.HeldItem = heldItem
	return nil
}

// Get returns a robot's current record.
func (f *Fleet) Get(name string) (RobotRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.robots[name]
	if !ok {
		return RobotRecord{}, fmt.Errorf("%w: %s", ErrRobotNotFound, name)
	}
	return entry.record, nil
}

// List returns a name-ordered snapshot of the roster.
func (f *Fleet) List() []RobotRecord {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]RobotRecord, 0, len(f.robots))
	for _, entry := range f.robots {
		out = append(out, entry.record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Move sends a robot to a location and records where it ended up.
func (f *Fleet) Move(ctx context.Context, name, locationNameOrID string) (string, error) {
	client, err := f.clientFor(name)
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, f.callTimeout)
	defer cancel()
	arrived, err := client.GoToLocation(callCtx, locationNameOrID)
	if err != nil {
		return "", f.translate(name, err)
	}

	f.mu.Lock()
	if entry, ok := f.robots[name]; ok {
		entry.record.Location = arrived
	}
	f.mu.Unlock()
	return arrived, nil
}

// Load hands an item to a robot and records that it is holding it.
func (f *Fleet) Load(ctx context.Context, name, itemName string) error {
	client, err := f.clientFor(name)
	if err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, f.callTimeout)
	defer cancel()
	if err := client.LoadItem(callCtx, itemName); err != nil {
		return f.translate(name, err)
	}

	f.mu.Lock()
	if entry, ok := f.robots[name]; ok {
		entry.record.HeldItem = itemName
	}
	f.mu.Unlock()
	return nil
}

// Unload takes the held item back from a robot.
func (f *Fleet) Unload(ctx context.Context, name string) (string, error) {
	client, err := f.clientFor(name)
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, f.callTimeout)
	defer cancel()
	item, err := client.UnloadItem(callCtx)
	if err != nil {
		return "", f.translate(name, err)
	}

	f.mu.Lock()
	if entry, ok := f.robots[name]; ok {
		entry.record.HeldItem = ""
	}
	f.mu.Unlock()
	return item, nil
}

// Close tears down every robot connection. The roster is left intact
// for a final List by shutdown logging.
func (f *Fleet) Close() error {
	f.mu.Lock()
	clients := make(map[string]RobotClient, len(f.robots))
	for name, entry := range f.robots {
		if entry.client != nil {
			clients[name] = entry.client
		}
	}
	f.mu.Unlock()

	var errs []error
	for name, client := range clients {
		if err := client.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (f *Fleet) clientFor(name string) (RobotClient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.robots[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRobotNotFound, name)
	}
	if entry.client == nil {
		return nil, fmt.Errorf("%w: %s: not connected", ErrRobotUnavailable, name)
	}
	return entry.client, nil
}

// translate maps a remote robot failure onto the fleet's error
// taxonomy. A FailedPrecondition means the robot refused the command
// (busy, wrong hands state); anything else means it is unreachable.
func (f *Fleet) translate(name string, err error) error {
	if st, ok := status.FromError(err); ok && st.Code() == codes.FailedPrecondition {
		return fmt.Errorf("%w: %s: %s", ErrRobotRejected, name, st.Message())
	}
	return fmt.Errorf("%w: %s: %v", ErrRobotUnavailable, name, err)
}
