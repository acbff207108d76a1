// Package discovery is the client side of the service registry. The
// warehouse core and every robot controller use it to register
// themselves at startup, look each other up, obtain a free port, and
// drop their record at shutdown. Every call carries a bounded timeout;
// a registry outage surfaces as an error to the caller, never a hang.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	registryv1 "github.com/warefleet/warefleet/gen/go/warefleet/registry/v1"
	"github.com/warefleet/warefleet/internal/grpcutil"
)

var (
	ErrRegistryAddrEmpty  = errors.New("registry address is empty")
	ErrCallTimeoutInvalid = errors.New("registry call timeout must be > 0")
)

// Config locates the registry for a dependent process.
type Config struct {
	// Address is the registry's host:port.
	Address string

	// CallTimeout bounds every registry RPC issued by this client.
	CallTimeout time.Duration
}

func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrRegistryAddrEmpty
	}

	if c.CallTimeout <= 0 {
		return ErrCallTimeoutInvalid
	}

	return nil
}

// Record is a service record as seen by registry clients.
type Record struct {
	ID      string
	Name    string
	Address string
}

type Client struct {
	conn    *grpc.ClientConn
	rc      registryv1.RegistryServiceClient
	timeout time.Duration
	log     *zap.Logger
}

func Dial(cfg Config, log *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}

	conn, err := grpcutil.NewClient(cfg.Address)
	if err != nil {
		return nil, err
	}

	return &Client{
		conn:    conn,
		rc:      registryv1.NewRegistryServiceClient(conn),
		timeout: cfg.CallTimeout,
		log:     log,
	}, nil
}

// Register announces a service and returns its registry-assigned id.
func (c *Client) Register(ctx context.Context, name, address string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.rc.RegisterService(ctx, &registryv1.RegisterServiceRequest{
		ServiceName:    name,
		ServiceAddress: address,
	})
	if err != nil {
		return "", fmt.Errorf("register %s at %s: %w", name, address, err)
	}
	return resp.GetServiceId(), nil
}

// Unregister removes a registration. Intended for shutdown paths; the
// caller decides whether a failure matters.
func (c *Client) Unregister(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.rc.UnregisterService(ctx, &registryv1.UnregisterServiceRequest{ServiceId: id})
	return err
}

// UnregisterQuiet is the best-effort shutdown variant: errors are
// logged and swallowed so cleanup never blocks an exit.
func (c *Client) UnregisterQuiet(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if err := c.Unregister(ctx, id); err != nil {
		c.log.Warn("unregister failed", zap.String("service_id", id), zap.Error(err))
	}
}

// Find resolves a service by name or id.
func (c *Client) Find(ctx context.Context, key string) (Record, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.rc.FindService(ctx, &registryv1.FindServiceRequest{NameOrId: key})
	if err != nil {
		return Record{}, fmt.Errorf("find service %q: %w", key, err)
	}

	svc := resp.GetService()
	return Record{
		ID:      svc.GetServiceId(),
		Name:    svc.GetServiceName(),
		Address: svc.GetServiceAddress(),
	}, nil
}

// List drains the registry's enumeration stream into a slice.
func (c *Client) List(ctx context.Context) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stream, err := c.rc.ListServices(ctx, &registryv1.ListServicesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	var records []Record
	for {
		rec, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("list services: %w", err)
		}
		records = append(records, Record{
			ID:      rec.GetServiceId(),
			Name:    rec.GetServiceName(),
			Address: rec.GetServiceAddress(),
		})
	}
}

// FreePort asks the registry for an unused port, preferring the given
// one. The result is advisory; binding may still fail.
func (c *Client) FreePort(ctx context.Context, preferred int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.rc.GetFreePort(ctx, &registryv1.GetFreePortRequest{TargetPort: uint32(preferred)})
	if err != nil {
		return 0, fmt.Errorf("get free port: %w", err)
	}
	return int(resp.GetFreePort()), nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
