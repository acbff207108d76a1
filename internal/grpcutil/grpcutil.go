// Package grpcutil carries the gRPC plumbing shared by the warefleet
// processes: listener configuration, TLS server options, and client
// connection setup with the insecure development default.
package grpcutil

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	ErrListenPortInvalid  = errors.New("grpc port must be > 0")
	ErrTLSCertPathMissing = errors.New("grpc tls cert path empty")
	ErrTLSKeyPathMissing  = errors.New("grpc tls key path empty")
)

// ListenConfig defines the gRPC server endpoint for a warefleet process.
type ListenConfig struct {
	// Address is the network address the gRPC server binds to.
	Address string

	// Port is the TCP port the gRPC server listens on.
	Port int

	// TLS defines TLS configuration for securing the gRPC transport.
	TLS TLSConfig
}

// TLSConfig defines TLS settings for securing gRPC communication.
type TLSConfig struct {
	// Enabled determines whether TLS is enabled for the gRPC server.
	Enabled bool

	// CertPath is the filesystem path to the TLS certificate.
	CertPath string

	// KeyPath is the filesystem path to the TLS private key.
	KeyPath string
}

func (c *ListenConfig) Validate() error {
	if c.Port <= 0 {
		return ErrListenPortInvalid
	}

	return c.TLS.Validate()
}

func (t *TLSConfig) Validate() error {
	if !t.Enabled {
		return nil
	}

	if t.CertPath == "" {
		return ErrTLSCertPathMissing
	}

	if t.KeyPath == "" {
		return ErrTLSKeyPathMissing
	}

	return nil
}

// Addr returns the host:port string the server binds to.
func (c *ListenConfig) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// Listen opens the TCP listener for the configured endpoint.
func (c *ListenConfig) Listen() (net.Listener, error) {
	lis, err := net.Listen("tcp", c.Addr())
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", c.Addr(), err)
	}
	return lis, nil
}

// ServerOptions builds the grpc.ServerOption set for the endpoint,
// loading TLS credentials when enabled.
func ServerOptions(tls TLSConfig) ([]grpc.ServerOption, error) {
	if !tls.Enabled {
		return nil, nil
	}

	creds, err := credentials.NewServerTLSFromFile(tls.CertPath, tls.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("load tls credentials: %w", err)
	}
	return []grpc.ServerOption{grpc.Creds(creds)}, nil
}

// NewClient opens a client connection to target. The simulation runs
// plaintext between processes on one host.
func NewClient(target string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", target, err)
	}
	return conn, nil
}
