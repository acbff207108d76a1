package registry

import (
	"errors"
	"testing"

	"github.com/warefleet/warefleet/internal/grpcutil"
)

func TestParseRegistryBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    RegistryBackend
		wantErr error
	}{
		{
			name:  "redis backend",
			input: "redis",
			want:  RedisRegistryBackend,
		},
		{
			name:  "memory backend",
			input: "memory",
			want:  MemoryRegistryBackend,
		},
		{
			name:    "unsupported backend",
			input:   "unknown",
			want:    "",
			wantErr: ErrUnsupportedBackend,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRegistryBackend(test.input)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}
			if got != test.want {
				t.Fatalf("expected backend %q, got %q", test.want, got)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validGRPC := grpcutil.ListenConfig{
		Address: "127.0.0.1",
		Port:    DefaultListenPort,
	}
	validPorts := PortConfig{
		Base: DefaultPortBase,
	}
	validRedis := &RedisConfig{
		Address:  "localhost",
		Port:     6379,
		Username: "user",
		Password: "pass",
		DB:       0,
	}

	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid memory backend config",
			config: Config{
				Backend: BackendConfig{
					Type:  MemoryRegistryBackend,
					Redis: nil,
				},
				GRPC:  validGRPC,
				Ports: validPorts,
			},
			wantErr: nil,
		},
		{
			name: "redis backend with valid redis config",
			config: Config{
				Backend: BackendConfig{
					Type:  RedisRegistryBackend,
					Redis: validRedis,
				},
				GRPC:  validGRPC,
				Ports: validPorts,
			},
			wantErr: nil,
		},
		{
			name: "redis backend with nil redis config",
			config: Config{
				Backend: BackendConfig{
					Type:  RedisRegistryBackend,
					Redis: nil,
				},
				GRPC:  validGRPC,
				Ports: validPorts,
			},
			wantErr: ErrRedisConfigNil,
		},
		{
			name: "redis backend with empty address",
			config: Config{
				Backend: BackendConfig{
					Type:  RedisRegistryBackend,
					Redis: &RedisConfig{Port: 6379},
				},
				GRPC:  validGRPC,
				Ports: validPorts,
			},
			wantErr: ErrRedisAddrEmpty,
		},
		{
			name: "invalid grpc listen port",
			config: Config{
				Backend: BackendConfig{
					Type: MemoryRegistryBackend,
				},
				GRPC: grpcutil.ListenConfig{
					Address: "127.0.0.1",
					Port:    0,
				},
				Ports: validPorts,
			},
			wantErr: grpcutil.ErrListenPortInvalid,
		},
		{
			name: "tls enabled missing cert",
			config: Config{
				Backend: BackendConfig{
					Type: MemoryRegistryBackend,
				},
				GRPC: grpcutil.ListenConfig{
					Address: "127.0.0.1",
					Port:    DefaultListenPort,
					TLS: grpcutil.TLSConfig{
						Enabled: true,
						KeyPath: "key.pem",
					},
				},
				Ports: validPorts,
			},
			wantErr: grpcutil.ErrTLSCertPathMissing,
		},
		{
			name: "tls enabled missing key",
			config: Config{
				Backend: BackendConfig{
					Type: MemoryRegistryBackend,
				},
				GRPC: grpcutil.ListenConfig{
					Address: "127.0.0.1",
					Port:    DefaultListenPort,
					TLS: grpcutil.TLSConfig{
						Enabled:  true,
						CertPath: "cert.pem",
					},
				},
				Ports: validPorts,
			},
			wantErr: grpcutil.ErrTLSKeyPathMissing,
		},
		{
			name: "port base too low",
			config: Config{
				Backend: BackendConfig{
					Type: MemoryRegistryBackend,
				},
				GRPC:  validGRPC,
				Ports: PortConfig{Base: 80},
			},
			wantErr: ErrPortBaseInvalid,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := test.config.Validate()
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}
		})
	}
}
