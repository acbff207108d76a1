package discovery

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid",
			config: Config{
				Address:     "127.0.0.1:50000",
				CallTimeout: time.Second,
			},
		},
		{
			name: "missing address",
			config: Config{
				CallTimeout: time.Second,
			},
			wantErr: ErrRegistryAddrEmpty,
		},
		{
			name: "missing call timeout",
			config: Config{
				Address: "127.0.0.1:50000",
			},
			wantErr: ErrCallTimeoutInvalid,
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
