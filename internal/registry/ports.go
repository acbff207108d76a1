package registry

import (
	"context"
	"net"
	"strconv"
)

// FreePort returns preferred if no registered address currently uses
// that port; otherwise it scans upward from the configured base until
// an unused port is found. The result is advisory: only registered
// addresses are inspected, so the caller must still handle a bind
// failure on the returned port.
func (r *Registry) FreePort(ctx context.Context, preferred int) (int, error) {
	records, err := r.backend.List(ctx)
	if err != nil {
		return 0, err
	}

	used := make(map[int]struct{}, len(records))
	for _, rec := range records {
		_, portStr, err := net.SplitHostPort(rec.Address)
		if err != nil {
			continue
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			continue
		}
		used[port] = struct{}{}
	}

	if preferred > 0 {
		if _, taken := used[preferred]; !taken {
			return preferred, nil
		}
	}

	for port := r.cfg.Ports.Base; port < r.cfg.Ports.Base+portScanSpan; port++ {
		if _, taken := used[port]; !taken {
			return port, nil
		}
	}

	return 0, ErrNoFreePort
}
