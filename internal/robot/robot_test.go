package robot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testTransitDelay = 10 * time.Millisecond

type recordingReporter struct {
	mu      sync.Mutex
	reports []Status
}

func (r *recordingReporter) Report(ctx context.Context, st Status) {
	r.mu.Lock()
	r.reports = append(r.reports, st)
	r.mu.Unlock()
}

func (r *recordingReporter) snapshot() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Status(nil), r.reports...)
}

func TestGoToLocationArrives(t *testing.T) {
	t.Parallel()

	r := New(testTransitDelay, zap.NewNop())

	loc, err := r.GoToLocation(context.Background(), "loading_bay")
	require.NoError(t, err)
	require.Equal(t, "loading_bay", loc)

	st := r.Status()
	require.Equal(t, "loading_bay", st.Location)
	require.False(t, st.InTransit)
}

func TestGoToLocationSameTargetNoop(t *testing.T) {
	t.Parallel()

	r := New(time.Minute, zap.NewNop())
	_, err := r.GoToLocation(context.Background(), "")
	require.NoError(t, err)

	// An empty robot already "at" the empty location must not start
	// a minute-long transit.
	st := r.Status()
	require.False(t, st.InTransit)
}

func TestGoToLocationRejectsWhileInTransit(t *testing.T) {
	t.Parallel()

	r := New(200*time.Millisecond, zap.NewNop())

	started := make(chan struct{})
	go func() {
		close(started)
		_, _ = r.GoToLocation(context.Background(), "shelf:1")
	}()
	<-started
	require.Eventually(t, func() bool {
		return r.Status().InTransit
	}, time.Second, time.Millisecond)

	_, err := r.GoToLocation(context.Background(), "shelf:2")
	require.ErrorIs(t, err, ErrInTransit)

	err = r.LoadItem(context.Background(), "Lamp")
	require.ErrorIs(t, err, ErrInTransit)

	_, err = r.UnloadItem(context.Background())
	require.ErrorIs(t, err, ErrInTransit)
}

func TestGoToLocationCompletesAfterCallerGivesUp(t *testing.T) {
	t.Parallel()

	r := New(50*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.GoToLocation(ctx, "shelf:1")
	require.ErrorIs(t, err, context.Canceled)

	// The armed transit still lands.
	require.Eventually(t, func() bool {
		st := r.Status()
		return st.Location == "shelf:1" && !st.InTransit
	}, time.Second, 5*time.Millisecond)
}

func TestLoadAndUnload(t *testing.T) {
	t.Parallel()

	r := New(testTransitDelay, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, r.LoadItem(ctx, "Lamp"))
	require.Equal(t, "Lamp", r.Status().HeldItem)

	err := r.LoadItem(ctx, "Desk")
	require.ErrorIs(t, err, ErrAlreadyHolding)

	item, err := r.UnloadItem(ctx)
	require.NoError(t, err)
	require.Equal(t, "Lamp", item)
	require.Empty(t, r.Status().HeldItem)

	_, err = r.UnloadItem(ctx)
	require.ErrorIs(t, err, ErrNotHolding)
}

func TestLoadItemRejectsEmptyName(t *testing.T) {
	t.Parallel()

	r := New(testTransitDelay, zap.NewNop())
	err := r.LoadItem(context.Background(), "")
	require.ErrorIs(t, err, ErrEmptyItemName)
}

func TestReporterSeesTransitions(t *testing.T) {
	t.Parallel()

	r := New(testTransitDelay, zap.NewNop())
	rep := &recordingReporter{}
	r.SetReporter(rep)

	_, err := r.GoToLocation(context.Background(), "shelf:1")
	require.NoError(t, err)

	reports := rep.snapshot()
	require.Len(t, reports, 2)
	require.True(t, reports[0].InTransit)
	require.False(t, reports[1].InTransit)
	require.Equal(t, "shelf:1", reports[1].Location)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	var nilCfg *Config
	require.ErrorIs(t, nilCfg.Validate(), ErrNilConfig)

	cfg := &Config{
		Address:       "127.0.0.1",
		PreferredPort: DefaultPreferredPort,
		TransitDelay:  DefaultTransitDelay,
	}
	require.ErrorIs(t, cfg.Validate(), ErrEmptyName)

	cfg.Name = "r2"
	require.Error(t, cfg.Validate()) // registry config still missing
}
