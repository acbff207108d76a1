package warehouse

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeRobot is an in-process RobotClient standing in for a remote
// robot process.
type fakeRobot struct {
	mu       sync.Mutex
	location string
	held     string

	moveErr   error
	loadErr   error
	unloadErr error
	closed    bool
}

func (f *fakeRobot) GoToLocation(ctx context.Context, loc string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.moveErr != nil {
		return "", f.moveErr
	}
	f.location = loc
	return loc, nil
}

func (f *fakeRobot) LoadItem(ctx context.Context, item string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return f.loadErr
	}
	f.held = item
	return nil
}

func (f *fakeRobot) UnloadItem(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unloadErr != nil {
		return "", f.unloadErr
	}
	item := f.held
	f.held = ""
	return item, nil
}

func (f *fakeRobot) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func newTestFleet(robots map[string]*fakeRobot) *Fleet {
	dial := func(address string) (RobotClient, error) {
		if r, ok := robots[address]; ok {
			return r, nil
		}
		return nil, errors.New("no robot at " + address)
	}
	return NewFleet(dial, time.Second, zap.NewNop())
}

func TestFleetAddHomesRobot(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{}
	fleet := newTestFleet(map[string]*fakeRobot{"127.0.0.1:50100": bot})

	if err := fleet.Add(context.Background(), "r2", "127.0.0.1:50100"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if bot.location != LoadingBayName {
		t.Fatalf("expected robot homed to %q, got %q", LoadingBayName, bot.location)
	}

	rec, err := fleet.Get("r2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Location != LoadingBayName {
		t.Fatalf("expected record at %q, got %q", LoadingBayName, rec.Location)
	}
}

func TestFleetAddDuplicateName(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{}
	fleet := newTestFleet(map[string]*fakeRobot{"127.0.0.1:50100": bot})

	if err := fleet.Add(context.Background(), "r2", "127.0.0.1:50100"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := fleet.Add(context.Background(), "r2", "127.0.0.1:50101"); !errors.Is(err, ErrRobotExists) {
		t.Fatalf("expected ErrRobotExists, got %v", err)
	}
}

func TestFleetAddDialFailureRollsBack(t *testing.T) {
	t.Parallel()

	fleet := newTestFleet(map[string]*fakeRobot{})

	if err := fleet.Add(context.Background(), "ghost", "127.0.0.1:50199"); !errors.Is(err, ErrRobotUnavailable) {
		t.Fatalf("expected ErrRobotUnavailable, got %v", err)
	}
	// The reserved slot must be released so the name can be retried.
	if _, err := fleet.Get("ghost"); !errors.Is(err, ErrRobotNotFound) {
		t.Fatalf("expected ErrRobotNotFound, got %v", err)
	}
}

func TestFleetMoveUpdatesRecord(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{}
	fleet := newTestFleet(map[string]*fakeRobot{"127.0.0.1:50100": bot})
	if err := fleet.Add(context.Background(), "r2", "127.0.0.1:50100"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	arrived, err := fleet.Move(context.Background(), "r2", "shelf:1")
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if arrived != "shelf:1" {
		t.Fatalf("expected arrival at shelf:1, got %q", arrived)
	}

	rec, _ := fleet.Get("r2")
	if rec.Location != "shelf:1" {
		t.Fatalf("record not updated: %q", rec.Location)
	}
}

func TestFleetTranslatesRemoteErrors(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{moveErr: status.Error(codes.FailedPrecondition, "robot is in transit")}
	fleet := newTestFleet(map[string]*fakeRobot{"127.0.0.1:50100": bot})
	if err := fleet.Add(context.Background(), "r2", "127.0.0.1:50100"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := fleet.Move(context.Background(), "r2", "shelf:1"); !errors.Is(err, ErrRobotRejected) {
		t.Fatalf("expected ErrRobotRejected, got %v", err)
	}

	bot.mu.Lock()
	bot.moveErr = status.Error(codes.Unavailable, "connection refused")
	bot.mu.Unlock()
	if _, err := fleet.Move(context.Background(), "r2", "shelf:1"); !errors.Is(err, ErrRobotUnavailable) {
		t.Fatalf("expected ErrRobotUnavailable, got %v", err)
	}
}

func TestFleetRemoveClosesConnection(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{}
	fleet := newTestFleet(map[string]*fakeRobot{"127.0.0.1:50100": bot})
	if err := fleet.Add(context.Background(), "r2", "127.0.0.1:50100"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := fleet.Remove("r2"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !bot.closed {
		t.Fatal("expected connection closed on removal")
	}
	if err := fleet.Remove("r2"); !errors.Is(err, ErrRobotNotFound) {
		t.Fatalf("expected ErrRobotNotFound, got %v", err)
	}
}

func TestFleetListSortedByName(t *testing.T) {
	t.Parallel()

	robots := map[string]*fakeRobot{
		"127.0.0.1:50100": {},
		"127.0.0.1:50101": {},
	}
	fleet := newTestFleet(robots)
	if err := fleet.Add(context.Background(), "zulu", "127.0.0.1:50100"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := fleet.Add(context.Background(), "alpha", "127.0.0.1:50101"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	list := fleet.List()
	if len(list) != 2 || list[0].Name != "alpha" || list[1].Name != "zulu" {
		t.Fatalf("unexpected roster order: %#v", list)
	}
}
