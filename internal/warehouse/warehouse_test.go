package warehouse

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/warefleet/warefleet/internal/discovery"
	"github.com/warefleet/warefleet/internal/grpcutil"
)

func newTestWarehouse(t *testing.T, robots map[string]*fakeRobot) *Warehouse {
	t.Helper()

	inv, err := NewInventory(Layout{Locations: []LayoutLocation{
		{Name: LoadingBayName, Capacity: 10, Items: []string{"Lamp", "Desk"}},
		{Name: "shelf:1", Capacity: 1},
	}})
	if err != nil {
		t.Fatalf("new inventory: %v", err)
	}

	cfg := &Config{
		GRPC: grpcutil.ListenConfig{Address: "127.0.0.1", Port: DefaultListenPort},
		Registry: discovery.Config{
			Address:     "127.0.0.1:50000",
			CallTimeout: time.Second,
		},
		CallTimeout: time.Second,
	}

	wh, err := New(cfg, inv, newTestFleet(robots), zap.NewNop())
	if err != nil {
		t.Fatalf("new warehouse: %v", err)
	}
	return wh
}

func addTestRobot(t *testing.T, wh *Warehouse, name, addr string) {
	t.Helper()
	if err := wh.AddRobot(context.Background(), name, addr); err != nil {
		t.Fatalf("AddRobot: %v", err)
	}
}

func TestLoadItemMovesShelfToRobot(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{}
	wh := newTestWarehouse(t, map[string]*fakeRobot{"127.0.0.1:50100": bot})
	addTestRobot(t, wh, "r2", "127.0.0.1:50100")

	if err := wh.LoadItem(context.Background(), "r2", "Lamp"); err != nil {
		t.Fatalf("LoadItem: %v", err)
	}

	has, err := wh.LocationItems(LoadingBayName)
	if err != nil {
		t.Fatalf("LocationItems: %v", err)
	}
	for _, item := range has {
		if item == "Lamp" {
			t.Fatal("expected Lamp removed from the loading bay")
		}
	}

	rec, _ := wh.Robot("r2")
	if rec.HeldItem != "Lamp" {
		t.Fatalf("expected robot holding Lamp, got %q", rec.HeldItem)
	}
}

func TestLoadItemAbsentItem(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{}
	wh := newTestWarehouse(t, map[string]*fakeRobot{"127.0.0.1:50100": bot})
	addTestRobot(t, wh, "r2", "127.0.0.1:50100")

	if err := wh.LoadItem(context.Background(), "r2", "Sofa"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if bot.held != "" {
		t.Fatalf("robot should not have been commanded, holding %q", bot.held)
	}
}

func TestLoadItemUnknownRobot(t *testing.T) {
	t.Parallel()

	wh := newTestWarehouse(t, map[string]*fakeRobot{})

	if err := wh.LoadItem(context.Background(), "ghost", "Lamp"); !errors.Is(err, ErrRobotNotFound) {
		t.Fatalf("expected ErrRobotNotFound, got %v", err)
	}
}

func TestUnloadItemShelvesAtRobotLocation(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{}
	wh := newTestWarehouse(t, map[string]*fakeRobot{"127.0.0.1:50100": bot})
	addTestRobot(t, wh, "r2", "127.0.0.1:50100")

	if err := wh.LoadItem(context.Background(), "r2", "Lamp"); err != nil {
		t.Fatalf("LoadItem: %v", err)
	}
	if _, err := wh.MoveRobot(context.Background(), "r2", "shelf:1"); err != nil {
		t.Fatalf("MoveRobot: %v", err)
	}

	item, err := wh.UnloadItem(context.Background(), "r2")
	if err != nil {
		t.Fatalf("UnloadItem: %v", err)
	}
	if item != "Lamp" {
		t.Fatalf("expected Lamp, got %q", item)
	}

	items, err := wh.LocationItems("shelf:1")
	if err != nil {
		t.Fatalf("LocationItems: %v", err)
	}
	if len(items) != 1 || items[0] != "Lamp" {
		t.Fatalf("expected Lamp on shelf:1, got %v", items)
	}

	rec, _ := wh.Robot("r2")
	if rec.HeldItem != "" {
		t.Fatalf("expected empty hands, got %q", rec.HeldItem)
	}
}

func TestUnloadItemNotHolding(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{}
	wh := newTestWarehouse(t, map[string]*fakeRobot{"127.0.0.1:50100": bot})
	addTestRobot(t, wh, "r2", "127.0.0.1:50100")

	if _, err := wh.UnloadItem(context.Background(), "r2"); !errors.Is(err, ErrRobotNotHolding) {
		t.Fatalf("expected ErrRobotNotHolding, got %v", err)
	}
}

func TestUnloadItemFullShelfKeepsItemOnRobot(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{}
	wh := newTestWarehouse(t, map[string]*fakeRobot{"127.0.0.1:50100": bot})
	addTestRobot(t, wh, "r2", "127.0.0.1:50100")

	if err := wh.AddItem("shelf:1", "Desk"); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := wh.LoadItem(context.Background(), "r2", "Lamp"); err != nil {
		t.Fatalf("LoadItem: %v", err)
	}
	if _, err := wh.MoveRobot(context.Background(), "r2", "shelf:1"); err != nil {
		t.Fatalf("MoveRobot: %v", err)
	}

	if _, err := wh.UnloadItem(context.Background(), "r2"); !errors.Is(err, ErrLocationFull) {
		t.Fatalf("expected ErrLocationFull, got %v", err)
	}
	if bot.held != "Lamp" {
		t.Fatalf("robot should still hold Lamp, got %q", bot.held)
	}
}

func TestLoadThenUnloadIsNetNoop(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{}
	wh := newTestWarehouse(t, map[string]*fakeRobot{"127.0.0.1:50100": bot})
	addTestRobot(t, wh, "r2", "127.0.0.1:50100")

	before, err := wh.LocationItems(LoadingBayName)
	if err != nil {
		t.Fatalf("LocationItems: %v", err)
	}

	if err := wh.LoadItem(context.Background(), "r2", "Lamp"); err != nil {
		t.Fatalf("LoadItem: %v", err)
	}
	if _, err := wh.UnloadItem(context.Background(), "r2"); err != nil {
		t.Fatalf("UnloadItem: %v", err)
	}

	after, err := wh.LocationItems(LoadingBayName)
	if err != nil {
		t.Fatalf("LocationItems: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("expected %d items after round trip, got %d", len(before), len(after))
	}
}

func TestMoveRobotUnknownLocation(t *testing.T) {
	t.Parallel()

	bot := &fakeRobot{}
	wh := newTestWarehouse(t, map[string]*fakeRobot{"127.0.0.1:50100": bot})
	addTestRobot(t, wh, "r2", "127.0.0.1:50100")

	if _, err := wh.MoveRobot(context.Background(), "r2", "shelf:9"); !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
	if bot.location != LoadingBayName {
		t.Fatalf("robot should not have moved, at %q", bot.location)
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	wh := newTestWarehouse(t, map[string]*fakeRobot{})

	if !wh.Authenticate("any-key") {
		t.Fatal("expected non-empty key to pass")
	}
	if wh.Authenticate("") {
		t.Fatal("expected empty key to fail")
	}
}
