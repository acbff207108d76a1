package grpc

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	registryv1 "github.com/warefleet/warefleet/gen/go/warefleet/registry/v1"
	robotv1 "github.com/warefleet/warefleet/gen/go/warefleet/robot/v1"
	warehousev1 "github.com/warefleet/warefleet/gen/go/warefleet/warehouse/v1"
	"github.com/warefleet/warefleet/internal/discovery"
	"github.com/warefleet/warefleet/internal/grpcutil"
	"github.com/warefleet/warefleet/internal/registry"
	"github.com/warefleet/warefleet/internal/registry/backend/memory"
	"github.com/warefleet/warefleet/internal/robot"
	"github.com/warefleet/warefleet/internal/warehouse"
)

const bufSize = 1 << 20

type server interface {
	Serve(lis net.Listener) error
	GracefulStop()
}

// serveBuf runs srv on an in-process listener and returns a client
// connection to it.
func serveBuf(t *testing.T, srv server) *gogrpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.GracefulStop)

	conn, err := gogrpc.NewClient("passthrough:///bufnet",
		gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		gogrpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func newRegistryServer(t *testing.T) *RegistryServer {
	t.Helper()

	backend, err := memory.New(&registry.MemoryConfig{})
	if err != nil {
		t.Fatalf("memory backend: %v", err)
	}
	reg, err := registry.New(&registry.Config{
		Backend: registry.BackendConfig{
			Type:   registry.MemoryRegistryBackend,
			Memory: &registry.MemoryConfig{},
		},
		GRPC: grpcutil.ListenConfig{
			Address: "127.0.0.1",
			Port:    registry.DefaultListenPort,
		},
		Ports: registry.PortConfig{Base: registry.DefaultPortBase},
	}, backend, zap.NewNop())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	srv, err := NewRegistryServer(reg)
	if err != nil {
		t.Fatalf("new registry server: %v", err)
	}
	return srv
}

func TestRegistryServiceRoundTrip(t *testing.T) {
	t.Parallel()

	conn := serveBuf(t, newRegistryServer(t))
	client := registryv1.NewRegistryServiceClient(conn)
	ctx := context.Background()

	reg, err := client.RegisterService(ctx, &registryv1.RegisterServiceRequest{
		ServiceName:    "warehouse",
		ServiceAddress: "127.0.0.1:50001",
	})
	if err != nil {
		t.Fatalf("RegisterService: %v", err)
	}
	if reg.GetServiceId() == "" {
		t.Fatal("expected a service id")
	}

	found, err := client.FindService(ctx, &registryv1.FindServiceRequest{NameOrId: "warehouse"})
	if err != nil {
		t.Fatalf("FindService: %v", err)
	}
	if found.GetService().GetServiceAddress() != "127.0.0.1:50001" {
		t.Fatalf("address mismatch: %q", found.GetService().GetServiceAddress())
	}

	if _, err := client.RegisterService(ctx, &registryv1.RegisterServiceRequest{
		ServiceName:    "imposter",
		ServiceAddress: "127.0.0.1:50001",
	}); status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}

	stream, err := client.ListServices(ctx, &registryv1.ListServicesRequest{})
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	var count int
	for {
		_, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("stream recv: %v", err)
		}
		count++
	}
	if count != 1 {
		t.Fatalf("expected 1 streamed record, got %d", count)
	}

	if _, err := client.UnregisterService(ctx, &registryv1.UnregisterServiceRequest{
		ServiceId: reg.GetServiceId(),
	}); err != nil {
		t.Fatalf("UnregisterService: %v", err)
	}

	if _, err := client.FindService(ctx, &registryv1.FindServiceRequest{NameOrId: "warehouse"}); status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestRegistryServiceValidation(t *testing.T) {
	t.Parallel()

	conn := serveBuf(t, newRegistryServer(t))
	client := registryv1.NewRegistryServiceClient(conn)

	if _, err := client.RegisterService(context.Background(), &registryv1.RegisterServiceRequest{
		ServiceAddress: "127.0.0.1:50001",
	}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestRegistryServiceFreePort(t *testing.T) {
	t.Parallel()

	conn := serveBuf(t, newRegistryServer(t))
	client := registryv1.NewRegistryServiceClient(conn)
	ctx := context.Background()

	if _, err := client.RegisterService(ctx, &registryv1.RegisterServiceRequest{
		ServiceName:    "robot",
		ServiceAddress: "127.0.0.1:50100",
	}); err != nil {
		t.Fatalf("RegisterService: %v", err)
	}

	resp, err := client.GetFreePort(ctx, &registryv1.GetFreePortRequest{TargetPort: 50100})
	if err != nil {
		t.Fatalf("GetFreePort: %v", err)
	}
	if resp.GetFreePort() != 50101 {
		t.Fatalf("expected port 50101, got %d", resp.GetFreePort())
	}
}

// testRobot is an in-process warehouse.RobotClient.
type testRobot struct {
	mu       sync.Mutex
	location string
	held     string
}

func (f *testRobot) GoToLocation(ctx context.Context, loc string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.location = loc
	return loc, nil
}

func (f *testRobot) LoadItem(ctx context.Context, item string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.held = item
	return nil
}

func (f *testRobot) UnloadItem(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.held
	f.held = ""
	return item, nil
}

func (f *testRobot) Close() error { return nil }

func newWarehouseServer(t *testing.T) *WarehouseServer {
	t.Helper()

	inv, err := warehouse.NewInventory(warehouse.DefaultLayout())
	if err != nil {
		t.Fatalf("new inventory: %v", err)
	}

	dial := func(address string) (warehouse.RobotClient, error) {
		return &testRobot{}, nil
	}
	fleet := warehouse.NewFleet(dial, time.Second, zap.NewNop())

	wh, err := warehouse.New(&warehouse.Config{
		GRPC: grpcutil.ListenConfig{Address: "127.0.0.1", Port: warehouse.DefaultListenPort},
		Registry: discovery.Config{
			Address:     "127.0.0.1:50000",
			CallTimeout: time.Second,
		},
		CallTimeout: time.Second,
	}, inv, fleet, zap.NewNop())
	if err != nil {
		t.Fatalf("new warehouse: %v", err)
	}

	srv, err := NewWarehouseServer(wh)
	if err != nil {
		t.Fatalf("new warehouse server: %v", err)
	}
	return srv
}

func TestWarehouseServiceInventory(t *testing.T) {
	t.Parallel()

	conn := serveBuf(t, newWarehouseServer(t))
	client := warehousev1.NewWarehouseServiceClient(conn)
	ctx := context.Background()

	if _, err := client.AddItem(ctx, &warehousev1.AddItemRequest{
		LocationNameOrId: "shelf:1",
		ItemName:         "Lamp",
	}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	stream, err := client.ListLocationItems(ctx, &warehousev1.ListLocationItemsRequest{
		LocationNameOrId: "shelf:1",
	})
	if err != nil {
		t.Fatalf("ListLocationItems: %v", err)
	}
	var items []string
	for {
		item, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("stream recv: %v", err)
		}
		items = append(items, item.GetItemName())
	}
	if len(items) != 1 || items[0] != "Lamp" {
		t.Fatalf("expected [Lamp], got %v", items)
	}

	if _, err := client.AddItem(ctx, &warehousev1.AddItemRequest{
		LocationNameOrId: "shelf:9",
		ItemName:         "Lamp",
	}); status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}

	// Lenient unary remove: absent item is not an error.
	if _, err := client.RemoveItem(ctx, &warehousev1.RemoveItemRequest{
		LocationNameOrId: "shelf:2",
		ItemName:         "Ghost",
	}); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
}

func TestWarehouseServiceBatchAdd(t *testing.T) {
	t.Parallel()

	conn := serveBuf(t, newWarehouseServer(t))
	client := warehousev1.NewWarehouseServiceClient(conn)
	ctx := context.Background()

	stream, err := client.AddItems(ctx)
	if err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	sends := []warehousev1.AddItemRequest{
		{LocationNameOrId: "shelf:1", ItemName: "Lamp"},
		{LocationNameOrId: "shelf:1", ItemName: "Desk"},
		{LocationNameOrId: "shelf:9", ItemName: "Chair"},
	}
	for i := range sends {
		if err := stream.Send(&sends[i]); err != nil {
			t.Fatalf("send: %v", err)
		}
	}
	ack, err := stream.CloseAndRecv()
	if err != nil {
		t.Fatalf("CloseAndRecv: %v", err)
	}
	if ack.GetApplied() != 2 || ack.GetFailed() != 1 {
		t.Fatalf("expected applied=2 failed=1, got %d/%d", ack.GetApplied(), ack.GetFailed())
	}
}

func TestWarehouseServiceBatchRemoveStrict(t *testing.T) {
	t.Parallel()

	conn := serveBuf(t, newWarehouseServer(t))
	client := warehousev1.NewWarehouseServiceClient(conn)
	ctx := context.Background()

	stream, err := client.RemoveItems(ctx)
	if err != nil {
		t.Fatalf("RemoveItems: %v", err)
	}
	sends := []warehousev1.RemoveItemRequest{
		{LocationNameOrId: "loading_bay", ItemName: "Lamp"},
		{LocationNameOrId: "loading_bay", ItemName: "Ghost"},
	}
	for i := range sends {
		if err := stream.Send(&sends[i]); err != nil {
			t.Fatalf("send: %v", err)
		}
	}
	ack, err := stream.CloseAndRecv()
	if err != nil {
		t.Fatalf("CloseAndRecv: %v", err)
	}
	if ack.GetApplied() != 1 || ack.GetFailed() != 1 {
		t.Fatalf("expected applied=1 failed=1, got %d/%d", ack.GetApplied(), ack.GetFailed())
	}
}

func TestWarehouseServiceControlSession(t *testing.T) {
	t.Parallel()

	conn := serveBuf(t, newWarehouseServer(t))
	client := warehousev1.NewWarehouseServiceClient(conn)
	ctx := context.Background()

	if _, err := client.AddRobot(ctx, &warehousev1.AddRobotRequest{
		ServiceId:      "r2",
		ServiceAddress: "127.0.0.1:50100",
	}); err != nil {
		t.Fatalf("AddRobot: %v", err)
	}

	stream, err := client.ControlRobot(ctx)
	if err != nil {
		t.Fatalf("ControlRobot: %v", err)
	}

	steps := []struct {
		cmd          warehousev1.ControlCommand
		wantLocation string
		wantHeld     string
		wantMessage  bool
	}{
		{
			cmd: warehousev1.ControlCommand{
				ServiceId: "r2",
				Action:    warehousev1.ControlAction_CONTROL_ACTION_LOAD,
				Value:     "Lamp",
			},
			wantLocation: "loading_bay",
			wantHeld:     "Lamp",
		},
		{
			cmd: warehousev1.ControlCommand{
				ServiceId: "r2",
				Action:    warehousev1.ControlAction_CONTROL_ACTION_MOVE,
				Value:     "shelf:1",
			},
			wantLocation: "shelf:1",
			wantHeld:     "Lamp",
		},
		{
			cmd: warehousev1.ControlCommand{
				ServiceId: "r2",
				Action:    warehousev1.ControlAction_CONTROL_ACTION_UNLOAD,
			},
			wantLocation: "shelf:1",
		},
		{
			cmd: warehousev1.ControlCommand{
				ServiceId: "r2",
				Action:    warehousev1.ControlAction_CONTROL_ACTION_UNSPECIFIED,
			},
			wantLocation: "shelf:1",
			wantMessage:  true,
		},
	}

	for i := range steps {
		if err := stream.Send(&steps[i].cmd); err != nil {
			t.Fatalf("send step %d: %v", i, err)
		}
		update, err := stream.Recv()
		if err != nil {
			t.Fatalf("recv step %d: %v", i, err)
		}
		if update.GetLocation() != steps[i].wantLocation {
			t.Fatalf("step %d: expected location %q, got %q", i, steps[i].wantLocation, update.GetLocation())
		}
		if update.GetHeldItem() != steps[i].wantHeld {
			t.Fatalf("step %d: expected held %q, got %q", i, steps[i].wantHeld, update.GetHeldItem())
		}
		if steps[i].wantMessage && update.GetMessage() == "" {
			t.Fatalf("step %d: expected an error message", i)
		}
		if !steps[i].wantMessage && update.GetMessage() != "" {
			t.Fatalf("step %d: unexpected message %q", i, update.GetMessage())
		}
	}

	// QUIT ends the stream server-side.
	if err := stream.Send(&warehousev1.ControlCommand{
		ServiceId: "r2",
		Action:    warehousev1.ControlAction_CONTROL_ACTION_QUIT,
	}); err != nil {
		t.Fatalf("send quit: %v", err)
	}
	if _, err := stream.Recv(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF after quit, got %v", err)
	}

	// The shelved item from the session is visible to unary calls.
	items, err := client.ListLocationItems(ctx, &warehousev1.ListLocationItemsRequest{
		LocationNameOrId: "shelf:1",
	})
	if err != nil {
		t.Fatalf("ListLocationItems: %v", err)
	}
	first, err := items.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if first.GetItemName() != "Lamp" {
		t.Fatalf("expected Lamp on shelf:1, got %q", first.GetItemName())
	}
}

func TestRobotServiceRoundTrip(t *testing.T) {
	t.Parallel()

	r := robot.New(5*time.Millisecond, zap.NewNop())
	srv, err := NewRobotServer(r)
	if err != nil {
		t.Fatalf("new robot server: %v", err)
	}
	conn := serveBuf(t, srv)
	client := robotv1.NewRobotServiceClient(conn)
	ctx := context.Background()

	resp, err := client.GoToLocation(ctx, &robotv1.GoToLocationRequest{LocationNameOrId: "loading_bay"})
	if err != nil {
		t.Fatalf("GoToLocation: %v", err)
	}
	if resp.GetLocation() != "loading_bay" {
		t.Fatalf("expected loading_bay, got %q", resp.GetLocation())
	}

	if _, err := client.LoadItem(ctx, &robotv1.LoadItemRequest{ItemName: "Lamp"}); err != nil {
		t.Fatalf("LoadItem: %v", err)
	}
	if _, err := client.LoadItem(ctx, &robotv1.LoadItemRequest{ItemName: "Desk"}); status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}

	unloaded, err := client.UnloadItem(ctx, &robotv1.UnloadItemRequest{})
	if err != nil {
		t.Fatalf("UnloadItem: %v", err)
	}
	if unloaded.GetItemName() != "Lamp" {
		t.Fatalf("expected Lamp, got %q", unloaded.GetItemName())
	}

	if _, err := client.UnloadItem(ctx, &robotv1.UnloadItemRequest{}); status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}
