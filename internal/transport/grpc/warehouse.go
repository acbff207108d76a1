package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	gogrpc "google.golang.org/grpc"

	warehousev1 "github.com/warefleet/warefleet/gen/go/warefleet/warehouse/v1"
	"github.com/warefleet/warefleet/internal/warehouse"
)

type WarehouseServer struct {
	warehousev1.UnimplementedWarehouseServiceServer
	warehouse  *warehouse.Warehouse
	grpcServer *gogrpc.Server
}

var _ warehousev1.WarehouseServiceServer = (*WarehouseServer)(nil)

func NewWarehouseServer(wh *warehouse.Warehouse, opts ...gogrpc.ServerOption) (*WarehouseServer, error) {
	s := &WarehouseServer{
		warehouse: wh,
	}

	s.grpcServer = gogrpc.NewServer(opts...)
	warehousev1.RegisterWarehouseServiceServer(s.grpcServer, s)

	return s, nil
}

func (s *WarehouseServer) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

func (s *WarehouseServer) GracefulStop() {
	s.grpcServer.GracefulStop()
}

func (s *WarehouseServer) AddItem(ctx context.Context, req *warehousev1.AddItemRequest) (*warehousev1.AddItemResponse, error) {
	if err := s.warehouse.AddItem(req.GetLocationNameOrId(), req.GetItemName()); err != nil {
		return nil, toStatus(err)
	}
	return &warehousev1.AddItemResponse{}, nil
}

func (s *WarehouseServer) RemoveItem(ctx context.Context, req *warehousev1.RemoveItemRequest) (*warehousev1.RemoveItemResponse, error) {
	if err := s.warehouse.RemoveItem(req.GetLocationNameOrId(), req.GetItemName()); err != nil {
		return nil, toStatus(err)
	}
	return &warehousev1.RemoveItemResponse{}, nil
}

// AddItems applies a stream of insertions, counting per-item failures
// instead of aborting the stream on the first full shelf.
func (s *WarehouseServer) AddItems(stream gogrpc.ClientStreamingServer[warehousev1.AddItemRequest, warehousev1.BatchItemAck]) error {
	var applied, failed uint32
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return stream.SendAndClose(&warehousev1.BatchItemAck{Applied: applied, Failed: failed})
		}
		if err != nil {
			return err
		}
		if err := s.warehouse.AddItem(req.GetLocationNameOrId(), req.GetItemName()); err != nil {
			failed++
			continue
		}
		applied++
	}
}

// RemoveItems is the strict batch: an absent item counts as failed,
// unlike the lenient unary RemoveItem.
func (s *WarehouseServer) RemoveItems(stream gogrpc.ClientStreamingServer[warehousev1.RemoveItemRequest, warehousev1.BatchItemAck]) error {
	var applied, failed uint32
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return stream.SendAndClose(&warehousev1.BatchItemAck{Applied: applied, Failed: failed})
		}
		if err != nil {
			return err
		}
		if err := s.warehouse.TakeItem(req.GetLocationNameOrId(), req.GetItemName()); err != nil {
			failed++
			continue
		}
		applied++
	}
}

func (s *WarehouseServer) ListLocationItems(req *warehousev1.ListLocationItemsRequest, stream gogrpc.ServerStreamingServer[warehousev1.LocationItem]) error {
	items, err := s.warehouse.LocationItems(req.GetLocationNameOrId())
	if err != nil {
		return toStatus(err)
	}
	for _, item := range items {
		if err := stream.Send(&warehousev1.LocationItem{ItemName: item}); err != nil {
			return err
		}
	}
	return nil
}

func (s *WarehouseServer) ListLocations(req *warehousev1.ListLocationsRequest, stream gogrpc.ServerStreamingServer[warehousev1.LocationSummary]) error {
	for _, loc := range s.warehouse.Locations() {
		if err := stream.Send(locationSummary(loc)); err != nil {
			return err
		}
	}
	return nil
}

func (s *WarehouseServer) AddRobot(ctx context.Context, req *warehousev1.AddRobotRequest) (*warehousev1.AddRobotResponse, error) {
	if err := s.warehouse.AddRobot(ctx, req.GetServiceId(), req.GetServiceAddress()); err != nil {
		return nil, toStatus(err)
	}
	return &warehousev1.AddRobotResponse{}, nil
}

func (s *WarehouseServer) RemoveRobot(ctx context.Context, req *warehousev1.RemoveRobotRequest) (*warehousev1.RemoveRobotResponse, error) {
	if err := s.warehouse.RemoveRobot(req.GetServiceId()); err != nil {
		return nil, toStatus(err)
	}
	return &warehousev1.RemoveRobotResponse{}, nil
}

func (s *WarehouseServer) SetRobotStatus(ctx context.Context, req *warehousev1.SetRobotStatusRequest) (*warehousev1.SetRobotStatusResponse, error) {
	err := s.warehouse.SetRobotStatus(req.GetServiceId(), robotStateString(req.GetStatus()), req.GetLocation(), req.GetHeldItem())
	if err != nil {
		return nil, toStatus(err)
	}
	return &warehousev1.SetRobotStatusResponse{}, nil
}

func (s *WarehouseServer) GetRobotStatus(ctx context.Context, req *warehousev1.GetRobotStatusRequest) (*warehousev1.RobotStatus, error) {
	rec, err := s.warehouse.Robot(req.GetServiceId())
	if err != nil {
		return nil, toStatus(err)
	}
	return robotStatus(rec), nil
}

func (s *WarehouseServer) ListRobots(req *warehousev1.ListRobotsRequest, stream gogrpc.ServerStreamingServer[warehousev1.RobotStatus]) error {
	for _, rec := range s.warehouse.Robots() {
		if err := stream.Send(robotStatus(rec)); err != nil {
			return err
		}
	}
	return nil
}

func (s *WarehouseServer) MoveRobot(ctx context.Context, req *warehousev1.MoveRobotRequest) (*warehousev1.MoveRobotResponse, error) {
	if _, err := s.warehouse.MoveRobot(ctx, req.GetServiceId(), req.GetLocationNameOrId()); err != nil {
		return nil, toStatus(err)
	}
	return &warehousev1.MoveRobotResponse{}, nil
}

func (s *WarehouseServer) LoadItem(ctx context.Context, req *warehousev1.LoadItemRequest) (*warehousev1.LoadItemResponse, error) {
	if err := s.warehouse.LoadItem(ctx, req.GetServiceId(), req.GetItemName()); err != nil {
		return nil, toStatus(err)
	}
	return &warehousev1.LoadItemResponse{}, nil
}

func (s *WarehouseServer) UnloadItem(ctx context.Context, req *warehousev1.UnloadItemRequest) (*warehousev1.UnloadItemResponse, error) {
	item, err := s.warehouse.UnloadItem(ctx, req.GetServiceId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &warehousev1.UnloadItemResponse{ItemName: item}, nil
}

// ControlRobot drives one robot interactively. Commands are applied in
// arrival order, one at a time; each gets an update frame back. A
// failed command reports its error in the frame and keeps the session
// open. QUIT ends the stream from this side.
func (s *WarehouseServer) ControlRobot(stream gogrpc.BidiStreamingServer[warehousev1.ControlCommand, warehousev1.ControlUpdate]) error {
	ctx := stream.Context()
	for {
		cmd, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		var opErr error
		switch cmd.GetAction() {
		case warehousev1.ControlAction_CONTROL_ACTION_MOVE:
			_, opErr = s.warehouse.MoveRobot(ctx, cmd.GetServiceId(), cmd.GetValue())
		case warehousev1.ControlAction_CONTROL_ACTION_LOAD:
			opErr = s.warehouse.LoadItem(ctx, cmd.GetServiceId(), cmd.GetValue())
		case warehousev1.ControlAction_CONTROL_ACTION_UNLOAD:
			_, opErr = s.warehouse.UnloadItem(ctx, cmd.GetServiceId())
		case warehousev1.ControlAction_CONTROL_ACTION_QUIT:
			return nil
		default:
			opErr = fmt.Errorf("unknown action %v", cmd.GetAction())
		}

		update := &warehousev1.ControlUpdate{ServiceId: cmd.GetServiceId()}
		if rec, recErr := s.warehouse.Robot(cmd.GetServiceId()); recErr == nil {
			update.Location = rec.Location
			update.HeldItem = rec.HeldItem
		}
		if opErr != nil {
			update.Message = opErr.Error()
		}
		if err := stream.Send(update); err != nil {
			return err
		}
	}
}

func (s *WarehouseServer) Authenticate(ctx context.Context, req *warehousev1.AuthenticateRequest) (*warehousev1.AuthenticateResponse, error) {
	ok := s.warehouse.Authenticate(req.GetApiKey())
	resp := &warehousev1.AuthenticateResponse{Result: ok}
	if ok {
		resp.ApiKey = req.GetApiKey()
	}
	return resp, nil
}

func locationSummary(loc warehouse.LocationSummary) *warehousev1.LocationSummary {
	return &warehousev1.LocationSummary{
		LocationId:   loc.ID,
		LocationName: loc.Name,
		ItemCount:    uint32(loc.ItemCount),
		Capacity:     uint32(loc.Capacity),
	}
}

func robotStatus(rec warehouse.RobotRecord) *warehousev1.RobotStatus {
	return &warehousev1.RobotStatus{
		ServiceId:      rec.Name,
		ServiceAddress: rec.Address,
		Status:         robotState(rec.Status),
		Location:       rec.Location,
		HeldItem:       rec.HeldItem,
	}
}

func robotState(s string) warehousev1.RobotState {
	switch s {
	case "idle":
		return warehousev1.RobotState_ROBOT_STATE_IDLE
	case "busy":
		return warehousev1.RobotState_ROBOT_STATE_BUSY
	}
	return warehousev1.RobotState_ROBOT_STATE_UNSPECIFIED
}

func robotStateString(s warehousev1.RobotState) string {
	switch s {
	case warehousev1.RobotState_ROBOT_STATE_IDLE:
		return "idle"
	case warehousev1.RobotState_ROBOT_STATE_BUSY:
		return "busy"
	}
	return "unknown"
}
