package grpc

import (
	"context"
	"net"

	gogrpc "google.golang.org/grpc"

	robotv1 "github.com/warefleet/warefleet/gen/go/warefleet/robot/v1"
	"github.com/warefleet/warefleet/internal/robot"
)

type RobotServer struct {
	robotv1.UnimplementedRobotServiceServer
	robot      *robot.Robot
	grpcServer *gogrpc.Server
}

var _ robotv1.RobotServiceServer = (*RobotServer)(nil)

func NewRobotServer(r *robot.Robot, opts ...gogrpc.ServerOption) (*RobotServer, error) {
	s := &RobotServer{
		robot: r,
	}

	s.grpcServer = gogrpc.NewServer(opts...)
	robotv1.RegisterRobotServiceServer(s.grpcServer, s)

	return s, nil
}

func (s *RobotServer) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

func (s *RobotServer) GracefulStop() {
	s.grpcServer.GracefulStop()
}

func (s *RobotServer) GoToLocation(ctx context.Context, req *robotv1.GoToLocationRequest) (*robotv1.GoToLocationResponse, error) {
	loc, err := s.robot.GoToLocation(ctx, req.GetLocationNameOrId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &robotv1.GoToLocationResponse{Location: loc}, nil
}

func (s *RobotServer) LoadItem(ctx context.Context, req *robotv1.LoadItemRequest) (*robotv1.LoadItemResponse, error) {
	if err := s.robot.LoadItem(ctx, req.GetItemName()); err != nil {
		return nil, toStatus(err)
	}
	return &robotv1.LoadItemResponse{}, nil
}

func (s *RobotServer) UnloadItem(ctx context.Context, req *robotv1.UnloadItemRequest) (*robotv1.UnloadItemResponse, error) {
	item, err := s.robot.UnloadItem(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &robotv1.UnloadItemResponse{ItemName: item}, nil
}
