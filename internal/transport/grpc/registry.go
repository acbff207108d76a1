// Package grpc implements the gRPC transports for the warefleet
// services. It adapts requests into domain operations and maps domain
// errors into gRPC status codes in one place.
package grpc

import (
	"context"
	"net"

	gogrpc "google.golang.org/grpc"

	registryv1 "github.com/warefleet/warefleet/gen/go/warefleet/registry/v1"
	"github.com/warefleet/warefleet/internal/registry"
)

type RegistryServer struct {
	registryv1.UnimplementedRegistryServiceServer
	registry   *registry.Registry
	grpcServer *gogrpc.Server
}

var _ registryv1.RegistryServiceServer = (*RegistryServer)(nil)

func NewRegistryServer(reg *registry.Registry, opts ...gogrpc.ServerOption) (*RegistryServer, error) {
	s := &RegistryServer{
		registry: reg,
	}

	s.grpcServer = gogrpc.NewServer(opts...)
	registryv1.RegisterRegistryServiceServer(s.grpcServer, s)

	return s, nil
}

func (s *RegistryServer) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

func (s *RegistryServer) GracefulStop() {
	s.grpcServer.GracefulStop()
}

func (s *RegistryServer) RegisterService(ctx context.Context, req *registryv1.RegisterServiceRequest) (*registryv1.RegisterServiceResponse, error) {
	rec, err := s.registry.Register(ctx, req.GetServiceName(), req.GetServiceAddress())
	if err != nil {
		return nil, toStatus(err)
	}
	return &registryv1.RegisterServiceResponse{ServiceId: rec.ID}, nil
}

func (s *RegistryServer) UnregisterService(ctx context.Context, req *registryv1.UnregisterServiceRequest) (*registryv1.UnregisterServiceResponse, error) {
	if err := s.registry.Unregister(ctx, req.GetServiceId()); err != nil {
		return nil, toStatus(err)
	}
	return &registryv1.UnregisterServiceResponse{}, nil
}

func (s *RegistryServer) FindService(ctx context.Context, req *registryv1.FindServiceRequest) (*registryv1.FindServiceResponse, error) {
	rec, err := s.registry.Find(ctx, req.GetNameOrId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &registryv1.FindServiceResponse{Service: serviceRecord(rec)}, nil
}

func (s *RegistryServer) ListServices(req *registryv1.ListServicesRequest, stream gogrpc.ServerStreamingServer[registryv1.ServiceRecord]) error {
	recs, err := s.registry.List(stream.Context())
	if err != nil {
		return toStatus(err)
	}
	for _, rec := range recs {
		if err := stream.Send(serviceRecord(rec)); err != nil {
			return err
		}
	}
	return nil
}

func (s *RegistryServer) GetFreePort(ctx context.Context, req *registryv1.GetFreePortRequest) (*registryv1.GetFreePortResponse, error) {
	port, err := s.registry.FreePort(ctx, int(req.GetTargetPort()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &registryv1.GetFreePortResponse{FreePort: uint32(port)}, nil
}

func serviceRecord(rec registry.ServiceRecord) *registryv1.ServiceRecord {
	return &registryv1.ServiceRecord{
		ServiceId:      rec.ID,
		ServiceName:    rec.Name,
		ServiceAddress: rec.Address,
	}
}
