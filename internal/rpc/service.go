// Package rpc exposes the simulator as a gRPC service using a JSON codec.
package rpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/xtding233/skyblock-rng/internal/catalog"
	"github.com/xtding233/skyblock-rng/internal/service"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "skyblock.rng.v1.Simulator"

// ListDropsRequest has no fields.
type ListDropsRequest struct{}

// SimulatorServer is the server API of the Simulator service.
type SimulatorServer interface {
	Simulate(context.Context, *service.SimulateRequest) (*service.SimulateResponse, error)
	ListDrops(context.Context, *ListDropsRequest) (*service.DropsResponse, error)
}

// RegisterSimulatorServer registers srv on s.
func RegisterSimulatorServer(s grpc.ServiceRegistrar, srv SimulatorServer) {
	s.RegisterService(&simulatorServiceDesc, srv)
}

var simulatorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SimulatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Simulate", Handler: simulateHandler},
		{MethodName: "ListDrops", Handler: listDropsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "skyblock/rng/v1/simulator",
}

func simulateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(service.SimulateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServer).Simulate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Simulate"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SimulatorServer).Simulate(ctx, req.(*service.SimulateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func listDropsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListDropsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServer).ListDrops(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ListDrops"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SimulatorServer).ListDrops(ctx, req.(*ListDropsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// simulator adapts service.Service to SimulatorServer.
type simulator struct {
	svc *service.Service
}

// NewSimulatorServer wraps svc.
func NewSimulatorServer(svc *service.Service) SimulatorServer {
	return &simulator{svc: svc}
}

func (s *simulator) Simulate(ctx context.Context, req *service.SimulateRequest) (*service.SimulateResponse, error) {
	resp, err := s.svc.Simulate(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

func (s *simulator) ListDrops(ctx context.Context, _ *ListDropsRequest) (*service.DropsResponse, error) {
	resp, err := s.svc.Drops(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

func toStatus(err error) error {
	switch {
	case service.IsClientError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, catalog.ErrUnknownDrop):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
