// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: percept.proto

package perceptpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	PerceptService_AnalyzeFrame_FullMethodName = "/percept.PerceptService/AnalyzeFrame"
	PerceptService_Health_FullMethodName       = "/percept.PerceptService/Health"
)

// PerceptServiceClient is the client API for PerceptService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PerceptService is the Python perception sidecar: vision inference over
// JPEG frames.
type PerceptServiceClient interface {
	AnalyzeFrame(ctx context.Context, in *AnalyzeFrameRequest, opts ...grpc.CallOption) (*AnalyzeFrameResponse, error)
	Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error)
}

type perceptServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPerceptServiceClient(cc grpc.ClientConnInterface) PerceptServiceClient {
	return &perceptServiceClient{cc}
}

func (c *perceptServiceClient) AnalyzeFrame(ctx context.Context, in *AnalyzeFrameRequest, opts ...grpc.CallOption) (*AnalyzeFrameResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalyzeFrameResponse)
	err := c.cc.Invoke(ctx, PerceptService_AnalyzeFrame_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *perceptServiceClient) Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(HealthResponse)
	err := c.cc.Invoke(ctx, PerceptService_Health_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PerceptServiceServer is the server API for PerceptService service.
// All implementations must embed UnimplementedPerceptServiceServer
// for forward compatibility.
//
// PerceptService is the Python perception sidecar: vision inference over
// JPEG frames.
type PerceptServiceServer interface {
	AnalyzeFrame(context.Context, *AnalyzeFrameRequest) (*AnalyzeFrameResponse, error)
	Health(context.Context, *HealthRequest) (*HealthResponse, error)
	mustEmbedUnimplementedPerceptServiceServer()
}

// UnimplementedPerceptServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPerceptServiceServer struct{}

func (UnimplementedPerceptServiceServer) AnalyzeFrame(context.Context, *AnalyzeFrameRequest) (*AnalyzeFrameResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeFrame not implemented")
}
func (UnimplementedPerceptServiceServer) Health(context.Context, *HealthRequest) (*HealthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Health not implemented")
}
func (UnimplementedPerceptServiceServer) mustEmbedUnimplementedPerceptServiceServer() {}
func (UnimplementedPerceptServiceServer) testEmbeddedByValue()                        {}

// UnsafePerceptServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PerceptServiceServer will
// result in compilation errors.
type UnsafePerceptServiceServer interface {
	mustEmbedUnimplementedPerceptServiceServer()
}

func RegisterPerceptServiceServer(s grpc.ServiceRegistrar, srv PerceptServiceServer) {
	// If the following call pancis, it indicates UnimplementedPerceptServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PerceptService_ServiceDesc, srv)
}

func _PerceptService_AnalyzeFrame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeFrameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PerceptServiceServer).AnalyzeFrame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PerceptService_AnalyzeFrame_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PerceptServiceServer).AnalyzeFrame(ctx, req.(*AnalyzeFrameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PerceptService_Health_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PerceptServiceServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PerceptService_Health_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PerceptServiceServer).Health(ctx, req.(*HealthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PerceptService_ServiceDesc is the grpc.ServiceDesc for PerceptService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PerceptService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "percept.PerceptService",
	HandlerType: (*PerceptServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AnalyzeFrame",
			Handler:    _PerceptService_AnalyzeFrame_Handler,
		},
		{
			MethodName: "Health",
			Handler:    _PerceptService_Health_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "percept.proto",
}
