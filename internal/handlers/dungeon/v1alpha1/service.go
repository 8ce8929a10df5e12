package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgdungeon.api.v1alpha1.DungeonService"

// Full method names
const (
	GenerateDungeonMethod = "/" + ServiceName + "/GenerateDungeon"
	GetDungeonMethod      = "/" + ServiceName + "/GetDungeon"
	DeleteDungeonMethod   = "/" + ServiceName + "/DeleteDungeon"
	RenderDungeonMethod   = "/" + ServiceName + "/RenderDungeon"
)

// DungeonServiceServer is the server API for the dungeon service. Messages
// are google.protobuf.Struct documents.
type DungeonServiceServer interface {
	GenerateDungeon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDungeon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteDungeon(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RenderDungeon(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedDungeonServiceServer can be embedded to have forward compatible implementations
type UnimplementedDungeonServiceServer struct{}

// GenerateDungeon returns Unimplemented
func (UnimplementedDungeonServiceServer) GenerateDungeon(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateDungeon not implemented")
}

// GetDungeon returns Unimplemented
func (UnimplementedDungeonServiceServer) GetDungeon(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDungeon not implemented")
}

// DeleteDungeon returns Unimplemented
func (UnimplementedDungeonServiceServer) DeleteDungeon(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteDungeon not implemented")
}

// RenderDungeon returns Unimplemented
func (UnimplementedDungeonServiceServer) RenderDungeon(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method RenderDungeon not implemented")
}

// RegisterDungeonServiceServer registers srv with the gRPC server
func RegisterDungeonServiceServer(s grpc.ServiceRegistrar, srv DungeonServiceServer) {
	s.RegisterService(&DungeonServiceDesc, srv)
}

type unaryCall func(DungeonServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DungeonServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(DungeonServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// DungeonServiceDesc is the grpc.ServiceDesc for the dungeon service
var DungeonServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DungeonServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateDungeon",
			Handler: unaryHandler(GenerateDungeonMethod, func(s DungeonServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.GenerateDungeon(ctx, in)
			}),
		},
		{
			MethodName: "GetDungeon",
			Handler: unaryHandler(GetDungeonMethod, func(s DungeonServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.GetDungeon(ctx, in)
			}),
		},
		{
			MethodName: "DeleteDungeon",
			Handler: unaryHandler(DeleteDungeonMethod, func(s DungeonServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.DeleteDungeon(ctx, in)
			}),
		},
		{
			MethodName: "RenderDungeon",
			Handler: unaryHandler(RenderDungeonMethod, func(s DungeonServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return s.RenderDungeon(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgdungeon/api/v1alpha1/dungeon.proto",
}

// DungeonServiceClient is the client API for the dungeon service
type DungeonServiceClient interface {
	GenerateDungeon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetDungeon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteDungeon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RenderDungeon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type dungeonServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDungeonServiceClient creates a client over an existing connection
func NewDungeonServiceClient(cc grpc.ClientConnInterface) DungeonServiceClient {
	return &dungeonServiceClient{cc: cc}
}

func (c *dungeonServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dungeonServiceClient) GenerateDungeon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GenerateDungeonMethod, in, opts)
}

func (c *dungeonServiceClient) GetDungeon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetDungeonMethod, in, opts)
}

func (c *dungeonServiceClient) DeleteDungeon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DeleteDungeonMethod, in, opts)
}

func (c *dungeonServiceClient) RenderDungeon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RenderDungeonMethod, in, opts)
}
