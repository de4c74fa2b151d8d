// Package grpcjson lets plain Go structs travel over gRPC by registering a
// JSON codec and building service descriptors by hand, so no generated
// protobuf code is needed.
package grpcjson

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// Name is the codec name and the content subtype clients must request.
const Name = "json"

type codec struct{}

func (codec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (codec) Name() string                       { return Name }

func init() {
	encoding.RegisterCodec(codec{})
}

// Method is one unary method of a service.
type Method struct {
	Name    string
	handler func(service string) grpc.MethodHandler
}

// Unary adapts a typed handler to a gRPC method.
func Unary[Req, Resp any](name string, h func(context.Context, *Req) (*Resp, error)) Method {
	return Method{
		Name: name,
		handler: func(service string) grpc.MethodHandler {
			full := "/" + service + "/" + name
			return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				in := new(Req)
				if err := dec(in); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return h(ctx, in)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
				return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
					return h(ctx, req.(*Req))
				})
			}
		},
	}
}

// Register adds a service named service (for example
// "wessley.vin.v1.Decoder") to s.
func Register(s grpc.ServiceRegistrar, service string, impl any, methods ...Method) {
	desc := &grpc.ServiceDesc{
		ServiceName: service,
		HandlerType: (*any)(nil),
		Metadata:    service,
	}
	for _, m := range methods {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: m.Name,
			Handler:    m.handler(service),
		})
	}
	s.RegisterService(desc, impl)
}

// Invoke calls a unary method registered with Register.
func Invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, req *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(Name)}, opts...)
	if err := cc.Invoke(ctx, "/"+service+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
