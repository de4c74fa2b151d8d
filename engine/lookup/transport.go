package lookup

import (
	"context"
	"errors"

	"github.com/nats-io/nats.go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/WessleyAI/wessley-vin/engine/decoder"
	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/pkg/grpcjson"
	"github.com/WessleyAI/wessley-vin/pkg/natsutil"
)

// GRPCService is the full name of the gRPC decoder service.
const GRPCService = "wessley.vin.v1.Decoder"

// Request is the wire form of a lookup shared by HTTP, NATS and gRPC.
// External may be flat or nest the vehicle under "vehicle".
type Request struct {
	VIN           string         `json:"vin"`
	External      map[string]any `json:"external,omitempty"`
	SkipProviders bool           `json:"skipProviders,omitempty"`
	Refresh       bool           `json:"refresh,omitempty"`
}

// Options converts the wire fields.
func (r Request) Options() Options {
	return Options{
		External:      decoder.ExternalFromMap(r.External),
		SkipProviders: r.SkipProviders,
		Refresh:       r.Refresh,
	}
}

// Handle serves one wire request.
func (s *Service) Handle(ctx context.Context, req Request) (Outcome, error) {
	return s.Lookup(ctx, req.VIN, req.Options())
}

// ServeNATS answers requests on subject within queue group queue.
func (s *Service) ServeNATS(nc natsutil.Conn, subject, queue string) (*nats.Subscription, error) {
	return natsutil.Respond(nc, subject, queue, s.Handle)
}

// NATSPublisher publishes Decoded events on one subject.
type NATSPublisher struct {
	Conn    natsutil.Conn
	Subject string
}

func (p NATSPublisher) PublishDecoded(ctx context.Context, ev Decoded) error {
	return natsutil.Publish(ctx, p.Conn, p.Subject, ev)
}

// RegisterGRPC exposes s as wessley.vin.v1.Decoder/Decode.
func RegisterGRPC(r grpc.ServiceRegistrar, s *Service) {
	grpcjson.Register(r, GRPCService, s, grpcjson.Unary("Decode", s.decodeGRPC))
}

func (s *Service) decodeGRPC(ctx context.Context, req *Request) (*Outcome, error) {
	out, err := s.Handle(ctx, *req)
	if errors.Is(err, domain.ErrInvalidVIN) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &out, nil
}

// DecodeGRPC calls a remote decoder service.
func DecodeGRPC(ctx context.Context, cc grpc.ClientConnInterface, req Request) (*Outcome, error) {
	return grpcjson.Invoke[Request, Outcome](ctx, cc, GRPCService, "Decode", &req)
}
