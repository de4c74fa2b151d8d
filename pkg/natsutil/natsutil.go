// Package natsutil provides typed JSON publish, subscribe and request/reply
// helpers over NATS with OpenTelemetry trace propagation.
package natsutil

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
)

// ErrorHeader marks a reply whose body is an error rather than a response.
const ErrorHeader = "Wessley-Error"

// Conn is the subset of *nats.Conn these helpers use.
type Conn interface {
	PublishMsg(*nats.Msg) error
	RequestMsgWithContext(context.Context, *nats.Msg) (*nats.Msg, error)
	Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error)
	QueueSubscribe(subject, queue string, cb nats.MsgHandler) (*nats.Subscription, error)
}

// RemoteError is returned by Request when the responder replied with an
// error.
type RemoteError struct {
	Subject string
	Message string
}

func (e *RemoteError) Error() string { return e.Subject + ": " + e.Message }

// headerCarrier adapts nats.Msg headers for an OTel TextMapCarrier.
type headerCarrier nats.Msg

func (c *headerCarrier) Get(key string) string {
	if c.Header == nil {
		return ""
	}
	return c.Header.Get(key)
}

func (c *headerCarrier) Set(key, val string) {
	if c.Header == nil {
		c.Header = make(nats.Header)
	}
	c.Header.Set(key, val)
}

func (c *headerCarrier) Keys() []string {
	if c.Header == nil {
		return nil
	}
	keys := make([]string, 0, len(c.Header))
	for k := range c.Header {
		keys = append(keys, k)
	}
	return keys
}

func newMsg(ctx context.Context, subject string, v any) (*nats.Msg, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	msg := &nats.Msg{Subject: subject, Data: data}
	otel.GetTextMapPropagator().Inject(ctx, (*headerCarrier)(msg))
	return msg, nil
}

func contextOf(msg *nats.Msg) context.Context {
	return otel.GetTextMapPropagator().Extract(context.Background(), (*headerCarrier)(msg))
}

// Publish sends v as JSON on subject.
func Publish[T any](ctx context.Context, nc Conn, subject string, v T) error {
	msg, err := newMsg(ctx, subject, v)
	if err != nil {
		return err
	}
	return nc.PublishMsg(msg)
}

// Subscribe decodes each message on subject as T. Malformed messages are
// dropped.
func Subscribe[T any](nc Conn, subject string, handler func(context.Context, T)) (*nats.Subscription, error) {
	return nc.Subscribe(subject, func(msg *nats.Msg) {
		var v T
		if err := json.Unmarshal(msg.Data, &v); err != nil {
			return
		}
		handler(contextOf(msg), v)
	})
}

// Request sends req and decodes the reply. The deadline comes from ctx.
func Request[Req, Resp any](ctx context.Context, nc Conn, subject string, req Req) (Resp, error) {
	var zero Resp
	msg, err := newMsg(ctx, subject, req)
	if err != nil {
		return zero, err
	}
	reply, err := nc.RequestMsgWithContext(ctx, msg)
	if err != nil {
		return zero, err
	}
	if e := reply.Header.Get(ErrorHeader); e != "" {
		return zero, &RemoteError{Subject: subject, Message: e}
	}
	var out Resp
	if err := json.Unmarshal(reply.Data, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Respond answers requests on subject. A non-empty queue load-balances
// across responders. Malformed requests and handler errors are answered
// with ErrorHeader set and an {"error": "..."} body.
func Respond[Req, Resp any](nc Conn, subject, queue string, handler func(context.Context, Req) (Resp, error)) (*nats.Subscription, error) {
	cb := func(msg *nats.Msg) {
		if msg.Reply == "" {
			return
		}
		ctx := contextOf(msg)
		var req Req
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			replyError(ctx, nc, msg.Reply, errors.New("malformed request"))
			return
		}
		resp, err := handler(ctx, req)
		if err != nil {
			replyError(ctx, nc, msg.Reply, err)
			return
		}
		out, err := newMsg(ctx, msg.Reply, resp)
		if err != nil {
			replyError(ctx, nc, msg.Reply, err)
			return
		}
		_ = nc.PublishMsg(out)
	}
	if queue == "" {
		return nc.Subscribe(subject, cb)
	}
	return nc.QueueSubscribe(subject, queue, cb)
}

func replyError(ctx context.Context, nc Conn, reply string, err error) {
	msg, _ := newMsg(ctx, reply, map[string]string{"error": err.Error()})
	if msg == nil {
		return
	}
	(*headerCarrier)(msg).Set(ErrorHeader, err.Error())
	_ = nc.PublishMsg(msg)
}
