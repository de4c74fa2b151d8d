package natsutil

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// fakeConn routes messages in-process. Requests are delivered synchronously
// to the subscriber and the first message published on the reply subject
// is returned.
type fakeConn struct {
	mu        sync.Mutex
	handlers  map[string]nats.MsgHandler
	queues    map[string]string
	published []*nats.Msg
}

func newFakeConn() *fakeConn {
	return &fakeConn{handlers: map[string]nats.MsgHandler{}, queues: map[string]string{}}
}

func (c *fakeConn) PublishMsg(m *nats.Msg) error {
	c.mu.Lock()
	c.published = append(c.published, m)
	h := c.handlers[m.Subject]
	c.mu.Unlock()
	if h != nil {
		h(m)
	}
	return nil
}

func (c *fakeConn) RequestMsgWithContext(_ context.Context, m *nats.Msg) (*nats.Msg, error) {
	c.mu.Lock()
	h := c.handlers[m.Subject]
	c.mu.Unlock()
	if h == nil {
		return nil, nats.ErrNoResponders
	}
	m.Reply = "_INBOX.test"
	h(m)
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.published {
		if p.Subject == m.Reply {
			return p, nil
		}
	}
	return nil, nats.ErrTimeout
}

func (c *fakeConn) Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[subject] = cb
	return &nats.Subscription{Subject: subject}, nil
}

func (c *fakeConn) QueueSubscribe(subject, queue string, cb nats.MsgHandler) (*nats.Subscription, error) {
	c.queues[subject] = queue
	return c.Subscribe(subject, cb)
}

type decodeReq struct {
	VIN string `json:"vin"`
}

type decodeResp struct {
	Model string `json:"model"`
}

func TestHeaderCarrier(t *testing.T) {
	msg := &nats.Msg{}
	c := (*headerCarrier)(msg)
	assert.Equal(t, "", c.Get("traceparent"))
	assert.Nil(t, c.Keys())

	c.Set("traceparent", "00-abc-def-01")
	assert.Equal(t, "00-abc-def-01", c.Get("traceparent"))
	assert.Len(t, c.Keys(), 1)
}

func TestPublishSubscribe(t *testing.T) {
	nc := newFakeConn()
	var got []decodeResp
	_, err := Subscribe(nc, "vin.decoded", func(_ context.Context, v decodeResp) {
		got = append(got, v)
	})
	require.NoError(t, err)

	require.NoError(t, Publish(context.Background(), nc, "vin.decoded", decodeResp{Model: "Accord"}))
	require.NoError(t, nc.PublishMsg(&nats.Msg{Subject: "vin.decoded", Data: []byte("{bad")}))

	assert.Equal(t, []decodeResp{{Model: "Accord"}}, got)
}

func TestPublishPropagatesTrace(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled,
	}))

	nc := newFakeConn()
	var seen trace.SpanContext
	_, err := Subscribe(nc, "vin.decoded", func(ctx context.Context, _ decodeResp) {
		seen = trace.SpanContextFromContext(ctx)
	})
	require.NoError(t, err)
	require.NoError(t, Publish(ctx, nc, "vin.decoded", decodeResp{}))

	assert.Equal(t, traceID, seen.TraceID())
	assert.NotEmpty(t, nc.published[0].Header.Get("traceparent"))
}

func TestRequestRespond(t *testing.T) {
	nc := newFakeConn()
	_, err := Respond(nc, "vin.decode", "decoders", func(_ context.Context, r decodeReq) (decodeResp, error) {
		if r.VIN == "" {
			return decodeResp{}, errors.New("vin required")
		}
		return decodeResp{Model: "Accord"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "decoders", nc.queues["vin.decode"])

	got, err := Request[decodeReq, decodeResp](context.Background(), nc, "vin.decode", decodeReq{VIN: "1HGCM82633A123456"})
	require.NoError(t, err)
	assert.Equal(t, "Accord", got.Model)
}

func TestRequestRemoteError(t *testing.T) {
	nc := newFakeConn()
	_, err := Respond(nc, "vin.decode", "", func(context.Context, decodeReq) (decodeResp, error) {
		return decodeResp{}, errors.New("vin required")
	})
	require.NoError(t, err)

	_, err = Request[decodeReq, decodeResp](context.Background(), nc, "vin.decode", decodeReq{})
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, "vin required", remote.Message)
	assert.Equal(t, "vin.decode: vin required", remote.Error())
}

func TestRespondMalformedRequest(t *testing.T) {
	nc := newFakeConn()
	_, err := Respond(nc, "vin.decode", "", func(context.Context, decodeReq) (decodeResp, error) {
		t.Fatal("handler must not run")
		return decodeResp{}, nil
	})
	require.NoError(t, err)

	reply, err := nc.RequestMsgWithContext(context.Background(), &nats.Msg{Subject: "vin.decode", Data: []byte("nope")})
	require.NoError(t, err)
	assert.Equal(t, "malformed request", reply.Header.Get(ErrorHeader))
	var body map[string]string
	require.NoError(t, json.Unmarshal(reply.Data, &body))
	assert.Equal(t, "malformed request", body["error"])
}

func TestRequestNoResponders(t *testing.T) {
	_, err := Request[decodeReq, decodeResp](context.Background(), newFakeConn(), "vin.decode", decodeReq{})
	assert.ErrorIs(t, err, nats.ErrNoResponders)
}
