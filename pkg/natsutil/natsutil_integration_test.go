//go:build integration

package natsutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectNATS(t *testing.T) *nats.Conn {
	t.Helper()
	url := os.Getenv("NATS_URL")
	if url == "" {
		url = nats.DefaultURL
	}
	nc, err := nats.Connect(url)
	require.NoError(t, err)
	t.Cleanup(nc.Close)
	return nc
}

func TestNATS_RequestRespond(t *testing.T) {
	nc := connectNATS(t)

	sub, err := Respond(nc, "integ.vin.decode", "integ", func(_ context.Context, r decodeReq) (decodeResp, error) {
		return decodeResp{Model: r.VIN}, nil
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	got, err := Request[decodeReq, decodeResp](ctx, nc, "integ.vin.decode", decodeReq{VIN: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", got.Model)
}
