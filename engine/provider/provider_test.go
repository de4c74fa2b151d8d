package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/vin"
	"github.com/WessleyAI/wessley-vin/pkg/fn"
	"github.com/WessleyAI/wessley-vin/pkg/metrics"
	"github.com/WessleyAI/wessley-vin/pkg/resilience"
)

var accord = vin.MustParse("1HGCM82633A123456")

const vpicAccord = `{"Count":1,"Message":"Results returned successfully","SearchCriteria":"VIN:1HGCM82633A123456",
"Results":[{"Make":"HONDA","Model":"Accord","ModelYear":"2003","Manufacturer":"AMERICAN HONDA MOTOR CO., INC.",
"Trim":"","Series":"EX","VehicleType":"PASSENGER CAR","BodyClass":"Sedan/Saloon","ErrorCode":"0"}]}`

var noRetry = fn.RetryOpts{MaxAttempts: 1}

func TestNHTSAFetch(t *testing.T) {
	var path, ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path + "?" + r.URL.RawQuery
		ua = r.UserAgent()
		w.Write([]byte(vpicAccord))
	}))
	defer srv.Close()

	ext, err := NewNHTSA(srv.URL+"/", srv.Client()).Fetch(context.Background(), accord)
	require.NoError(t, err)
	assert.Equal(t, "/vehicles/DecodeVinValues/1HGCM82633A123456?format=json", path)
	assert.Equal(t, userAgent, ua)
	assert.Equal(t, &domain.ExternalVehicle{
		Make:         "HONDA",
		Model:        "Accord",
		Year:         2003,
		Manufacturer: "AMERICAN HONDA MOTOR CO., INC.",
		Trim:         "EX",
		VehicleType:  "PASSENGER CAR",
		BodyClass:    "Sedan/Saloon",
		Provider:     "nhtsa",
	}, ext)
}

func TestNHTSAEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Count":1,"Results":[{"Make":"","Model":"","ModelYear":""}]}`))
	}))
	defer srv.Close()

	ext, err := NewNHTSA(srv.URL, srv.Client()).Fetch(context.Background(), accord)
	require.NoError(t, err)
	assert.Nil(t, ext)
}

func TestCommercialFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "/vin/1HGCM82633A123456", r.URL.Path)
		w.Write([]byte(`{"vin":"1HGCM82633A123456","vehicle":{"make":"Honda","model":"Accord","year":2003,"trim":"EX-L"}}`))
	}))
	defer srv.Close()

	ext, err := NewCommercial("", srv.URL, "secret", srv.Client()).Fetch(context.Background(), accord)
	require.NoError(t, err)
	assert.Equal(t, "Honda", ext.Make)
	assert.Equal(t, 2003, ext.Year)
	assert.Equal(t, "EX-L", ext.Trim)
	assert.Equal(t, "commercial", ext.Provider)

	_, err = NewCommercial("carapi", srv.URL, "wrong", srv.Client()).Fetch(context.Background(), accord)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.False(t, Retryable(err))
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestFetchStatusHandling(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantNil bool
		wantErr bool
		retry   bool
	}{
		{"not found", http.StatusNotFound, "", true, false, false},
		{"rate limited", http.StatusTooManyRequests, "", true, true, true},
		{"server error", http.StatusBadGateway, "", true, true, true},
		{"bad json", http.StatusOK, "{", true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			ext, err := NewNHTSA(srv.URL, srv.Client()).Fetch(context.Background(), accord)
			assert.Equal(t, tt.wantNil, ext == nil)
			assert.Equal(t, tt.wantErr, err != nil)
			if err != nil {
				assert.Equal(t, tt.retry, Retryable(err))
			}
		})
	}
}

type stubProvider struct {
	name  string
	ext   *domain.ExternalVehicle
	err   error
	delay time.Duration
	calls atomic.Int32
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Fetch(ctx context.Context, _ vin.VIN) (*domain.ExternalVehicle, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.ext, s.err
}

func TestCollectMergesInPriorityOrder(t *testing.T) {
	first := &stubProvider{name: "first", ext: &domain.ExternalVehicle{Make: "Honda", Model: "Civic/Accord", Provider: "first"}}
	second := &stubProvider{name: "second", ext: &domain.ExternalVehicle{Make: "HONDA", Model: "Accord", Year: 2003, Trim: "EX", Provider: "second"}}

	c := NewCollector([]Provider{first, second}, WithRetry(noRetry), WithLogger(zaptest.NewLogger(t)))
	got := c.Collect(context.Background(), accord)
	require.NotNil(t, got)
	assert.Equal(t, "Honda", got.Make)
	assert.Equal(t, "Civic/Accord", got.Model)
	assert.Equal(t, 2003, got.Year)
	assert.Equal(t, "EX", got.Trim)
	assert.Equal(t, "first", got.Provider)
	assert.Equal(t, "Civic/Accord", first.ext.Model, "provider data must not be mutated")
	assert.Equal(t, []string{"first", "second"}, c.Providers())
}

func TestCollectDegradesToNil(t *testing.T) {
	m := metrics.New()
	failing := &stubProvider{name: "down", err: errors.New("connection refused")}
	empty := &stubProvider{name: "empty", ext: &domain.ExternalVehicle{}}
	slow := &stubProvider{name: "slow", ext: &domain.ExternalVehicle{Make: "Honda"}, delay: time.Second}

	c := NewCollector([]Provider{failing, empty, slow},
		WithRetry(noRetry), WithTimeout(20*time.Millisecond), WithMetrics(m))
	assert.Nil(t, c.Collect(context.Background(), accord))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderCalls.WithLabelValues("down", OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderCalls.WithLabelValues("empty", OutcomeEmpty)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderCalls.WithLabelValues("slow", OutcomeError)))
}

func TestCollectNoProviders(t *testing.T) {
	var c *Collector
	assert.Nil(t, c.Collect(context.Background(), accord))
	assert.Nil(t, NewCollector(nil).Collect(context.Background(), accord))
}

func TestCollectRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(vpicAccord))
	}))
	defer srv.Close()

	c := NewCollector([]Provider{NewNHTSA(srv.URL, srv.Client())},
		WithRetry(fn.RetryOpts{MaxAttempts: 3, InitialWait: time.Millisecond}))
	got := c.Collect(context.Background(), accord)
	require.NotNil(t, got)
	assert.Equal(t, "Accord", got.Model)
	assert.Equal(t, int32(3), hits.Load())
}

func TestCollectDoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewCollector([]Provider{NewCommercial("", srv.URL, "k", srv.Client())},
		WithRetry(fn.RetryOpts{MaxAttempts: 3, InitialWait: time.Millisecond}))
	assert.Nil(t, c.Collect(context.Background(), accord))
	assert.Equal(t, int32(1), hits.Load())
}

func TestCollectBreakerOpens(t *testing.T) {
	m := metrics.New()
	down := &stubProvider{name: "down", err: errors.New("boom")}
	var transitions []resilience.State

	c := NewCollector([]Provider{down},
		WithRetry(noRetry),
		WithMetrics(m),
		WithBreaker(resilience.BreakerOpts{
			FailThreshold: 2,
			Timeout:       time.Hour,
			OnStateChange: func(_ string, _, to resilience.State) { transitions = append(transitions, to) },
		}))

	for range 4 {
		assert.Nil(t, c.Collect(context.Background(), accord))
	}
	assert.Equal(t, int32(2), down.calls.Load())
	assert.Equal(t, []resilience.State{resilience.StateOpen}, transitions)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProviderCalls.WithLabelValues("down", OutcomeOpen)))
	assert.Equal(t, float64(resilience.StateOpen), testutil.ToFloat64(m.BreakerState.WithLabelValues("down")))
}
