// Package provider fetches supplementary vehicle attributes from upstream
// VIN services and normalizes them into domain.ExternalVehicle.
package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/WessleyAI/wessley-vin/engine/decoder"
	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/vin"
)

const userAgent = "wessley-vin/1.0"

// maxBody caps provider responses.
const maxBody = 1 << 20

// Provider is an upstream VIN data source. Fetch returns nil, nil when the
// provider knows nothing about the VIN.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, v vin.VIN) (*domain.ExternalVehicle, error)
}

// StatusError is a non-2xx provider response.
type StatusError struct {
	Provider string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: http %d", e.Provider, e.Code)
}

func (e *StatusError) Unwrap() error { return domain.ErrProviderUnavailable }

// Retryable reports whether the same request may succeed later.
func (e *StatusError) Retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// Retryable decides whether err from a provider is worth another attempt.
func Retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Retryable()
	}
	return !errors.Is(err, context.Canceled)
}

// NewHTTPClient returns a client whose transport is traced with otelhttp.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// getJSON performs a GET and decodes the body as a provider payload.
// 404 means unknown and yields nil, nil.
func getJSON(ctx context.Context, client *http.Client, name, url string, header http.Header) (*domain.ExternalVehicle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Provider: name, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", name, err)
	}
	ext, err := decoder.ExternalFromJSON(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if ext != nil {
		ext.Provider = name
	}
	return ext, nil
}
