package provider

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/vin"
)

// Commercial queries a keyed commercial decoder at {baseURL}/vin/{vin}. Its
// payload usually nests the attributes under "vehicle".
type Commercial struct {
	name    string
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewCommercial creates a commercial client authenticated with an
// x-api-key header.
func NewCommercial(name, baseURL, apiKey string, client *http.Client) *Commercial {
	if name == "" {
		name = "commercial"
	}
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &Commercial{name: name, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, client: client}
}

func (c *Commercial) Name() string { return c.name }

func (c *Commercial) Fetch(ctx context.Context, v vin.VIN) (*domain.ExternalVehicle, error) {
	h := http.Header{}
	h.Set("x-api-key", c.apiKey)
	return getJSON(ctx, c.client, c.name, c.baseURL+"/vin/"+url.PathEscape(v.String()), h)
}
