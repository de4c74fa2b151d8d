package provider

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/vin"
)

// DefaultNHTSABaseURL is the public vPIC API.
const DefaultNHTSABaseURL = "https://vpic.nhtsa.dot.gov/api"

// NHTSA queries the government vPIC DecodeVinValues endpoint.
type NHTSA struct {
	baseURL string
	client  *http.Client
}

// NewNHTSA creates a vPIC client. An empty baseURL uses the public API and
// a nil client a traced client without its own timeout.
func NewNHTSA(baseURL string, client *http.Client) *NHTSA {
	if baseURL == "" {
		baseURL = DefaultNHTSABaseURL
	}
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &NHTSA{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (n *NHTSA) Name() string { return "nhtsa" }

// Fetch decodes v with vPIC. vPIC answers unknown VINs with empty strings,
// which come back as nil.
func (n *NHTSA) Fetch(ctx context.Context, v vin.VIN) (*domain.ExternalVehicle, error) {
	u := n.baseURL + "/vehicles/DecodeVinValues/" + url.PathEscape(v.String()) + "?format=json"
	return getJSON(ctx, n.client, n.Name(), u, nil)
}
