// Package graph records decoded vehicles in Neo4j as a
// Make -> VehicleModel -> ModelYear hierarchy with VIN nodes attached to
// their model year.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphStore writes and reads the vehicle hierarchy.
type GraphStore struct {
	opener SessionOpener
}

// New creates a store on driver. An empty database uses the server default.
func New(driver neo4j.DriverWithContext, database string) *GraphStore {
	return NewWithOpener(driverOpener{driver: driver, database: database})
}

// NewWithOpener creates a store on a custom session opener.
func NewWithOpener(o SessionOpener) *GraphStore {
	return &GraphStore{opener: o}
}

// Connect opens a driver with basic auth and verifies connectivity.
func Connect(ctx context.Context, url, user, pass string) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(url, neo4j.BasicAuth(user, pass, ""))
	if err != nil {
		return nil, fmt.Errorf("graph: driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("graph: connect %s: %w", url, err)
	}
	return driver, nil
}

// EnsureSchema creates the uniqueness constraints the MERGE statements rely on.
func (g *GraphStore) EnsureSchema(ctx context.Context) error {
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	for _, c := range []string{
		`CREATE CONSTRAINT make_id IF NOT EXISTS FOR (n:Make) REQUIRE n.id IS UNIQUE`,
		`CREATE CONSTRAINT vehicle_model_id IF NOT EXISTS FOR (n:VehicleModel) REQUIRE n.id IS UNIQUE`,
		`CREATE CONSTRAINT model_year_id IF NOT EXISTS FOR (n:ModelYear) REQUIRE n.id IS UNIQUE`,
		`CREATE CONSTRAINT vin_value IF NOT EXISTS FOR (n:VIN) REQUIRE n.vin IS UNIQUE`,
	} {
		if _, err := sess.Run(ctx, c, nil); err != nil {
			return fmt.Errorf("graph: schema: %w", err)
		}
	}
	return nil
}

// strProp extracts a string property from a node or a plain map.
func strProp(val any, key string) string {
	if s, ok := props(val)[key].(string); ok {
		return s
	}
	return ""
}

// intProp extracts an integer property from a node or a plain map.
func intProp(val any, key string) int {
	switch v := props(val)[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func props(val any) map[string]any {
	type propsHolder interface {
		GetProperties() map[string]any
	}
	switch v := val.(type) {
	case propsHolder:
		return v.GetProperties()
	case map[string]any:
		return v
	}
	return nil
}
