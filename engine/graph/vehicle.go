package graph

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/WessleyAI/wessley-vin/engine/decoder"
	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/vin"
)

// Read limits.
const (
	maxTopMakes = 100
	maxVINs     = 1000
)

// Make is a manufacturer node.
type Make struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VehicleModel is a model produced by a make.
type VehicleModel struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	MakeID string `json:"make_id"`
}

// ModelYear is one year of a make/model.
type ModelYear struct {
	ID    string `json:"id"`
	Year  int    `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
}

// MakeStats summarizes what has been decoded for one make.
type MakeStats struct {
	Name   string `json:"name"`
	Models int64  `json:"models"`
	VINs   int64  `json:"vins"`
}

// VehicleInfo names a make/model/year.
type VehicleInfo struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

func slug(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}

// IDs returns the node ids for vi.
func (vi VehicleInfo) IDs() (makeID, modelID, modelYearID string) {
	makeID = slug(vi.Make)
	modelID = makeID + "-" + slug(vi.Model)
	modelYearID = fmt.Sprintf("%s-%d", modelID, vi.Year)
	return
}

// Complete reports whether vi names a concrete vehicle.
func (vi VehicleInfo) Complete() bool {
	return vi.Make != "" && vi.Make != domain.Unknown &&
		vi.Model != "" && vi.Model != domain.Unknown && vi.Year > 0
}

const (
	mergeMake = `MERGE (mk:Make {id: $id}) SET mk.name = $name`

	mergeModel = `MERGE (m:VehicleModel {id: $id}) SET m.name = $name, m.make_id = $makeID
WITH m
MATCH (mk:Make {id: $makeID})
MERGE (mk)-[:HAS_MODEL]->(m)`

	mergeModelYear = `MERGE (my:ModelYear {id: $id}) SET my.year = $year, my.make = $make, my.model = $model
WITH my
MATCH (m:VehicleModel {id: $modelID})
MERGE (my)-[:OF_MODEL]->(m)`

	mergeVIN = `MERGE (v:VIN {vin: $vin})
SET v.make = $make, v.model = $model, v.year = $year, v.trim = $trim, v.plant = $plant,
    v.confidence = $confidence, v.source = $source, v.updated_at = $updatedAt`

	linkVIN = `MATCH (v:VIN {vin: $vin}), (my:ModelYear {id: $modelYearID})
OPTIONAL MATCH (v)-[old:IS_A]->(prev:ModelYear) WHERE prev.id <> $modelYearID
DELETE old
MERGE (v)-[:IS_A]->(my)`
)

func ensureHierarchy(ctx context.Context, tx CypherRunner, vi VehicleInfo) error {
	makeID, modelID, myID := vi.IDs()
	if _, err := tx.Run(ctx, mergeMake, map[string]any{"id": makeID, "name": vi.Make}); err != nil {
		return err
	}
	if _, err := tx.Run(ctx, mergeModel, map[string]any{"id": modelID, "name": vi.Model, "makeID": makeID}); err != nil {
		return err
	}
	_, err := tx.Run(ctx, mergeModelYear, map[string]any{
		"id": myID, "year": vi.Year, "make": vi.Make, "model": vi.Model, "modelID": modelID,
	})
	return err
}

// SaveIdentity upserts the VIN node for id. When make, model and year are
// all resolved the hierarchy is ensured and the VIN linked to its model year
// in the same transaction.
func (g *GraphStore) SaveIdentity(ctx context.Context, id decoder.Identity, at time.Time) error {
	vi := VehicleInfo{Make: id.Make, Model: id.Model}
	var year any
	if id.Year != nil {
		vi.Year = *id.Year
		year = *id.Year
	}
	var trim any
	if id.Trim != nil {
		trim = *id.Trim
	}
	var plant any
	if v, err := vin.Parse(id.VIN); err == nil {
		plant = string(v.PlantCode())
	}

	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	_, err := sess.ExecuteWrite(ctx, func(tx CypherRunner) (any, error) {
		if _, err := tx.Run(ctx, mergeVIN, map[string]any{
			"vin": id.VIN, "make": id.Make, "model": id.Model, "year": year, "trim": trim, "plant": plant,
			"confidence": string(id.Confidence), "source": string(id.Source),
			"updatedAt": at.UTC().Format(time.RFC3339),
		}); err != nil {
			return nil, err
		}
		if !vi.Complete() {
			return nil, nil
		}
		if err := ensureHierarchy(ctx, tx, vi); err != nil {
			return nil, err
		}
		_, _, myID := vi.IDs()
		_, err := tx.Run(ctx, linkVIN, map[string]any{"vin": id.VIN, "modelYearID": myID})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("graph: save %s: %w", id.VIN, err)
	}
	return nil
}

// GetVehicleHierarchy returns the nodes for vi, or domain.ErrNotFound.
func (g *GraphStore) GetVehicleHierarchy(ctx context.Context, vi VehicleInfo) (Make, VehicleModel, ModelYear, error) {
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	makeID, modelID, myID := vi.IDs()
	cypher := `MATCH (mk:Make {id: $makeID})-[:HAS_MODEL]->(m:VehicleModel {id: $modelID})<-[:OF_MODEL]-(my:ModelYear {id: $myID})
RETURN mk, m, my`
	result, err := sess.Run(ctx, cypher, map[string]any{"makeID": makeID, "modelID": modelID, "myID": myID})
	if err != nil {
		return Make{}, VehicleModel{}, ModelYear{}, fmt.Errorf("graph: hierarchy: %w", err)
	}
	if !result.Next(ctx) {
		return Make{}, VehicleModel{}, ModelYear{},
			fmt.Errorf("graph: %s %s %d: %w", vi.Make, vi.Model, vi.Year, domain.ErrNotFound)
	}

	rec := result.Record()
	mkVal, _ := rec.Get("mk")
	mVal, _ := rec.Get("m")
	myVal, _ := rec.Get("my")
	return Make{ID: strProp(mkVal, "id"), Name: strProp(mkVal, "name")},
		VehicleModel{ID: strProp(mVal, "id"), Name: strProp(mVal, "name"), MakeID: strProp(mVal, "make_id")},
		ModelYear{ID: strProp(myVal, "id"), Year: intProp(myVal, "year"), Make: strProp(myVal, "make"), Model: strProp(myVal, "model")},
		nil
}

// VINsFor lists the VINs linked to vi's model year.
func (g *GraphStore) VINsFor(ctx context.Context, vi VehicleInfo, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > maxVINs {
		limit = maxVINs
	}
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	_, _, myID := vi.IDs()
	result, err := sess.Run(ctx,
		`MATCH (v:VIN)-[:IS_A]->(:ModelYear {id: $id}) RETURN v.vin AS vin ORDER BY vin LIMIT $limit`,
		map[string]any{"id": myID, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("graph: vins: %w", err)
	}
	var out []string
	for result.Next(ctx) {
		if v, ok := result.Record().Get("vin"); ok {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

// TopMakes returns the makes with the most decoded VINs.
func (g *GraphStore) TopMakes(ctx context.Context, limit int) ([]MakeStats, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > maxTopMakes {
		limit = maxTopMakes
	}
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	cypher := `MATCH (mk:Make)
OPTIONAL MATCH (mk)-[:HAS_MODEL]->(m:VehicleModel)
OPTIONAL MATCH (v:VIN)-[:IS_A]->(:ModelYear)-[:OF_MODEL]->(m)
RETURN mk.name AS name, count(DISTINCT m) AS models, count(DISTINCT v) AS vins
ORDER BY vins DESC, name LIMIT $limit`
	result, err := sess.Run(ctx, cypher, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("graph: top makes: %w", err)
	}
	var out []MakeStats
	for result.Next(ctx) {
		rec := result.Record()
		var st MakeStats
		if v, ok := rec.Get("name"); ok {
			st.Name, _ = v.(string)
		}
		if v, ok := rec.Get("models"); ok {
			st.Models, _ = v.(int64)
		}
		if v, ok := rec.Get("vins"); ok {
			st.VINs, _ = v.(int64)
		}
		out = append(out, st)
	}
	return out, nil
}
