package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/graph"
	"github.com/WessleyAI/wessley-vin/engine/lookup"
	"github.com/WessleyAI/wessley-vin/engine/store"
	"github.com/WessleyAI/wessley-vin/engine/vin"
)

// maxBody caps POST bodies.
const maxBody = 64 << 10

type historyReader interface {
	Latest(ctx context.Context, vin string) (store.Record, error)
	History(ctx context.Context, vin string, limit int) ([]store.Record, error)
}

type statsReader interface {
	TopMakes(ctx context.Context, limit int) ([]graph.MakeStats, error)
	GetVehicleHierarchy(ctx context.Context, vi graph.VehicleInfo) (graph.Make, graph.VehicleModel, graph.ModelYear, error)
	VINsFor(ctx context.Context, vi graph.VehicleInfo, limit int) ([]string, error)
}

// vehicleView is the answer to GET /api/vehicles/{make}/{model}/{year}.
// VINs are masked.
type vehicleView struct {
	Make      graph.Make         `json:"make"`
	Model     graph.VehicleModel `json:"model"`
	ModelYear graph.ModelYear    `json:"modelYear"`
	VINs      []string           `json:"vins"`
}

// server holds the HTTP handlers. history and stats may be nil.
type server struct {
	svc     *lookup.Service
	history historyReader
	stats   statsReader
	log     *zap.Logger
}

func (s *server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("GET /api/vin/{vin}", s.handleGet)
	mux.HandleFunc("POST /api/vin/decode", s.handleDecode)
	if s.history != nil {
		mux.HandleFunc("GET /api/vin/{vin}/history", s.handleHistory)
		mux.HandleFunc("GET /api/vin/{vin}/latest", s.handleLatest)
	}
	if s.stats != nil {
		mux.HandleFunc("GET /api/stats/makes", s.handleTopMakes)
		mux.HandleFunc("GET /api/vehicles/{make}/{model}/{year}", s.handleVehicle)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGet serves GET /api/vin/{vin}. Query flags: public masks the serial,
// offline skips providers, refresh bypasses the cache.
func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := s.svc.Lookup(r.Context(), r.PathValue("vin"), lookup.Options{
		SkipProviders: boolParam(q.Get("offline")),
		Refresh:       boolParam(q.Get("refresh")),
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	if boolParam(q.Get("public")) {
		out = lookup.PublicView(out)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req lookup.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := s.svc.Handle(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleHistory(w http.ResponseWriter, r *http.Request) {
	v, err := vin.Parse(vin.Normalize(r.PathValue("vin")))
	if err != nil {
		s.fail(w, err)
		return
	}
	recs, err := s.history.History(r.Context(), v.String(), limitParam(r, store.MaxHistoryLimit))
	if err != nil {
		s.fail(w, err)
		return
	}
	if recs == nil {
		recs = []store.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *server) handleLatest(w http.ResponseWriter, r *http.Request) {
	v, err := vin.Parse(vin.Normalize(r.PathValue("vin")))
	if err != nil {
		s.fail(w, err)
		return
	}
	rec, err := s.history.Latest(r.Context(), v.String())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *server) handleTopMakes(w http.ResponseWriter, r *http.Request) {
	top, err := s.stats.TopMakes(r.Context(), limitParam(r, maxLimit))
	if err != nil {
		s.fail(w, err)
		return
	}
	if top == nil {
		top = []graph.MakeStats{}
	}
	writeJSON(w, http.StatusOK, top)
}

func (s *server) handleVehicle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < domain.MinModelYear {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}
	vi := graph.VehicleInfo{Make: r.PathValue("make"), Model: r.PathValue("model"), Year: year}
	mk, model, my, err := s.stats.GetVehicleHierarchy(r.Context(), vi)
	if err != nil {
		s.fail(w, err)
		return
	}
	vins, err := s.stats.VINsFor(r.Context(), vi, limitParam(r, maxLimit))
	if err != nil {
		s.fail(w, err)
		return
	}
	view := vehicleView{Make: mk, Model: model, ModelYear: my, VINs: make([]string, 0, len(vins))}
	for _, v := range vins {
		view.VINs = append(view.VINs, lookup.MaskVIN(v))
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidVIN):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		s.log.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// maxLimit caps ?limit= on list endpoints.
const maxLimit = 100

// limitParam reads ?limit=. Missing or invalid values give 0, which the
// readers treat as their default; larger values are clamped to ceiling.
func limitParam(r *http.Request, ceiling int) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n < 0 {
		return 0
	}
	return min(n, ceiling)
}

func boolParam(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
