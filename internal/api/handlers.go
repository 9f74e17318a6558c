package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/beaverbray/office-football-pool/internal/compare"
	"github.com/beaverbray/office-football-pool/internal/matching"
	"github.com/beaverbray/office-football-pool/internal/models"
	"github.com/beaverbray/office-football-pool/internal/pipeline"
	"github.com/beaverbray/office-football-pool/internal/resolve"
	"github.com/beaverbray/office-football-pool/internal/store"
)

type Handler struct {
	Orchestrator *pipeline.Orchestrator
	Resolver     resolve.TeamResolver
	Matcher      *matching.GameMatcher
	Comparer     *compare.Engine
	Odds         pipeline.OddsProvider
	Store        *store.Store // nil when persistence is disabled
	Logger       *logrus.Logger

	// DefaultThreshold applies to pipeline runs whose request does not
	// set a matching threshold.
	DefaultThreshold float64
}

func NewHandler(orch *pipeline.Orchestrator, resolver resolve.TeamResolver, matcher *matching.GameMatcher, comparer *compare.Engine, odds pipeline.OddsProvider, st *store.Store, logger *logrus.Logger) *Handler {
	return &Handler{
		Orchestrator: orch,
		Resolver:     resolver,
		Matcher:      matcher,
		Comparer:     comparer,
		Odds:         odds,
		Store:        st,
		Logger:       logger,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	r.Post("/api/pipeline/run", h.RunPipeline)
	r.Get("/api/pipeline/status/{id}", h.GetPipelineStatus)
	r.Get("/api/pipeline/results", h.ListPipelineResults)

	r.Post("/api/match-teams", h.MatchTeams)
	r.Post("/api/compare", h.Compare)
	r.Get("/api/odds", h.GetOdds)

	r.Get("/api/runs", h.ListRuns)
	r.Get("/api/runs/{id}", h.GetRun)
	r.Post("/api/runs", h.SaveRun)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// ============================================================================
// Pipeline
// ============================================================================

func (h *Handler) RunPipeline(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input  pipeline.Input  `json:"input"`
		Config pipeline.Config `json:"config"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Config.MatchThreshold == 0 {
		req.Config.MatchThreshold = h.DefaultThreshold
	}

	result, err := h.Orchestrator.Run(r.Context(), req.Input, req.Config)
	if err != nil {
		// The result still carries the stage breakdown for the client.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  err.Error(),
			"result": result,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) GetPipelineStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, ok := h.Orchestrator.GetResult(id)
	if !ok {
		http.Error(w, fmt.Sprintf("Pipeline run %s not found", id), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) ListPipelineResults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Orchestrator.AllResults())
}

// ============================================================================
// Team resolution
// ============================================================================

func (h *Handler) MatchTeams(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Teams  []string      `json:"teams"`
		League models.League `json:"league,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.Teams) == 0 {
		http.Error(w, "teams is required", http.StatusBadRequest)
		return
	}

	matches := make([]resolve.TeamMatch, len(req.Teams))
	for i, name := range req.Teams {
		matches[i] = h.Resolver.ResolveTeam(name, req.League)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"matches": matches})
}

// ============================================================================
// Comparison
// ============================================================================

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PicksheetGames []models.RawGame    `json:"picksheetGames"`
		MarketGames    []models.MarketGame `json:"marketGames"`
		Threshold      float64             `json:"threshold,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.PicksheetGames) == 0 || len(req.MarketGames) == 0 {
		http.Error(w, "picksheetGames and marketGames are required", http.StatusBadRequest)
		return
	}

	matches, err := h.Matcher.MatchGames(req.PicksheetGames, req.MarketGames, req.Threshold)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result := h.Comparer.CompareGames(req.PicksheetGames, req.MarketGames, matches)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ============================================================================
// Odds
// ============================================================================

func (h *Handler) GetOdds(w http.ResponseWriter, r *http.Request) {
	if h.Odds == nil {
		http.Error(w, "Odds API is not configured", http.StatusServiceUnavailable)
		return
	}

	games, err := h.Odds.GetMarketGames(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error fetching odds: %v", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// ============================================================================
// Persisted runs
// ============================================================================

func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		http.Error(w, "Run persistence is not configured", http.StatusServiceUnavailable)
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	runs, err := h.Store.ListRuns(r.Context(), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error listing runs: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"runs": runs})
}

func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		http.Error(w, "Run persistence is not configured", http.StatusServiceUnavailable)
		return
	}

	id := chi.URLParam(r, "id")
	rec, err := h.Store.GetRun(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, fmt.Sprintf("Run %s not found", id), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Error loading run: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

func (h *Handler) SaveRun(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		http.Error(w, "Run persistence is not configured", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		RunID   string          `json:"runId"`
		Status  string          `json:"status"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.RunID == "" || req.Status == "" || len(req.Payload) == 0 {
		http.Error(w, "runId, status and payload are required", http.StatusBadRequest)
		return
	}

	if err := h.Store.SaveRun(r.Context(), req.RunID, req.Status, req.Payload); err != nil {
		http.Error(w, fmt.Sprintf("Error saving run: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "saved"})
}
