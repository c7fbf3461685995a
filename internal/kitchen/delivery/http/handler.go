package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/indago/supply-chain/internal/kitchen/domain"
	"github.com/indago/supply-chain/internal/kitchen/usecase/command"
	"github.com/indago/supply-chain/internal/kitchen/usecase/query"
	"github.com/indago/supply-chain/pkg/logger"
)

// KitchenHandler handles HTTP requests for production planning
type KitchenHandler struct {
	// Command handlers
	runHandler *command.RunProductionHandler

	// Query handlers
	getBatchHandler *query.GetBatchHandler

	runCounter  *prometheus.CounterVec
	runDuration prometheus.Histogram
}

// NewKitchenHandler creates a new kitchen handler
func NewKitchenHandler(
	runHandler *command.RunProductionHandler,
	getBatchHandler *query.GetBatchHandler,
) *KitchenHandler {
	runCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kitchen_service_production_runs_total",
			Help: "Total number of production runs by terminal outcome",
		},
		[]string{"outcome"},
	)

	runDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kitchen_service_production_run_duration_seconds",
			Help:    "Duration of production runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	prometheus.MustRegister(runCounter)
	prometheus.MustRegister(runDuration)

	return &KitchenHandler{
		runHandler:      runHandler,
		getBatchHandler: getBatchHandler,
		runCounter:      runCounter,
		runDuration:     runDuration,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RunProduction handles POST /api/production/run
func (h *KitchenHandler) RunProduction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req struct {
		Date string `json:"date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Date == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "date is required (YYYY-MM-DD)",
		})
		return
	}

	result, err := h.runHandler.Handle(r.Context(), command.RunProductionCommand{Date: req.Date})
	h.runDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			logger.Error(r.Context()).Err(err).Str("date", req.Date).Msg("Production run failed upstream")
			h.runCounter.WithLabelValues("upstream_error").Inc()
			respondJSON(w, http.StatusBadGateway, Response{
				Success: false,
				Error:   err.Error(),
			})
			return
		}

		logger.Error(r.Context()).Err(err).Str("date", req.Date).Msg("Production run failed")
		h.runCounter.WithLabelValues("error").Inc()
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.runCounter.WithLabelValues(string(result.Outcome)).Inc()

	if result.Outcome == domain.RunInfeasible {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Insufficient stock for production",
			Data:    result,
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: runMessage(result),
		Data:    result,
	})
}

// GetBatch handles GET /api/batch?date=
func (h *KitchenHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "date is required (YYYY-MM-DD)",
		})
		return
	}

	records, err := h.getBatchHandler.Handle(query.GetBatchQuery{Date: date})
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("date", date).Msg("Failed to read batch consumption")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to read batch consumption",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"date":        date,
			"consumption": records,
		},
	})
}

// RegisterRoutes registers all kitchen routes
func (h *KitchenHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/production/run", h.RunProduction).Methods("POST")
	router.HandleFunc("/api/batch", h.GetBatch).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *KitchenHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Kitchen service is healthy",
		})
	}).Methods("GET")
}

func runMessage(result *domain.RunResult) string {
	switch result.Outcome {
	case domain.RunCommitted:
		return "Production completed for " + result.Date + " (" + strconv.Itoa(result.InsertedCount) + " items)"
	case domain.RunNoOrders:
		return "No orders for " + result.Date
	case domain.RunNoRecipesMatched:
		return "No recipes matched the orders for " + result.Date
	default:
		return string(result.Outcome)
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
