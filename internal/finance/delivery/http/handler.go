package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/indago/supply-chain/internal/finance/domain"
	"github.com/indago/supply-chain/internal/finance/usecase/command"
	"github.com/indago/supply-chain/internal/finance/usecase/query"
	"github.com/indago/supply-chain/pkg/logger"
)

// FinanceHandler handles HTTP requests for purchase approval and the
// decision ledger
type FinanceHandler struct {
	// Command handlers
	evaluateHandler *command.EvaluatePurchaseHandler

	// Query handlers
	historyHandler *query.GetHistoryHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	decisions      *prometheus.CounterVec
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(
	evaluateHandler *command.EvaluatePurchaseHandler,
	historyHandler *query.GetHistoryHandler,
) *FinanceHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_service_requests_total",
			Help: "Total number of requests to finance service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "finance_service_request_duration_seconds",
			Help:    "Duration of finance service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	decisions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_service_decisions_total",
			Help: "Purchase request decisions by status",
		},
		[]string{"status"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(decisions)

	return &FinanceHandler{
		evaluateHandler: evaluateHandler,
		historyHandler:  historyHandler,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		decisions:       decisions,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ProcessPurchaseRequest handles POST /api/purchase-requests. Approved
// requests answer 201, rejected ones 403; both are recorded in the ledger.
func (h *FinanceHandler) ProcessPurchaseRequest(w http.ResponseWriter, r *http.Request) {
	defer h.observe("POST", "/api/purchase-requests", time.Now())

	var cmd command.EvaluatePurchaseCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.respondJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	request, err := h.evaluateHandler.Handle(cmd)
	if err != nil {
		logger.Warn(r.Context()).Err(err).Str("order_id", cmd.OrderID).Msg("Rejected malformed purchase request")
		h.respondJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.decisions.WithLabelValues(request.Status).Inc()

	logger.Info(r.Context()).
		Str("order_id", request.OrderID).
		Str("item", request.ItemName).
		Float64("estimated_cost", request.EstimatedCost).
		Str("status", request.Status).
		Msg("Purchase request decided")

	status := http.StatusCreated
	if request.Status == domain.StatusRejected {
		status = http.StatusForbidden
	}

	h.respondJSON(w, r, status, Response{
		Success: request.Status == domain.StatusApproved,
		Message: "Purchase request " + request.Status,
		Data:    request,
	})
}

// GetHistory handles GET /api/finance/history
func (h *FinanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/finance/history", time.Now())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	requests, err := h.historyHandler.Handle(query.GetHistoryQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list purchase history")
		h.respondJSON(w, r, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list purchase history",
		})
		return
	}

	h.respondJSON(w, r, http.StatusOK, Response{
		Success: true,
		Data:    requests,
	})
}

// RegisterRoutes registers all finance routes
func (h *FinanceHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/purchase-requests", h.ProcessPurchaseRequest).Methods("POST")
	router.HandleFunc("/api/finance/history", h.GetHistory).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *FinanceHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			h.respondJSON(w, r, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		h.respondJSON(w, r, http.StatusOK, Response{
			Success: true,
			Message: "Finance service is healthy",
		})
	}).Methods("GET")
}

func (h *FinanceHandler) observe(method, endpoint string, start time.Time) {
	h.requestLatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
}

// respondJSON sends a JSON response and records the request metric
func (h *FinanceHandler) respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	h.requestCounter.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
