package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/indago/supply-chain/internal/inventory/client"
	"github.com/indago/supply-chain/internal/inventory/domain"
	"github.com/indago/supply-chain/internal/inventory/usecase/command"
	"github.com/indago/supply-chain/internal/inventory/usecase/query"
	"github.com/indago/supply-chain/pkg/logger"
)

// InventoryHandler handles HTTP requests for the stock ledger and the
// procurement log
type InventoryHandler struct {
	// Command handlers
	applyHandler *command.ApplyConsumptionHandler

	// Query handlers
	listStockHandler        *query.ListStockHandler
	listProcurementsHandler *query.ListProcurementsHandler

	kitchenClient *client.KitchenClient

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	consumptionRows *prometheus.CounterVec
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	applyHandler *command.ApplyConsumptionHandler,
	listStockHandler *query.ListStockHandler,
	listProcurementsHandler *query.ListProcurementsHandler,
	kitchenClient *client.KitchenClient,
) *InventoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_service_requests_total",
			Help: "Total number of requests to inventory service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_service_request_duration_seconds",
			Help:    "Duration of inventory service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	consumptionRows := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_service_consumption_rows_total",
			Help: "Consumption rows applied to the stock ledger by outcome",
		},
		[]string{"outcome"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(consumptionRows)

	return &InventoryHandler{
		applyHandler:            applyHandler,
		listStockHandler:        listStockHandler,
		listProcurementsHandler: listProcurementsHandler,
		kitchenClient:           kitchenClient,
		requestCounter:          requestCounter,
		requestLatency:          requestLatency,
		consumptionRows:         consumptionRows,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListStock handles GET /api/stock
func (h *InventoryHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/stock", time.Now())

	items, err := h.listStockHandler.Handle(r.Context(), query.ListStockQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list stock")
		h.respondJSON(w, r, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list stock",
		})
		return
	}

	h.respondJSON(w, r, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// ApplyConsumption handles POST /api/consumption
func (h *InventoryHandler) ApplyConsumption(w http.ResponseWriter, r *http.Request) {
	defer h.observe("POST", "/api/consumption", time.Now())

	var req struct {
		Rows []domain.ConsumptionRow `json:"rows"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if len(req.Rows) == 0 {
		h.respondJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Error:   "rows is required",
		})
		return
	}

	applied, err := h.applyHandler.Handle(r.Context(), command.ApplyConsumptionCommand{Rows: req.Rows})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to apply consumption")
		h.respondJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.countOutcomes(applied)

	h.respondJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated",
		Data: map[string]interface{}{
			"items_consumed": applied,
		},
	})
}

// ConsumeFromKitchen handles POST /api/consume?date=. It pulls the committed
// batch for the date from the kitchen service and applies it to the ledger.
func (h *InventoryHandler) ConsumeFromKitchen(w http.ResponseWriter, r *http.Request) {
	defer h.observe("POST", "/api/consume", time.Now())

	date := r.URL.Query().Get("date")
	if date == "" {
		h.respondJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Error:   "date is required",
		})
		return
	}

	rows, err := h.kitchenClient.GetBatchConsumption(r.Context(), date)
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("date", date).Msg("Failed to fetch kitchen batch")
		h.respondJSON(w, r, http.StatusBadGateway, Response{
			Success: false,
			Error:   "Failed to fetch batch from kitchen service",
		})
		return
	}

	if len(rows) == 0 {
		h.respondJSON(w, r, http.StatusOK, Response{
			Success: true,
			Message: "No batch consumption recorded for " + date,
			Data: map[string]interface{}{
				"items_consumed": []domain.AppliedConsumption{},
			},
		})
		return
	}

	applied, err := h.applyHandler.Handle(r.Context(), command.ApplyConsumptionCommand{Rows: rows})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to apply kitchen batch")
		h.respondJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.countOutcomes(applied)

	h.respondJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated from kitchen batch for " + date,
		Data: map[string]interface{}{
			"items_consumed": applied,
		},
	})
}

// ListProcurements handles GET /api/procurements
func (h *InventoryHandler) ListProcurements(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/procurements", time.Now())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	requests, err := h.listProcurementsHandler.Handle(query.ListProcurementsQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list procurements")
		h.respondJSON(w, r, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list procurements",
		})
		return
	}

	h.respondJSON(w, r, http.StatusOK, Response{
		Success: true,
		Data:    requests,
	})
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/stock", h.ListStock).Methods("GET")
	router.HandleFunc("/api/consumption", h.ApplyConsumption).Methods("POST")
	router.HandleFunc("/api/consume", h.ConsumeFromKitchen).Methods("POST")
	router.HandleFunc("/api/procurements", h.ListProcurements).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Inventory service is healthy",
		})
	}).Methods("GET")
}

func (h *InventoryHandler) countOutcomes(applied []domain.AppliedConsumption) {
	for _, row := range applied {
		outcome := "applied"
		switch {
		case row.Clamped:
			outcome = "clamped"
		case row.Created:
			outcome = "created"
		}
		h.consumptionRows.WithLabelValues(outcome).Inc()
	}
}

func (h *InventoryHandler) observe(method, endpoint string, start time.Time) {
	h.requestLatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
}

// respondJSON sends a JSON response and records the request metric
func (h *InventoryHandler) respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	h.requestCounter.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
