package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/indago/supply-chain/internal/order/usecase/command"
	"github.com/indago/supply-chain/internal/order/usecase/query"
	"github.com/indago/supply-chain/pkg/logger"
)

// OrderHandler handles HTTP requests for order intake and the weekly rollup
type OrderHandler struct {
	// Command handlers
	createHandler    *command.CreateOrderHandler
	aggregateHandler *command.AggregateOrdersHandler

	// Query handlers
	listHandler       *query.ListOrdersHandler
	listWeeklyHandler *query.ListWeeklyOrdersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	ordersCreated  prometheus.Counter
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	createHandler *command.CreateOrderHandler,
	aggregateHandler *command.AggregateOrdersHandler,
	listHandler *query.ListOrdersHandler,
	listWeeklyHandler *query.ListWeeklyOrdersHandler,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_service_requests_total",
			Help: "Total number of requests to order service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_service_request_duration_seconds",
			Help:    "Duration of order service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_service_orders_created_total",
			Help: "Total number of individual orders recorded",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersCreated)

	return &OrderHandler{
		createHandler:     createHandler,
		aggregateHandler:  aggregateHandler,
		listHandler:       listHandler,
		listWeeklyHandler: listWeeklyHandler,
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		ordersCreated:     ordersCreated,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	defer h.observe("POST", "/api/orders", time.Now())

	var cmd command.CreateOrderCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.respondJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	order, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create order")
		h.respondJSON(w, r, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.ordersCreated.Inc()

	h.respondJSON(w, r, http.StatusCreated, Response{
		Success: true,
		Message: "Order recorded",
		Data:    order,
	})
}

// AggregateOrders handles POST /api/orders/aggregate
func (h *OrderHandler) AggregateOrders(w http.ResponseWriter, r *http.Request) {
	defer h.observe("POST", "/api/orders/aggregate", time.Now())

	weekly, err := h.aggregateHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to aggregate orders")
		h.respondJSON(w, r, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to aggregate orders",
		})
		return
	}

	h.respondJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: "Weekly rollup rebuilt",
		Data:    weekly,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/orders", time.Now())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	orders, err := h.listHandler.Handle(query.ListOrdersQuery{Limit: limit, Offset: offset})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		h.respondJSON(w, r, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list orders",
		})
		return
	}

	h.respondJSON(w, r, http.StatusOK, Response{
		Success: true,
		Data:    orders,
	})
}

// ListWeeklyOrders handles GET /api/orders/weekly
func (h *OrderHandler) ListWeeklyOrders(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/orders/weekly", time.Now())

	weekly, err := h.listWeeklyHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list weekly orders")
		h.respondJSON(w, r, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list weekly orders",
		})
		return
	}

	h.respondJSON(w, r, http.StatusOK, Response{
		Success: true,
		Data:    weekly,
	})
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.CreateOrder).Methods("POST")
	router.HandleFunc("/api/orders", h.ListOrders).Methods("GET")
	router.HandleFunc("/api/orders/aggregate", h.AggregateOrders).Methods("POST")
	router.HandleFunc("/api/orders/weekly", h.ListWeeklyOrders).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *OrderHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Order service is healthy",
		})
	}).Methods("GET")
}

func (h *OrderHandler) observe(method, endpoint string, start time.Time) {
	h.requestLatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
}

// respondJSON sends a JSON response and records the request metric
func (h *OrderHandler) respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	h.requestCounter.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
