package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/indago/supply-chain/api-gateway/config"
	"github.com/indago/supply-chain/api-gateway/health"
	"github.com/indago/supply-chain/api-gateway/middleware"
	"github.com/indago/supply-chain/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	{
		Prefix:      "/api/orders",
		ServiceName: "order",
		Description: "Order intake and weekly rollup",
	},
	{
		Prefix:      "/api/stock",
		ServiceName: "inventory",
		Description: "Stock ledger",
	},
	{
		Prefix:      "/api/consumption",
		ServiceName: "inventory",
		Description: "Direct consumption rows",
	},
	{
		Prefix:      "/api/consume",
		ServiceName: "inventory",
		Description: "Pull committed batch from kitchen and apply",
	},
	{
		Prefix:      "/api/procurements",
		ServiceName: "inventory",
		Description: "Procurement log",
	},
	{
		Prefix:      "/api/purchase-requests",
		ServiceName: "finance",
		Description: "Purchase approval",
	},
	{
		Prefix:      "/api/finance",
		ServiceName: "finance",
		Description: "Decision ledger audit trail",
	},
	{
		Prefix:      "/api/production",
		ServiceName: "kitchen",
		Description: "Production planning and commit",
	},
	{
		Prefix:      "/api/batch",
		ServiceName: "kitchen",
		Description: "Committed batch consumption",
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, cbManager *middleware.CircuitBreakerManager) {
	// Create reverse proxy
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Create health checker
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed service health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)
		return c.JSON(healthStatus)
	})

	// Circuit breaker stats
	app.Get("/gateway/circuits", func(c *fiber.Ctx) error {
		return c.JSON(cbManager.GetAllStats())
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Supply Chain API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	// Create a route group for this service
	group := app.Group(route.Prefix)

	// Handle all HTTP methods with wildcard path
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	app.All(route.Prefix, handler)
}
