package server

import (
	"log/slog"
	"net/http"

	"sales-dashboard/internal/handlers"
	"sales-dashboard/internal/metrics"
	"sales-dashboard/internal/services"
)

type Server struct {
	session     *services.Session
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

// MetricsEndpoint mounts a metrics registry. A nil Registry disables it.
type MetricsEndpoint struct {
	Path     string
	Registry *metrics.Registry
}

func NewServer(session *services.Session, logger *slog.Logger, templateHandlers *TemplateHandlers, metricsEndpoint MetricsEndpoint) *Server {
	s := &Server{
		session:     session,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(session, logger),
		sseHandlers: handlers.NewSSEHandlers(session, logger),
	}
	s.setupRoutes(templateHandlers, metricsEndpoint)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers, metricsEndpoint MetricsEndpoint) {
	// Dashboard routes
	s.mux.HandleFunc("GET /{$}", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	if metricsEndpoint.Registry != nil {
		s.mux.Handle("GET "+metricsEndpoint.Path, metricsEndpoint.Registry.Handler())
	}

	// REST API endpoints
	s.mux.HandleFunc("GET /api/dashboard", s.apiHandlers.HandleDashboard)
	s.mux.HandleFunc("GET /api/kpis", s.apiHandlers.HandleKPIs)
	s.mux.HandleFunc("GET /api/sales-over-time", s.apiHandlers.HandleSalesOverTime)
	s.mux.HandleFunc("GET /api/region-sales", s.apiHandlers.HandleRegionSales)
	s.mux.HandleFunc("GET /api/category-profit", s.apiHandlers.HandleCategoryProfit)
	s.mux.HandleFunc("GET /api/sales-mix", s.apiHandlers.HandleSalesMix)
	s.mux.HandleFunc("GET /api/recent-orders", s.apiHandlers.HandleRecentOrders)
	s.mux.HandleFunc("GET /api/category-summary", s.apiHandlers.HandleCategorySummary)
	s.mux.HandleFunc("GET /api/filters", s.apiHandlers.HandleFilters)
	s.mux.HandleFunc("GET /api/records", s.apiHandlers.HandleRecords)
	s.mux.HandleFunc("PATCH /api/filters/pending", s.apiHandlers.HandleEditPending)
	s.mux.HandleFunc("POST /api/filters/apply", s.apiHandlers.HandleApply)
	s.mux.HandleFunc("POST /api/filters/reset", s.apiHandlers.HandleReset)
	s.mux.HandleFunc("GET /api/", s.apiHandlers.HandleNotFound)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/dashboard", s.sseHandlers.HandleDashboard)
	s.mux.HandleFunc("POST /sse/filters/apply", s.sseHandlers.HandleApply)
	s.mux.HandleFunc("POST /sse/filters/reset", s.sseHandlers.HandleReset)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
