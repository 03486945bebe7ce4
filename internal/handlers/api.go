package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/format"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
)

const maxBodyBytes = 1 << 16

var noStore = map[string]string{
	"Cache-Control": "no-store",
}

type APIHandlers struct {
	session *services.Session
	logger  *slog.Logger
}

func NewAPIHandlers(session *services.Session, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		session: session,
		logger:  logger,
	}
}

type FiltersResponse struct {
	Pending models.FilterSpec `json:"pending"`
	Applied models.FilterSpec `json:"applied"`
}

type KPIResponse struct {
	models.KPISummary
	Formatted format.KPICardsView `json:"formatted"`
}

type EditPendingRequest struct {
	Field models.FilterField `json:"field"`
	Value string             `json:"value"`
}

func (h *APIHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.session.Dashboard(), noStore)
}

func (h *APIHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	k := h.session.Dashboard().KPIs
	errors.WriteSuccessWithHeaders(w, KPIResponse{KPISummary: k, Formatted: format.KPICards(k)}, noStore)
}

func (h *APIHandlers) HandleSalesOverTime(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.session.Dashboard().SalesOverTime, noStore)
}

func (h *APIHandlers) HandleRegionSales(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.session.Dashboard().SalesByRegion, noStore)
}

func (h *APIHandlers) HandleCategoryProfit(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.session.Dashboard().ProfitByCategory, noStore)
}

func (h *APIHandlers) HandleSalesMix(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.session.Dashboard().SalesMix, noStore)
}

func (h *APIHandlers) HandleRecentOrders(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.session.Dashboard().RecentOrders, noStore)
}

func (h *APIHandlers) HandleCategorySummary(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.session.Dashboard().CategorySummary, noStore)
}

func (h *APIHandlers) HandleFilters(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.filters(), noStore)
}

// HandleEditPending changes one field of the pending filter. The dashboard
// is not recomputed until the filter is applied.
func (h *APIHandlers) HandleEditPending(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	var req EditPendingRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		errors.WriteError(w, h.logger, errors.BadRequestWrap(err, "Request body must be JSON {field, value}"), requestID)
		return
	}

	if err := services.ValidateField(req.Field, req.Value); err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return
	}

	if err := h.session.EditPending(req.Field, req.Value); err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return
	}

	errors.WriteSuccessWithHeaders(w, h.filters(), noStore)
}

func (h *APIHandlers) HandleApply(w http.ResponseWriter, r *http.Request) {
	d, err := h.session.ApplyValidated(r.Context(), services.ValidateFilter)
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccessWithHeaders(w, d, noStore)
}

func (h *APIHandlers) HandleReset(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.session.Reset(r.Context()), noStore)
}

// HandleRecords returns the record store the dashboard is computed from.
func (h *APIHandlers) HandleRecords(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.session.Records(), noStore)
}

// HandleNotFound answers unknown API paths with a NOT_FOUND envelope
// instead of the mux's plain-text 404.
func (h *APIHandlers) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	errors.WriteError(w, h.logger, errors.NotFound("No API route for "+r.URL.Path), observability.GetRequestID(r.Context()))
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {

	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {

	stats := h.session.Stats()

	errors.WriteSuccess(w, stats)
}

func (h *APIHandlers) filters() FiltersResponse {
	return FiltersResponse{
		Pending: h.session.Pending(),
		Applied: h.session.Applied(),
	}
}
