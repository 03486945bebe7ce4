package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/format"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/services"
	"sales-dashboard/internal/ui/templates"
)

type SSEHandlers struct {
	session *services.Session
	logger  *slog.Logger
}

func NewSSEHandlers(session *services.Session, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		session: session,
		logger:  logger,
	}
}

// HandleDashboard patches the panels and chart signals for the applied
// filter without changing any state.
func (h *SSEHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	if err := h.patchDashboard(r.Context(), sse, h.session.Dashboard()); err != nil {
		h.logger.Error("patch dashboard", "error", err)
		return
	}

	flush(w)
}

// HandleApply reads the pending filter from the page signals, validates it
// and applies it. Validation failures are patched into the error slot and
// leave the applied filter untouched.
func (h *SSEHandlers) HandleApply(w http.ResponseWriter, r *http.Request) {
	var pending models.FilterSpec
	if err := datastar.ReadSignals(r, &pending); err != nil {
		errors.WriteError(w, h.logger, errors.BadRequestWrap(err, "Invalid filter signals"), observability.GetRequestID(r.Context()))
		return
	}
	pending = normalizeFilter(pending)

	sse := datastar.NewSSE(w, r)

	if err := services.ValidateFilter(pending); err != nil {
		h.rejectFilter(r, w, sse, err)
		return
	}

	h.session.SetPending(pending)
	d, err := h.session.ApplyValidated(r.Context(), services.ValidateFilter)
	if err != nil {
		h.rejectFilter(r, w, sse, err)
		return
	}

	if err := h.patch(r.Context(), sse, templates.FilterError("")); err != nil {
		h.logger.Error("clear filter error", "error", err)
		return
	}
	if err := h.patchDashboard(r.Context(), sse, d); err != nil {
		h.logger.Error("patch dashboard", "error", err)
		return
	}

	flush(w)
}

// HandleReset restores the default filter and patches the form, its signals
// and the panels.
func (h *SSEHandlers) HandleReset(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	d := h.session.Reset(r.Context())

	filterSignals, err := json.Marshal(d.Filters)
	if err != nil {
		h.logger.Error("marshal filter signals", "error", err)
		return
	}
	if err := sse.PatchSignals(filterSignals); err != nil {
		h.logger.Error("patch filter signals", "error", err)
		return
	}

	if err := h.patch(r.Context(), sse, templates.FilterForm(d.Filters)); err != nil {
		h.logger.Error("patch filter form", "error", err)
		return
	}
	if err := h.patch(r.Context(), sse, templates.FilterError("")); err != nil {
		h.logger.Error("clear filter error", "error", err)
		return
	}
	if err := h.patchDashboard(r.Context(), sse, d); err != nil {
		h.logger.Error("patch dashboard", "error", err)
		return
	}

	flush(w)
}

func (h *SSEHandlers) rejectFilter(r *http.Request, w http.ResponseWriter, sse *datastar.ServerSentEventGenerator, err error) {
	h.logger.Warn("rejected filter", "error", err, "request_id", observability.GetRequestID(r.Context()))
	if perr := h.patch(r.Context(), sse, templates.FilterError(validationMessage(err))); perr != nil {
		h.logger.Error("patch filter error", "error", perr)
	}
	flush(w)
}

func (h *SSEHandlers) patchDashboard(ctx context.Context, sse *datastar.ServerSentEventGenerator, d models.Dashboard) error {
	if err := h.patch(ctx, sse, templates.Panels(d)); err != nil {
		return err
	}

	signals, err := json.Marshal(map[string]any{
		"kpis":             format.KPICards(d.KPIs),
		"salesOverTime":    d.SalesOverTime,
		"salesByRegion":    d.SalesByRegion,
		"profitByCategory": d.ProfitByCategory,
		"salesMix":         d.SalesMix,
	})
	if err != nil {
		return fmt.Errorf("marshal chart signals: %w", err)
	}
	return sse.PatchSignals(signals)
}

func (h *SSEHandlers) patch(ctx context.Context, sse *datastar.ServerSentEventGenerator, c templ.Component) error {
	html, err := templates.RenderString(ctx, c)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return sse.PatchElements(html)
}

func validationMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		if appErr.Field != "" {
			return appErr.Field + " " + appErr.Message
		}
		return appErr.Message
	}
	return err.Error()
}

func flush(w http.ResponseWriter) {
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
