package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sales-dashboard/internal/models"
)

func TestNewSSEHandlers(t *testing.T) {
	session := newTestSession()
	logger := testLogger()

	handlers := NewSSEHandlers(session, logger)

	if handlers.session != session {
		t.Error("NewSSEHandlers() should set session field")
	}
	if handlers.logger != logger {
		t.Error("NewSSEHandlers() should set logger field")
	}
}

func TestSSEHandlers_HandleDashboard(t *testing.T) {
	h := NewSSEHandlers(newTestSession(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/dashboard", nil)
	w := httptest.NewRecorder()
	h.HandleDashboard(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Errorf("Content-Type = %q, want text/event-stream", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		"datastar-patch-elements",
		"datastar-patch-signals",
		"dashboard-panels",
		"salesOverTime",
		"$700",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("stream should contain %q", want)
		}
	}
}

func TestSSEHandlers_HandleApply(t *testing.T) {
	session := newTestSession()
	h := NewSSEHandlers(session, testLogger())

	body := `{"region":"South","category":"All","startDate":"","endDate":"","kpis":{}}`
	req := httptest.NewRequest(http.MethodPost, "/sse/filters/apply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.HandleApply(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	if session.Applied().Region != models.RegionSouth {
		t.Errorf("applied region = %s, want South", session.Applied().Region)
	}
	if session.Pending() != session.Applied() {
		t.Errorf("pending = %+v, want it to match the applied filter", session.Pending())
	}
	if got := session.Dashboard().FilteredCount; got != 1 {
		t.Errorf("filtered = %d, want 1", got)
	}
	if !strings.Contains(w.Body.String(), "1 of 3 records") {
		t.Error("stream should patch the recomputed panels")
	}
}

func TestSSEHandlers_HandleApplyMissingEnumsDefaultToAll(t *testing.T) {
	session := newTestSession()
	h := NewSSEHandlers(session, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/sse/filters/apply", strings.NewReader(`{"endDate":"2024-01-31"}`))
	req.Header.Set("Content-Type", "application/json")
	h.HandleApply(httptest.NewRecorder(), req)

	want := models.FilterSpec{Region: "All", Category: "All", EndDate: "2024-01-31"}
	if got := session.Applied(); got != want {
		t.Errorf("applied = %+v, want %+v", got, want)
	}
}

func TestSSEHandlers_HandleApplyRejected(t *testing.T) {
	session := newTestSession()
	h := NewSSEHandlers(session, testLogger())

	body := `{"region":"All","category":"All","startDate":"2024-13-01","endDate":""}`
	req := httptest.NewRequest(http.MethodPost, "/sse/filters/apply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.HandleApply(w, req)

	out := w.Body.String()
	if !strings.Contains(out, "filter-error") || !strings.Contains(out, "startDate must be empty or YYYY-MM-DD") {
		t.Errorf("stream should patch the validation message, got %q", out)
	}
	if strings.Contains(out, "dashboard-panels") {
		t.Error("a rejected filter must not patch the panels")
	}
	if !session.Applied().IsDefault() || !session.Pending().IsDefault() {
		t.Error("a rejected filter must not change the session")
	}
}

func TestSSEHandlers_HandleApplyMalformed(t *testing.T) {
	h := NewSSEHandlers(newTestSession(), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/sse/filters/apply", strings.NewReader(`{"region":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.HandleApply(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSSEHandlers_HandleReset(t *testing.T) {
	session := newTestSession()
	h := NewSSEHandlers(session, testLogger())

	session.SetPending(models.FilterSpec{Region: models.RegionEast, Category: "All"})
	session.Apply(t.Context())

	w := httptest.NewRecorder()
	h.HandleReset(w, httptest.NewRequest(http.MethodPost, "/sse/filters/reset", nil))

	if !session.Applied().IsDefault() {
		t.Error("reset should restore the applied filter")
	}

	body := w.Body.String()
	for _, want := range []string{"filter-form", "filter-error", "dashboard-panels", "3 of 3 records", `"region":"All"`} {
		if !strings.Contains(body, want) {
			t.Errorf("stream should contain %q", want)
		}
	}
}
