package services

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/metrics"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/observability"
)

const (
	TriggerInit  = "init"
	TriggerApply = "apply"
	TriggerReset = "reset"
)

// Session holds the immutable record store together with the pending and
// applied filters. Only Apply and Reset recompute the dashboard; edits to the
// pending filter are inert until applied.
type Session struct {
	mu         sync.RWMutex
	records    []models.Record
	pending    models.FilterSpec
	applied    models.FilterSpec
	dashboard  models.Dashboard
	computedAt time.Time
	recomputes int64
	logger     *slog.Logger
	metrics    *metrics.Registry
}

func NewSession(records []models.Record, logger *slog.Logger, m *metrics.Registry) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewRegistry()
	}

	s := &Session{
		records: slices.Clone(records),
		pending: models.DefaultFilterSpec(),
		applied: models.DefaultFilterSpec(),
		logger:  logger,
		metrics: m,
	}
	m.StoreRecords.Set(float64(len(s.records)))

	s.mu.Lock()
	s.recompute(context.Background(), TriggerInit)
	s.mu.Unlock()
	return s
}

// EditPending replaces one field of the pending filter.
func (s *Session) EditPending(field models.FilterField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.pending.With(field, value)
	if !ok {
		return errors.ValidationField(string(field), "unknown filter field")
	}
	s.pending = next
	s.metrics.FilterEdits.WithLabelValues(string(field)).Inc()
	return nil
}

// SetPending replaces the whole pending filter.
func (s *Session) SetPending(spec models.FilterSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = spec
}

// Apply commits the pending filter and recomputes the dashboard.
func (s *Session) Apply(ctx context.Context) models.Dashboard {
	d, _ := s.ApplyValidated(ctx, nil)
	return d
}

// ApplyValidated runs validate against the pending filter and commits it
// under the same lock, so an edit cannot slip in between the check and the
// apply. On a validation error nothing changes and the error is returned.
func (s *Session) ApplyValidated(ctx context.Context, validate func(models.FilterSpec) error) (models.Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if validate != nil {
		if err := validate(s.pending); err != nil {
			return models.Dashboard{}, err
		}
	}

	s.applied = s.pending
	return s.recompute(ctx, TriggerApply), nil
}

// Reset restores both filters to the default and recomputes the dashboard.
func (s *Session) Reset(ctx context.Context) models.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = models.DefaultFilterSpec()
	s.applied = models.DefaultFilterSpec()
	return s.recompute(ctx, TriggerReset)
}

// recompute must be called with s.mu held for writing.
func (s *Session) recompute(ctx context.Context, trigger string) models.Dashboard {
	_, span := observability.StartSpan(ctx, "dashboard.recompute")
	span.SetTag("trigger", trigger)
	start := time.Now()

	s.dashboard = Compute(s.records, s.applied)
	s.computedAt = time.Now()
	s.recomputes++

	span.Finish()
	s.metrics.Recomputes.WithLabelValues(trigger).Inc()
	s.metrics.RecomputeSec.Observe(time.Since(start).Seconds())
	s.metrics.FilteredRecords.Set(float64(s.dashboard.FilteredCount))

	attrs := []any{
		"region", s.applied.Region,
		"category", s.applied.Category,
		"start_date", s.applied.StartDate,
		"end_date", s.applied.EndDate,
		"filtered", s.dashboard.FilteredCount,
		"records", len(s.records),
	}
	s.logger.Debug("dashboard recomputed", append(attrs, span.LogAttrs()...)...)
	return s.dashboard
}

func (s *Session) Pending() models.FilterSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

func (s *Session) Applied() models.FilterSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applied
}

// Dashboard returns the views computed by the last Apply or Reset.
func (s *Session) Dashboard() models.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dashboard
}

// Records returns a copy of the record store.
func (s *Session) Records() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *Session) Stats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]any{
		"record_count":   len(s.records),
		"filtered_count": s.dashboard.FilteredCount,
		"recomputes":     s.recomputes,
		"last_computed":  s.computedAt,
		"applied":        s.applied,
		"pending":        s.pending,
	}
}
