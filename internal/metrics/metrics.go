package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg             *prometheus.Registry
	Recomputes      *prometheus.CounterVec
	RecomputeSec    prometheus.Histogram
	FilteredRecords prometheus.Gauge
	StoreRecords    prometheus.Gauge
	FilterEdits     *prometheus.CounterVec
	SkippedRows     prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	recomputes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_recompute_total",
		Help: "Dashboard recomputations by trigger.",
	}, []string{"trigger"})
	recomputeSec := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_recompute_seconds",
		Help:    "Time spent filtering and aggregating the record store.",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
	})
	filtered := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_filtered_records",
		Help: "Records matching the applied filters.",
	})
	store := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_store_records",
		Help: "Records in the session record store.",
	})
	edits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_filter_edits_total",
		Help: "Pending filter edits by field.",
	}, []string{"field"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_csv_skipped_rows_total",
		Help: "CSV rows rejected while loading the record store.",
	})

	r.MustRegister(recomputes, recomputeSec, filtered, store, edits, skipped)
	return &Registry{
		reg:             r,
		Recomputes:      recomputes,
		RecomputeSec:    recomputeSec,
		FilteredRecords: filtered,
		StoreRecords:    store,
		FilterEdits:     edits,
		SkippedRows:     skipped,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
