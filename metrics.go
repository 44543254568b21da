package weddingnanny

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/eringen/weddingnanny/content"
)

type storeMetrics struct {
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
}

func newStoreMetrics(reg prometheus.Registerer, store *content.Store, pages *PageCache) *storeMetrics {
	f := promauto.With(reg)
	m := &storeMetrics{
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "weddingnanny_store_mutations_total",
			Help: "Content store mutations applied in memory, by operation",
		}, []string{"op"}),
		persistFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "weddingnanny_store_persist_failures_total",
			Help: "Mutations that could not be written to the storage slot, by operation",
		}, []string{"op"}),
	}
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "weddingnanny_backups",
		Help: "Number of stored backups",
	}, func() float64 { return float64(len(store.Backups())) })
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "weddingnanny_change_log_entries",
		Help: "Number of change log entries",
	}, func() float64 { return float64(len(store.Logs())) })
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "weddingnanny_cached_pages",
		Help: "Rendered public pages held in the page cache",
	}, func() float64 { return float64(pages.Len()) })
	return m
}

func (m *storeMetrics) observe(ev content.Event) {
	if ev.Op == content.OpLoad {
		return
	}
	m.mutations.WithLabelValues(string(ev.Op)).Inc()
	if ev.Err != nil {
		m.persistFailures.WithLabelValues(string(ev.Op)).Inc()
	}
}

func (a *App) metricsHandler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: a.registry})
}
