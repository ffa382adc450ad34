package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Lookups — завершённые поиски заказа по исходу (ok|validation|not_found|...).
	Lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_viewer_lookups_total",
			Help: "Number of finished order lookups by outcome",
		},
		[]string{"outcome"},
	)
	LookupDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_viewer_lookup_duration_seconds",
			Help:    "Time from submit to display of an order lookup",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// APIResponses — ответы API заказов по HTTP-коду.
var APIResponses = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_viewer_api_responses_total",
		Help: "Responses received from the order API",
	},
	[]string{"code"},
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(Lookups, LookupDuration, APIResponses)
	})
}
