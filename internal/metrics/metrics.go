// metrics: Prometheus-коллекторы генерации новостей.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "newsgen"

// Metrics: счётчики генераций и пакетов.
// Методы безопасны для nil-приёмника: сервис в тестах работает без метрик.
type Metrics struct {
	generations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	batches     *prometheus.CounterVec
	inflight    prometheus.Gauge
}

// New создаёт коллекторы и регистрирует их в reg.
// reg == nil: регистрация в prometheus.DefaultRegisterer (его отдаёт promhttp.Handler).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generation attempts by provider and outcome kind.",
		}, []string{"provider", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Wall time of one provider generation, gateway call included.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 45, 60, 90},
		}, []string{"provider"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Finished batches by generation type and terminal status.",
		}, []string{"type", "status"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generations_in_flight",
			Help:      "Provider generations currently waiting on the gateway.",
		}),
	}

	reg.MustRegister(m.generations, m.duration, m.batches, m.inflight)

	return m
}

// ObserveGeneration учитывает одну попытку генерации.
// outcome: метка вида ошибки ("ok", "timeout", "upstream", ...).
func (m *Metrics) ObserveGeneration(provider, outcome string, took time.Duration) {
	if m == nil {
		return
	}

	m.generations.WithLabelValues(provider, outcome).Inc()
	m.duration.WithLabelValues(provider).Observe(took.Seconds())
}

// ObserveBatch учитывает пакет, дошедший до терминального статуса.
func (m *Metrics) ObserveBatch(genType, status string) {
	if m == nil {
		return
	}

	m.batches.WithLabelValues(genType, status).Inc()
}

// Begin отмечает начало генерации; возвращённая функция: её окончание.
func (m *Metrics) Begin() func() {
	if m == nil {
		return func() {}
	}

	m.inflight.Inc()
	return m.inflight.Dec
}
