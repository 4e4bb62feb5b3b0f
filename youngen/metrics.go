package youngen

import "github.com/prometheus/client_golang/prometheus"

// Metrics exports the Stats numbers except Collections through
// Prometheus, via a
// dedicated registry devoid of the default go_gc*/go_mem* collectors,
// with one gauge or counter per tracked value.
type Metrics struct {
	registry        *prometheus.Registry
	lifetime        prometheus.Gauge
	percentageUsed  prometheus.Gauge
	promotedObjects prometheus.Counter
	excessObjects   prometheus.Counter
}

// NewMetrics builds a fresh registry carrying only the young-generation
// collector's own series.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		lifetime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "youngen",
			Name:      "lifetime",
			Help:      "current promotion-age threshold",
		}),
		percentageUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "youngen",
			Name:      "survivor_percentage_used",
			Help:      "percentage of the active survivor space in use after the last collection",
		}),
		promotedObjects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "youngen",
			Name:      "promoted_objects_total",
			Help:      "objects promoted to the mature heap, cumulative",
		}),
		excessObjects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "youngen",
			Name:      "copy_spills_total",
			Help:      "objects forced to promote because to-space lacked room, cumulative",
		}),
	}
	reg.MustRegister(m.lifetime, m.percentageUsed, m.promotedObjects, m.excessObjects)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Observe records one collection's Stats.
func (m *Metrics) Observe(s Stats) {
	m.lifetime.Set(float64(s.Lifetime))
	m.percentageUsed.Set(s.PercentageUsed)
	m.promotedObjects.Add(float64(s.PromotedObjects))
	m.excessObjects.Add(float64(s.ExcessObjects))
}
