package observers

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver считает оповещения по типам событий.
type MetricsObserver struct {
	notifications *prometheus.CounterVec
}

func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	notifications := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "go_idioms",
			Subsystem: "events",
			Name:      "notifications_total",
			Help:      "Total number of notifications received by type",
		},
		[]string{"event_type"},
	)
	if err := reg.Register(notifications); err != nil {
		return nil, fmt.Errorf("register notifications counter: %w", err)
	}

	return &MetricsObserver{notifications: notifications}, nil
}

func (m *MetricsObserver) Update(eventType string, _ map[string]any) error {
	m.notifications.WithLabelValues(eventType).Inc()
	return nil
}
