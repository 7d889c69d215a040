package monitor

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/sos-client/internal/entity"
)

var phases = []string{
	entity.Configuring{}.String(),
	entity.WaitingInLobby{}.String(),
	entity.Playing{}.String(),
	entity.Ended{}.String(),
}

type Metrics struct {
	Events        *prometheus.CounterVec
	Commands      *prometheus.CounterVec
	Phase         *prometheus.GaugeVec
	Resyncs       prometheus.Counter
	Version       prometheus.Gauge
	OnlineClients prometheus.Gauge
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Ledger events and acknowledgements by kind and outcome",
		}, []string{"kind", "outcome"}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Submitted commands by name and outcome",
		}, []string{"command", "outcome"}),
		Phase: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "session_phase",
			Help:      "1 for the phase the local session is in, 0 otherwise",
		}, []string{"phase"}),
		Resyncs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resyncs_total",
			Help:      "Times the session was rebuilt from ledger history",
		}),
		Version: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "session_version",
			Help:      "Version of the local session",
		}),
		OnlineClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "online_clients",
			Help:      "Connected websocket clients",
		}),
	}
}

// Monitor records engine and gateway activity.
type Monitor struct {
	metrics *Metrics
}

func NewMonitor(registerer prometheus.Registerer, namespace string) (*Monitor, error) {
	metrics := NewMetrics(namespace)

	for _, collector := range []prometheus.Collector{
		metrics.Events,
		metrics.Commands,
		metrics.Phase,
		metrics.Resyncs,
		metrics.Version,
		metrics.OnlineClients,
	} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return &Monitor{metrics: metrics}, nil
}

func (that *Monitor) Event(kind, outcome string) {
	that.metrics.Events.WithLabelValues(kind, outcome).Inc()
}

func (that *Monitor) Command(name, outcome string) {
	that.metrics.Commands.WithLabelValues(name, outcome).Inc()
}

func (that *Monitor) Session(session entity.GameSession) {
	current := session.Phase.String()

	for _, phase := range phases {
		value := 0.0
		if phase == current {
			value = 1
		}

		that.metrics.Phase.WithLabelValues(phase).Set(value)
	}

	that.metrics.Version.Set(float64(session.Version))
}

func (that *Monitor) Resync() {
	that.metrics.Resyncs.Inc()
}

func (that *Monitor) IncOnlineClients() {
	that.metrics.OnlineClients.Inc()
}

func (that *Monitor) DecOnlineClients() {
	that.metrics.OnlineClients.Dec()
}
