// Package metrics records facts about a generation run and writes them in
// the Prometheus text format for the node_exporter textfile collector.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"nifty-filter/internal/brand"
	"nifty-filter/internal/clock"
	"nifty-filter/internal/config"
	"nifty-filter/internal/errors"
)

// Recorder holds the generation metrics in a private registry.
type Recorder struct {
	registry *prometheus.Registry

	ResolutionErrors prometheus.Gauge
	AcceptPorts      *prometheus.GaugeVec
	ForwardRoutes    *prometheus.GaugeVec
	IcmpTypes        *prometheus.GaugeVec
	RulesetLines     prometheus.Gauge
	LastGeneration   prometheus.Gauge

	clock clock.Clock
}

// NewRecorder creates a Recorder with all gauges registered.
func NewRecorder() *Recorder {
	return NewRecorderWithClock(clock.Real{})
}

// NewRecorderWithClock is NewRecorder with the generation timestamp taken
// from c.
func NewRecorderWithClock(c clock.Clock) *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	ns := brand.MetricsNamespace

	return &Recorder{
		registry: reg,
		clock:    c,

		ResolutionErrors: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "resolution_errors",
			Help:      "Number of configuration errors in the last run",
		}),
		AcceptPorts: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "accept_ports",
			Help:      "Number of ports accepted per zone and protocol",
		}, []string{"zone", "protocol"}),
		ForwardRoutes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "forward_routes",
			Help:      "Number of port forwards per zone and protocol",
		}, []string{"zone", "protocol"}),
		IcmpTypes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "icmp_types",
			Help:      "Number of ICMP types accepted per zone",
		}, []string{"zone"}),
		RulesetLines: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "ruleset_lines",
			Help:      "Number of lines in the generated ruleset",
		}),
		LastGeneration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "last_generation_timestamp_seconds",
			Help:      "Unix timestamp of the last successful generation",
		}),
	}
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordRouter sets the per-zone gauges from a resolved configuration.
func (r *Recorder) RecordRouter(rt *config.Router) {
	r.ResolutionErrors.Set(0)

	r.AcceptPorts.WithLabelValues("lan", "tcp").Set(float64(rt.TCPAcceptLAN.Len()))
	r.AcceptPorts.WithLabelValues("lan", "udp").Set(float64(rt.UDPAcceptLAN.Len()))
	r.AcceptPorts.WithLabelValues("wan", "tcp").Set(float64(rt.TCPAcceptWAN.Len()))
	r.AcceptPorts.WithLabelValues("wan", "udp").Set(float64(rt.UDPAcceptWAN.Len()))

	r.ForwardRoutes.WithLabelValues("lan", "tcp").Set(float64(rt.TCPForwardLAN.Len()))
	r.ForwardRoutes.WithLabelValues("lan", "udp").Set(float64(rt.UDPForwardLAN.Len()))
	r.ForwardRoutes.WithLabelValues("wan", "tcp").Set(float64(rt.TCPForwardWAN.Len()))
	r.ForwardRoutes.WithLabelValues("wan", "udp").Set(float64(rt.UDPForwardWAN.Len()))

	r.IcmpTypes.WithLabelValues("lan").Set(float64(rt.IcmpAcceptLAN.Len()))
	r.IcmpTypes.WithLabelValues("wan").Set(float64(rt.IcmpAcceptWAN.Len()))
}

// RecordFailure counts the errors of a failed resolution.
func (r *Recorder) RecordFailure(err error) {
	r.ResolutionErrors.Set(float64(len(errors.Split(err))))
}

// RecordRuleset counts the lines of the normalized ruleset and stamps the
// generation time.
func (r *Recorder) RecordRuleset(ruleset string) {
	lines := 0
	if ruleset != "" {
		lines = strings.Count(ruleset, "\n") + 1
	}
	r.RulesetLines.Set(float64(lines))
	r.LastGeneration.Set(float64(r.clock.Now().Unix()))
}

// WriteTextfile atomically writes the metrics to path in text format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, errors.KindIO, "failed to write metrics to %s", path)
	}
	return nil
}
