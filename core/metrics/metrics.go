// Package metrics is the Prometheus-backed implementation of the session
// core's metrics sink and meeting stats collector contracts.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/voxmeet/meet-core/core/audioclient"
)

var engineMetricNames = map[audioclient.MetricKind]string{
	audioclient.MetricAudioSendPacketLossPercent:    "audio_send_packet_loss_percent",
	audioclient.MetricAudioReceivePacketLossPercent: "audio_receive_packet_loss_percent",
	audioclient.MetricAudioSendBitrate:              "audio_send_bitrate",
	audioclient.MetricAudioReceiveBitrate:           "audio_receive_bitrate",
	audioclient.MetricAudioSpeakerDelayMs:           "audio_speaker_delay_ms",
}

// Collector exposes raw engine metrics as gauges and meeting statistics as
// counters. It implements both session.MetricsSink and session.StatsCollector.
type Collector struct {
	registry *prometheus.Registry

	engineMetrics       *prometheus.GaugeVec
	meetingStartSeconds prometheus.Gauge
	retriesTotal        prometheus.Counter
	poorConnectionTotal prometheus.Counter
	resetsTotal         prometheus.Counter
}

// New creates and registers the meeting metrics.
func New() *Collector {
	registry := prometheus.NewRegistry()

	engineMetrics := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "meet_engine_metric",
		Help: "Raw engine metric values keyed by metric kind",
	}, []string{"kind"})
	meetingStartSeconds := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "meet_meeting_start_timestamp_seconds",
		Help: "Unix timestamp of the last successful meeting start",
	})
	retriesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meet_reconnect_retries_total",
		Help: "Total number of successful reconnects",
	})
	poorConnectionTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meet_poor_connection_total",
		Help: "Total number of times the connection became poor",
	})
	resetsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meet_stats_resets_total",
		Help: "Total number of meeting statistics resets",
	})

	registry.MustRegister(
		engineMetrics,
		meetingStartSeconds,
		retriesTotal,
		poorConnectionTotal,
		resetsTotal,
	)

	return &Collector{
		registry:            registry,
		engineMetrics:       engineMetrics,
		meetingStartSeconds: meetingStartSeconds,
		retriesTotal:        retriesTotal,
		poorConnectionTotal: poorConnectionTotal,
		resetsTotal:         resetsTotal,
	}
}

// ProcessEngineMetrics records one raw engine metrics payload. Unrecognized
// metric kinds are dropped.
func (c *Collector) ProcessEngineMetrics(metrics map[audioclient.MetricKind]float64) {
	for kind, value := range metrics {
		name, known := engineMetricNames[kind]
		if !known {
			continue
		}
		c.engineMetrics.WithLabelValues(name).Set(value)
	}
}

// UpdateMeetingStartTime records the last successful meeting start.
func (c *Collector) UpdateMeetingStartTime(start time.Time) {
	c.meetingStartSeconds.Set(float64(start.Unix()))
}

// IncrementRetryCount counts one successful reconnect.
func (c *Collector) IncrementRetryCount() {
	c.retriesTotal.Inc()
}

// IncrementPoorConnectionCount counts one ok-to-poor health transition.
func (c *Collector) IncrementPoorConnectionCount() {
	c.poorConnectionTotal.Inc()
}

// Reset marks a statistics reset. Counters are monotonic by contract, so the
// reset itself is counted and the start gauge cleared.
func (c *Collector) Reset() {
	c.meetingStartSeconds.Set(0)
	c.resetsTotal.Inc()
}

// Handler serves the registered metrics for scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
