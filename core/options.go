package session

import (
	"time"

	"github.com/voxmeet/meet-core/core/attendees"
	"github.com/voxmeet/meet-core/core/audioclient"
	"github.com/voxmeet/meet-core/core/config"
)

type SessionOption func(*Session)

// AnalyticsPublisher is the analytics sink collaborator. Publish must not
// block the engine callback for long and must never panic into the core.
type AnalyticsPublisher interface {
	Publish(name string, attributes map[string]string)
}

// WithAnalyticsPublisher wires the analytics sink.
func WithAnalyticsPublisher(client AnalyticsPublisher) SessionOption {
	return func(s *Session) { s.analytics.set(client) }
}

// MetricsSink is the metrics pipeline collaborator. The session forwards raw
// engine metric payloads verbatim.
type MetricsSink interface {
	ProcessEngineMetrics(metrics map[audioclient.MetricKind]float64)
}

// WithMetricsSink wires the metrics pipeline.
func WithMetricsSink(client MetricsSink) SessionOption {
	return func(s *Session) { s.metrics.set(client) }
}

// StatsCollector is the meeting statistics collaborator.
type StatsCollector interface {
	UpdateMeetingStartTime(start time.Time)
	IncrementRetryCount()
	IncrementPoorConnectionCount()
	Reset()
}

// WithStatsCollector wires the meeting statistics collector.
func WithStatsCollector(client StatsCollector) SessionOption {
	return func(s *Session) { s.stats.set(client) }
}

// WithEngineController wires the engine handle used by the failure-stop path.
func WithEngineController(client audioclient.Controller) SessionOption {
	return func(s *Session) { s.engine.set(client) }
}

// WithLifecycle shares a lifecycle handle with an external session
// controller. Both sides then stop the session under the same lock.
func WithLifecycle(lifecycle *Lifecycle) SessionOption {
	return func(s *Session) {
		if lifecycle != nil {
			s.lifecycle = lifecycle
		}
	}
}

// WithConfiguration takes the local attendee credentials from a loaded
// meeting configuration.
func WithConfiguration(cfg *config.MeetingConfiguration) SessionOption {
	return func(s *Session) {
		if cfg != nil {
			s.resolver = attendees.NewIdentityResolver(cfg.AttendeeID, cfg.ExternalUserID)
		}
	}
}

// WithLocalIdentity sets the local attendee credentials directly.
func WithLocalIdentity(attendeeID, externalUserID string) SessionOption {
	return func(s *Session) {
		s.resolver = attendees.NewIdentityResolver(attendeeID, externalUserID)
	}
}

// analyticsPublisher, metricsSink, statsCollector and engineController are
// nil-guarded facades so the session can treat every collaborator as
// optional.
type analyticsPublisher struct{ client AnalyticsPublisher }

func (a *analyticsPublisher) set(client AnalyticsPublisher) { a.client = client }

func (a *analyticsPublisher) publish(name string, attributes map[string]string) {
	if a.client != nil {
		a.client.Publish(name, attributes)
	}
}

type metricsSink struct{ client MetricsSink }

func (m *metricsSink) set(client MetricsSink) { m.client = client }

func (m *metricsSink) process(metrics map[audioclient.MetricKind]float64) {
	if m.client != nil {
		m.client.ProcessEngineMetrics(metrics)
	}
}

type statsCollector struct{ client StatsCollector }

func (c *statsCollector) set(client StatsCollector) { c.client = client }

func (c *statsCollector) updateMeetingStartTime(start time.Time) {
	if c.client != nil {
		c.client.UpdateMeetingStartTime(start)
	}
}

func (c *statsCollector) incrementRetryCount() {
	if c.client != nil {
		c.client.IncrementRetryCount()
	}
}

func (c *statsCollector) incrementPoorConnectionCount() {
	if c.client != nil {
		c.client.IncrementPoorConnectionCount()
	}
}

func (c *statsCollector) reset() {
	if c.client != nil {
		c.client.Reset()
	}
}

type engineController struct{ client audioclient.Controller }

func (e *engineController) set(client audioclient.Controller) { e.client = client }

func (e *engineController) stopSession() error {
	if e.client == nil {
		return nil
	}
	return e.client.StopSession()
}
