package transcodemetrics

import (
	"fmt"
	"sync/atomic"

	"github.com/paulschiretz/pgl-tosc/pkg/plog"
)

// Metrics defines the interface for collecting and reporting transcoding statistics.
type Metrics interface {
	AddInputBytes(n int64)
	AddOutputBytes(n int64)
	AddPayloadBytes(n int64)
	AddContainerBytes(n int64)
	LogSummary(msg string)
}

// TranscodeMetrics holds the counters for a transcoding run.
// It is the concrete implementation of the Metrics interface.
type TranscodeMetrics struct {
	InputBytes     atomic.Int64
	OutputBytes    atomic.Int64
	PayloadBytes   atomic.Int64
	ContainerBytes atomic.Int64
}

func (m *TranscodeMetrics) AddInputBytes(n int64)     { m.InputBytes.Add(n) }
func (m *TranscodeMetrics) AddOutputBytes(n int64)    { m.OutputBytes.Add(n) }
func (m *TranscodeMetrics) AddPayloadBytes(n int64)   { m.PayloadBytes.Add(n) }
func (m *TranscodeMetrics) AddContainerBytes(n int64) { m.ContainerBytes.Add(n) }

// Ratio returns the container size as a percentage of the payload size.
func (m *TranscodeMetrics) Ratio() float64 {
	payload := m.PayloadBytes.Load()
	if payload == 0 {
		return 0
	}
	return float64(m.ContainerBytes.Load()) / float64(payload) * 100.0
}

// LogSummary logs the current state of the metrics.
func (m *TranscodeMetrics) LogSummary(msg string) {
	plog.Info(msg,
		"input_bytes", m.InputBytes.Load(),
		"output_bytes", m.OutputBytes.Load(),
		"payload_bytes", m.PayloadBytes.Load(),
		"container_bytes", m.ContainerBytes.Load(),
		"ratio_pct", fmt.Sprintf("%.2f%%", m.Ratio()),
	)
}

// NoopMetrics is an implementation of the Metrics interface that performs no operations.
// It can be used to disable metrics collection without changing the calling code.
type NoopMetrics struct{}

func (m *NoopMetrics) AddInputBytes(n int64)     {}
func (m *NoopMetrics) AddOutputBytes(n int64)    {}
func (m *NoopMetrics) AddPayloadBytes(n int64)   {}
func (m *NoopMetrics) AddContainerBytes(n int64) {}
func (m *NoopMetrics) LogSummary(msg string)     {}

// Statically assert that our types implement the interface.
var _ Metrics = (*TranscodeMetrics)(nil)
var _ Metrics = (*NoopMetrics)(nil)
