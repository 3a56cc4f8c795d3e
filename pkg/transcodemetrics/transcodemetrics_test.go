package transcodemetrics

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/paulschiretz/pgl-tosc/pkg/plog"
)

func TestTranscodeMetrics_Adders(t *testing.T) {
	t.Run("correctly increments all counters", func(t *testing.T) {
		m := &TranscodeMetrics{}

		m.AddInputBytes(120)
		m.AddOutputBytes(400)
		m.AddPayloadBytes(400)
		m.AddContainerBytes(120)

		if got := m.InputBytes.Load(); got != 120 {
			t.Errorf("expected InputBytes to be 120, got %d", got)
		}
		if got := m.OutputBytes.Load(); got != 400 {
			t.Errorf("expected OutputBytes to be 400, got %d", got)
		}
		if got := m.PayloadBytes.Load(); got != 400 {
			t.Errorf("expected PayloadBytes to be 400, got %d", got)
		}
		if got := m.ContainerBytes.Load(); got != 120 {
			t.Errorf("expected ContainerBytes to be 120, got %d", got)
		}
	})
}

func TestTranscodeMetrics_Ratio(t *testing.T) {
	m := &TranscodeMetrics{}
	if got := m.Ratio(); got != 0 {
		t.Errorf("expected ratio 0 for an empty payload, got %f", got)
	}
	m.AddPayloadBytes(200)
	m.AddContainerBytes(50)
	if got := m.Ratio(); got != 25 {
		t.Errorf("expected ratio 25, got %f", got)
	}
}

func TestTranscodeMetrics_Log(t *testing.T) {
	t.Run("logs the correct summary values and ratio", func(t *testing.T) {
		// --- Setup: Redirect plog output to capture log output ---
		var logBuf bytes.Buffer
		plog.SetOutput(&logBuf)
		t.Cleanup(func() { plog.SetOutput(os.Stderr) }) // Restore original output after test.

		// --- Act ---
		m := &TranscodeMetrics{}
		m.AddInputBytes(100)
		m.AddOutputBytes(200)
		m.AddPayloadBytes(200)
		m.AddContainerBytes(100) // 50% ratio
		m.LogSummary("Test Extract Summary")

		// --- Assert ---
		output := logBuf.String()

		for _, want := range []string{
			"msg=\"Test Extract Summary\"",
			"input_bytes=100",
			"output_bytes=200",
			"payload_bytes=200",
			"container_bytes=100",
			"ratio_pct=50.00%",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected log output to contain %q, but it didn't. Got: %s", want, output)
			}
		}
	})
}

func TestNoopMetrics(t *testing.T) {
	var logBuf bytes.Buffer
	plog.SetOutput(&logBuf)
	t.Cleanup(func() { plog.SetOutput(os.Stderr) })

	m := &NoopMetrics{}
	m.AddInputBytes(1)
	m.AddOutputBytes(1)
	m.AddPayloadBytes(1)
	m.AddContainerBytes(1)
	m.LogSummary("should not appear")

	if logBuf.Len() != 0 {
		t.Errorf("expected no output from NoopMetrics, got: %s", logBuf.String())
	}
}
