// Package transcode runs the two transcoding commands. Both follow the same
// three phases: Validate (preflight, no side effects), Transform (in memory,
// single attempt) and Commit (one atomic write of the output file).
package transcode

import (
	"context"
	"fmt"
	"os"

	"github.com/paulschiretz/pgl-tosc/pkg/plog"
	"github.com/paulschiretz/pgl-tosc/pkg/preflight"
	"github.com/paulschiretz/pgl-tosc/pkg/tosc"
	"github.com/paulschiretz/pgl-tosc/pkg/transcodemetrics"
)

// Transcoder executes extract and pack plans.
type Transcoder struct {
	validator *preflight.Validator
}

// NewTranscoder creates a new Transcoder.
func NewTranscoder(validator *preflight.Validator) *Transcoder {
	return &Transcoder{validator: validator}
}

// Extract decompresses the container at p.InputPath into p.OutputPath,
// optionally re-indenting the XML payload.
func (t *Transcoder) Extract(ctx context.Context, p *ExtractPlan) error {
	metrics := newMetrics(p.Metrics)

	// --- 1. Validate ---
	if err := t.validator.Run(ctx, &preflight.Plan{
		InputPath:      p.InputPath,
		OutputPath:     p.OutputPath,
		Force:          p.Force,
		Input:          preflight.ContainerInput,
		OutputWritable: true,
	}); err != nil {
		return err
	}

	// --- 2. Transform ---
	container, err := os.ReadFile(p.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	metrics.AddInputBytes(int64(len(container)))
	metrics.AddContainerBytes(int64(len(container)))

	payload, err := tosc.Decompress(container)
	if err != nil {
		return err
	}
	metrics.AddPayloadBytes(int64(len(payload)))
	plog.Notice("Decompressed container", "container_bytes", len(container), "payload_bytes", len(payload))

	if p.PrettyXML {
		payload, err = tosc.Indent(payload)
		if err != nil {
			return err
		}
		plog.Notice("Re-indented XML payload", "bytes", len(payload))
	}

	// --- 3. Commit ---
	if err := commit(ctx, p.OutputPath, payload); err != nil {
		return err
	}
	metrics.AddOutputBytes(int64(len(payload)))
	metrics.LogSummary("Extract summary")
	return nil
}

// Pack compresses the file at p.InputPath into a container at p.OutputPath,
// optionally stripping insignificant whitespace from the XML first.
func (t *Transcoder) Pack(ctx context.Context, p *PackPlan) error {
	metrics := newMetrics(p.Metrics)

	// --- 1. Validate ---
	if err := t.validator.Run(ctx, &preflight.Plan{
		InputPath:      p.InputPath,
		OutputPath:     p.OutputPath,
		Force:          p.Force,
		Input:          preflight.PlainInput,
		OutputWritable: true,
	}); err != nil {
		return err
	}

	// --- 2. Transform ---
	payload, err := os.ReadFile(p.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	metrics.AddInputBytes(int64(len(payload)))

	if p.ShrinkXML {
		payload, err = tosc.Shrink(payload)
		if err != nil {
			return err
		}
		plog.Notice("Shrunk XML payload", "bytes", len(payload))
	}
	metrics.AddPayloadBytes(int64(len(payload)))

	container, err := tosc.Compress(payload, p.Level)
	if err != nil {
		return err
	}
	metrics.AddContainerBytes(int64(len(container)))
	plog.Notice("Compressed payload", "payload_bytes", len(payload), "container_bytes", len(container), "level", p.Level)

	// --- 3. Commit ---
	if err := commit(ctx, p.OutputPath, container); err != nil {
		return err
	}
	metrics.AddOutputBytes(int64(len(container)))
	metrics.LogSummary("Pack summary")
	return nil
}

func newMetrics(enabled bool) transcodemetrics.Metrics {
	if enabled {
		return &transcodemetrics.TranscodeMetrics{}
	}
	return &transcodemetrics.NoopMetrics{}
}
