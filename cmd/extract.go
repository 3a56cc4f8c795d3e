package cmd

import (
	"context"
	"time"

	"github.com/paulschiretz/pgl-tosc/pkg/buildinfo"
	"github.com/paulschiretz/pgl-tosc/pkg/config"
	"github.com/paulschiretz/pgl-tosc/pkg/flagparse"
	"github.com/paulschiretz/pgl-tosc/pkg/planner"
	"github.com/paulschiretz/pgl-tosc/pkg/plog"
	"github.com/paulschiretz/pgl-tosc/pkg/preflight"
	"github.com/paulschiretz/pgl-tosc/pkg/transcode"
)

// RunExtractXML handles the logic for the extract-xml command. Relative paths
// in flagMap are resolved against cwd.
func RunExtractXML(ctx context.Context, cwd string, flagMap map[string]interface{}) error {
	// Merge the flag values over the defaults to get the final run config.
	runConfig := config.MergeConfigWithFlags(flagparse.ExtractXML, config.NewDefault(), flagMap)
	runConfig.Runtime.WorkingDir = cwd

	// CRITICAL: Validate the config for the run
	if err := runConfig.Validate(flagparse.ExtractXML); err != nil {
		return err
	}

	// Set the global log level based on the final configuration.
	plog.SetLevel(plog.LevelFromString(runConfig.LogLevel))
	plog.SetQuiet(runConfig.Quiet)

	// Log the Summary
	runConfig.LogSummary(flagparse.ExtractXML)

	// Get the Plan
	extractPlan, err := planner.GenerateExtractPlan(runConfig)
	if err != nil {
		return err
	}

	// Execute the plan
	transcoder := transcode.NewTranscoder(preflight.NewValidator())
	startTime := time.Now()
	err = transcoder.Extract(ctx, extractPlan)
	duration := time.Since(startTime).Round(time.Millisecond)
	if err != nil {
		return err // The error will be reported by main()
	}
	plog.Info(buildinfo.Name+" extracted XML successfully.", "output", extractPlan.OutputPath, "duration", duration)
	return nil
}
