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

// RunMakeTosc handles the logic for the make-tosc command. Relative paths in
// flagMap are resolved against cwd.
func RunMakeTosc(ctx context.Context, cwd string, flagMap map[string]interface{}) error {
	runConfig := config.MergeConfigWithFlags(flagparse.MakeTosc, config.NewDefault(), flagMap)
	runConfig.Runtime.WorkingDir = cwd

	if err := runConfig.Validate(flagparse.MakeTosc); err != nil {
		return err
	}

	plog.SetLevel(plog.LevelFromString(runConfig.LogLevel))
	plog.SetQuiet(runConfig.Quiet)
	runConfig.LogSummary(flagparse.MakeTosc)

	packPlan, err := planner.GeneratePackPlan(runConfig)
	if err != nil {
		return err
	}

	transcoder := transcode.NewTranscoder(preflight.NewValidator())
	startTime := time.Now()
	err = transcoder.Pack(ctx, packPlan)
	duration := time.Since(startTime).Round(time.Millisecond)
	if err != nil {
		return err
	}
	plog.Info(buildinfo.Name+" created container successfully.", "output", packPlan.OutputPath, "duration", duration)
	return nil
}
