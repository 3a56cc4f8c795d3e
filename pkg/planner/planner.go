// Package planner turns a validated Config into the plan a transcoding run executes.
package planner

import (
	"fmt"

	"github.com/paulschiretz/pgl-tosc/pkg/config"
	"github.com/paulschiretz/pgl-tosc/pkg/tosc"
	"github.com/paulschiretz/pgl-tosc/pkg/transcode"
)

func GenerateExtractPlan(cfg config.Config) (*transcode.ExtractPlan, error) {
	if err := checkPaths(cfg); err != nil {
		return nil, err
	}

	return &transcode.ExtractPlan{
		InputPath:  cfg.Input,
		OutputPath: cfg.Output,
		Force:      cfg.Force,
		PrettyXML:  cfg.Extract.PrettyXML,
		// Global Flags
		Metrics: cfg.Metrics,
	}, nil
}

func GeneratePackPlan(cfg config.Config) (*transcode.PackPlan, error) {
	if err := checkPaths(cfg); err != nil {
		return nil, err
	}

	// Parse values
	level, err := tosc.ParseLevel(cfg.Pack.CompressionLevel)
	if err != nil {
		return nil, err
	}

	return &transcode.PackPlan{
		InputPath:  cfg.Input,
		OutputPath: cfg.Output,
		Force:      cfg.Force,
		ShrinkXML:  cfg.Pack.ShrinkXML,
		Level:      level,
		// Global Flags
		Metrics: cfg.Metrics,
	}, nil
}

// checkPaths guards against configs that skipped Validate.
func checkPaths(cfg config.Config) error {
	if cfg.Input == "" || cfg.Output == "" {
		return fmt.Errorf("plan requires both an input and an output path (input=%q, output=%q)", cfg.Input, cfg.Output)
	}
	return nil
}
