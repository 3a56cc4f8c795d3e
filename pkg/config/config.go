package config

import (
	"fmt"

	"github.com/paulschiretz/pgl-tosc/pkg/buildinfo"
	"github.com/paulschiretz/pgl-tosc/pkg/flagparse"
	"github.com/paulschiretz/pgl-tosc/pkg/plog"
	"github.com/paulschiretz/pgl-tosc/pkg/tosc"
	"github.com/paulschiretz/pgl-tosc/pkg/usererr"
	"github.com/paulschiretz/pgl-tosc/pkg/util"
)

type ExtractConfig struct {
	PrettyXML bool
}

type PackConfig struct {
	ShrinkXML        bool
	CompressionLevel string
}

type RuntimeConfig struct {
	// WorkingDir is the directory relative paths are resolved against.
	WorkingDir string
}

type Config struct {
	Version  string
	LogLevel string
	Metrics  bool
	Quiet    bool

	Input  string
	Output string
	Force  bool

	Runtime RuntimeConfig
	Extract ExtractConfig
	Pack    PackConfig
}

// NewDefault creates and returns a Config struct with sensible default
// values.
func NewDefault() Config {
	return Config{
		Version:  buildinfo.Version,
		LogLevel: "info",
		Metrics:  false,
		Quiet:    false,
		Force:    false,
		Extract: ExtractConfig{
			PrettyXML: false,
		},
		Pack: PackConfig{
			ShrinkXML:        false,
			CompressionLevel: tosc.Default.String(),
		},
	}
}

// Validate checks the configuration for the given command. On success Input
// and Output are absolute, and Output carries the default name derived from
// Input when none was given.
func (c *Config) Validate(command flagparse.Command) error {
	// --- Strict Path Validation (Fail-Fast) ---
	if c.Input == "" {
		return usererr.New(usererr.InvalidArgument, "input path cannot be empty")
	}

	var err error
	c.Input, err = util.ResolvePath(c.Runtime.WorkingDir, c.Input)
	if err != nil {
		return fmt.Errorf("could not resolve input path: %w", err)
	}

	if c.Output == "" {
		switch command {
		case flagparse.ExtractXML:
			c.Output = tosc.DefaultXMLPath(c.Input)
		case flagparse.MakeTosc:
			c.Output = tosc.DefaultContainerPath(c.Input)
		default:
			return fmt.Errorf("no default output path for command %s", command)
		}
	} else {
		c.Output, err = util.ResolvePath(c.Runtime.WorkingDir, c.Output)
		if err != nil {
			return fmt.Errorf("could not resolve output path: %w", err)
		}
	}

	if c.Output == c.Input {
		return usererr.New(usererr.InvalidArgument, "output path cannot be the same as the input path: %s", c.Input)
	}

	if command == flagparse.MakeTosc {
		if _, err := tosc.ParseLevel(c.Pack.CompressionLevel); err != nil {
			return usererr.Wrap(usererr.InvalidArgument, err)
		}
	}
	return nil
}

// LogSummary prints a user-friendly summary of the configuration for the
// given command.
func (c *Config) LogSummary(command flagparse.Command) {
	logArgs := []interface{}{
		"command", command,
		"log_level", c.LogLevel,
		"input", c.Input,
		"output", c.Output,
		"force", c.Force,
		"metrics", c.Metrics,
		"quiet", c.Quiet,
	}
	switch command {
	case flagparse.ExtractXML:
		logArgs = append(logArgs, "pretty_xml", c.Extract.PrettyXML)
	case flagparse.MakeTosc:
		logArgs = append(logArgs, "shrink_xml", c.Pack.ShrinkXML)
		logArgs = append(logArgs, "compression_level", c.Pack.CompressionLevel)
	}
	plog.Notice("Run configuration", logArgs...)
}

// MergeConfigWithFlags overlays the flag values on top of a base
// configuration. It iterates over the setFlags map, which contains only the flags
// explicitly provided by the user on the command line.
func MergeConfigWithFlags(command flagparse.Command, base Config, setFlags map[string]any) Config {
	merged := base

	for name, value := range setFlags {
		switch name {
		case flagparse.InputKey:
			merged.Input = value.(string)
		case "output-path":
			merged.Output = value.(string)
		case "force":
			merged.Force = value.(bool)
		case "log-level":
			merged.LogLevel = value.(string)
		case "metrics":
			merged.Metrics = value.(bool)
		case "quiet":
			merged.Quiet = value.(bool)
		case "pretty-xml":
			switch command {
			case flagparse.ExtractXML:
				merged.Extract.PrettyXML = value.(bool)
			default:
			}
		case "shrink-xml":
			switch command {
			case flagparse.MakeTosc:
				merged.Pack.ShrinkXML = value.(bool)
			default:
			}
		case "compression-level":
			switch command {
			case flagparse.MakeTosc:
				merged.Pack.CompressionLevel = value.(string)
			default:
			}
		default:
			plog.Debug("unhandled flag in MergeConfigWithFlags", "flag", name)
		}
	}
	return merged
}
