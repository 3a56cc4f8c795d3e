package transcode

import "github.com/paulschiretz/pgl-tosc/pkg/tosc"

// ExtractPlan describes one container → XML run. Paths are absolute.
type ExtractPlan struct {
	InputPath  string
	OutputPath string
	Force      bool
	PrettyXML  bool
	Metrics    bool
}

// PackPlan describes one XML → container run. Paths are absolute.
type PackPlan struct {
	InputPath  string
	OutputPath string
	Force      bool
	ShrinkXML  bool
	Level      tosc.Level
	Metrics    bool
}
