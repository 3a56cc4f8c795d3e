package tosc

import (
	"fmt"

	"github.com/klauspost/compress/flate"
	"github.com/paulschiretz/pgl-tosc/pkg/util"
)

// Level represents the desired trade-off between speed and size of the compression.
type Level string

const (
	Default Level = "default"
	Fastest Level = "fastest"
	Better  Level = "better"
	Best    Level = "best"
)

var levelToString = map[Level]string{
	Default: "default",
	Fastest: "fastest",
	Better:  "better",
	Best:    "best",
}

var stringToLevel map[string]Level

func init() {
	stringToLevel = util.InvertMap(levelToString)
}

func (l Level) String() string {
	if str, ok := levelToString[l]; ok {
		return str
	}
	return string(Default)
}

// ParseLevel parses a string into a compression Level.
// It defaults to default level if the string is empty.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return Default, nil
	}
	if l, ok := stringToLevel[s]; ok {
		return l, nil
	}
	return "", fmt.Errorf("invalid compression level: %q. Must be 'default', 'fastest', 'better', or 'best'", s)
}

// zlibLevel maps the level onto the deflate level handed to the zlib writer.
func (l Level) zlibLevel() int {
	switch l {
	case Fastest:
		return flate.BestSpeed
	case Better:
		return 7
	case Best:
		return flate.BestCompression
	default:
		return flate.DefaultCompression
	}
}
