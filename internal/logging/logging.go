package logging

import (
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// NewWithWriter creates a named logger writing to w.
//
// level: trace, debug, info, warn, error (unknown values fall back to info)
// format: "text" or "json"
func NewWithWriter(name, level, format string, w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      ParseLevel(level),
		Output:     w,
		JSONFormat: strings.EqualFold(format, "json"),
	})
}

// ParseLevel converts a level name, defaulting to info.
func ParseLevel(s string) hclog.Level {
	level := hclog.LevelFromString(strings.TrimSpace(s))
	if level == hclog.NoLevel {
		return hclog.Info
	}
	return level
}
