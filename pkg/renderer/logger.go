package renderer

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/neudoerf/raytracing/pkg/core"
)

// DefaultLogger implements core.Logger on top of glog's info log
type DefaultLogger struct{}

// Printf logs at info level, attributing the line to the caller
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, fmt.Sprintf(format, args...))
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
