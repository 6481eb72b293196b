package tools

import (
	"fmt"

	"github.com/golang/glog"
)

var isEnabled = true

func DisableLogger() {
	isEnabled = false
}

// Logs user facing progress messages unless the logger was disabled with -silent
func LogOutput(val ...interface{}) {
	if isEnabled {
		glog.InfoDepth(1, val...)
	}
}

func LogOutputf(format string, args ...interface{}) {
	if isEnabled {
		glog.InfoDepth(1, fmt.Sprintf(format, args...))
	}
}
