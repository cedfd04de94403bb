//go:build !release

package log

import (
	"fmt"
	"log"
	"sync/atomic"
)

var debug atomic.Bool

// SetDebug turns Debugf output on or off.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
}

// Debugf calls the standard log.Printf() with a [DEBUG] prefix when debug output is on.
func Debugf(format string, v ...interface{}) {
	if debug.Load() {
		log.Output(2, "[DEBUG] "+fmt.Sprintf(format, v...))
	}
}
