package util

import (
	"io"
	"log"
	"os"
)

var flagEnableTrace bool = os.Getenv("PALWIN_TRACE") == "1"

var logger = log.New(os.Stderr, "", log.LstdFlags)

func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

func TraceEnabled() bool {
	return flagEnableTrace
}

// SetOutput redirects both trace and info lines.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		logger.Printf(format, v...)
	}
}

func Infof(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
