package lib

import (
	"io"
	"io/ioutil"
	"log"
	"os"
)

// warnLog is the diagnostic stream for recoverable anomalies. It defaults
// to discarding output; LogActive flips it to stderr, matching the
// teacher CLI's logActive toggle.
var warnLog = log.New(ioutil.Discard, "", 0)

// LogActive turns the warning diagnostic stream on or off.
func LogActive(on bool) {
	if on {
		warnLog.SetOutput(os.Stderr)
	} else {
		warnLog.SetOutput(ioutil.Discard)
	}
}

// SetWarnOutput redirects the warning stream to an arbitrary writer,
// primarily for tests that want to capture it.
func SetWarnOutput(w io.Writer) {
	warnLog.SetOutput(w)
}

func warnf(format string, args ...interface{}) {
	warnLog.Printf(format, args...)
}
