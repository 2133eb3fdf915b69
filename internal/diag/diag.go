// Package diag is the launcher's failure-reporting surface.
//
// Every failure is logged through logrus. Interactive dialogs are a
// build-time choice: compiling with the `dialogs` tag on Windows adds a
// MessageBox for each report, the default build stays silent. Debug output
// (resolved paths, the offending command line on spawn failure) is likewise
// a build-time choice, enabled by linking with
//
//	-ldflags "-X pslauncher/internal/diag.debug=true"
package diag

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// debug selects the debug build flavor. Set at link time; the launcher reads
// no flags or environment variables beyond its argv contract.
var debug = "false"

func init() {
	logrus.SetOutput(os.Stderr)
	if debug == "true" {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.ErrorLevel)
	}
}

// Debugf logs diagnostic detail visible only in debug builds.
func Debugf(format string, args ...any) {
	logrus.Debugf(format, args...)
}

// Errorf reports a failure under a short title. In a dialogs build the
// report is additionally shown as an error dialog.
func Errorf(title, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logrus.WithField("title", title).Error(msg)
	showDialog(title, msg, iconError)
}

// Usage displays the static help text. Unlike error reports, usage is always
// written to stderr regardless of build flavor; a dialogs build also shows
// it interactively.
func Usage(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	showDialog("PS-Launcher Help", msg, iconInfo)
}
