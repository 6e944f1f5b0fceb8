package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color" // Colored console output, disabled automatically when not a terminal
)

// Colored level prefixes. fatih/color disables the escape codes on its own when
// stdout isn't a terminal (or NO_COLOR is set), which is exactly the gating the
// status lines need.
var (
	infoTag    = color.New(color.FgCyan).Sprint("INFO")
	warningTag = color.New(color.FgYellow).Sprint("WARNING")
	successTag = color.New(color.FgGreen).Sprint("SUCCESS")
	fatalTag   = color.New(color.FgRed).Sprint("FATAL")
	debugTag   = color.New(color.FgCyan).Sprint("DEBUG")
)

// Info prints an informational status line to stdout.
func Info(format string, a ...any) {
	fmt.Printf("%s: %s\n", infoTag, fmt.Sprintf(format, a...))
}

// Warn prints a warning to stderr.
func Warn(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", warningTag, fmt.Sprintf(format, a...))
}

// Success prints a final "everything worked" status line to stdout.
func Success(format string, a ...any) {
	fmt.Printf("%s: %s\n", successTag, fmt.Sprintf(format, a...))
}

// Debug logs debug messages if enabled, otherwise is a no-op.
// It is assigned during Init based on the --debug flag.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = func(format string, a ...any) {
			fmt.Printf("%s: %s\n", debugTag, fmt.Sprintf(format, a...))
		}
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// Fatal prints an error to stderr, reminds the user to rerun the command once
// the issue is resolved, and terminates the process with a non-zero status.
// It never returns.
func Fatal(format string, a ...any) {
	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "%s: %s\n", fatalTag, fmt.Sprintf(format, a...))
	fmt.Fprintln(os.Stderr, "\nPlease run this command again once the issue is resolved.")
	os.Exit(1)
}

// Exit is Fatal without the "run this command again" hint, for conditions a
// rerun can't fix (user cancellation, stop signals).
func Exit(format string, a ...any) {
	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "%s: %s\n", fatalTag, fmt.Sprintf(format, a...))
	os.Exit(1)
}
