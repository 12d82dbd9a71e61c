// Package output owns the CLI's terminal surface: the structured logger on
// stderr, styled stdout rendering, the TTY probe, and the spinner helper.
// Diagnostics always go to stderr so command output stays pipeable.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide logger. Commands call the package-level helpers
// below instead of threading a logger through every layer.
var Logger = newLogger(log.InfoLevel, false)

func newLogger(level log.Level, verbose bool) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		ReportCaller:    verbose,
	})
}

// SetupLogging reconfigures the global logger. Verbose mode lowers the level
// to debug and adds timestamps and caller locations.
func SetupLogging(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	Logger = newLogger(level, verbose)
}

// Debug logs a debug message with optional key/value pairs.
func Debug(msg string, keyvals ...any) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning.
func Warn(msg string, keyvals ...any) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error.
func Error(msg string, keyvals ...any) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs an error and exits the process.
func Fatal(msg string, keyvals ...any) {
	Logger.Fatal(msg, keyvals...)
}

// Print writes to stdout as-is. Command results go through Print/Println,
// never the logger.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println writes to stdout followed by a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}
