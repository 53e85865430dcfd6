package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger handles structured, configurable application logging.
type Logger struct {
	logrus *logrus.Logger
	ns     string
	args   []interface{}
}

// New returns a new Logger instance with the given namespace.
// After the namespace, arguments are key-value pairs which are included
// in all log messages.
func New(ns string, args ...interface{}) *Logger {
	l := &Logger{logrus: logrus.New(), ns: ns, args: args}
	l.Configure(DefaultConfig())
	return l
}

// NewLogger returns a new Logger instance configured with the given config.
func NewLogger(ns string, conf Config) *Logger {
	l := New(ns)
	l.Configure(conf)
	return l
}

// SetLevel sets the level of logging.
func (l *Logger) SetLevel(lvl string) {
	switch strings.ToLower(lvl) {
	case "debug":
		l.logrus.SetLevel(logrus.DebugLevel)
	case "info":
		l.logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		l.logrus.SetLevel(logrus.WarnLevel)
	case "error":
		l.logrus.SetLevel(logrus.ErrorLevel)
	default:
		l.logrus.SetLevel(logrus.InfoLevel)
	}
}

// SetFormatter sets the formatter.
func (l *Logger) SetFormatter(f Formatter) {
	l.logrus.SetFormatter(f)
}

// SetOutput sets the logging output.
func (l *Logger) SetOutput(w io.Writer) {
	l.logrus.SetOutput(w)
}

// Discard configures the logger to discard all logs.
func (l *Logger) Discard() {
	l.SetOutput(io.Discard)
}

// Debug logs a debug message.
//
// After the first argument, arguments are key-value pairs which are written as structured logs.
//     log.Debug("Some message here", "key1", value1, "key2", value2)
func (l *Logger) Debug(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry(args).Debug(msg)
}

// Info logs an info message.
//
// After the first argument, arguments are key-value pairs which are written as structured logs.
//     log.Info("Some message here", "key1", value1, "key2", value2)
func (l *Logger) Info(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry(args).Info(msg)
}

// Warn logs a warning message.
//
// After the first argument, arguments are key-value pairs which are written as structured logs.
//     log.Warn("Some message here", "key1", value1, "key2", value2)
func (l *Logger) Warn(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry(args).Warn(msg)
}

// Error logs an error message.
//
// After the first argument, arguments are key-value pairs which are written as structured logs.
//     log.Error("Some message here", "key1", value1, "key2", value2)
//
// Error has a two-argument version that can be used as a shortcut.
//     err := submit()
//     log.Error("Couldn't submit job", err)
func (l *Logger) Error(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry(args).Error(msg)
}

// WithFields returns a new Logger instance with the given fields added to
// all log messages.
func (l *Logger) WithFields(args ...interface{}) *Logger {
	base := make([]interface{}, 0, len(l.args)+len(args))
	base = append(base, l.args...)
	base = append(base, args...)
	return &Logger{logrus: l.logrus, ns: l.ns, args: base}
}

// NewSubLogger returns a new Logger instance with the given namespace,
// sharing this logger's output and configuration.
func (l *Logger) NewSubLogger(ns string, args ...interface{}) *Logger {
	sub := l.WithFields(args...)
	sub.ns = ns
	return sub
}

func (l *Logger) entry(args []interface{}) *logrus.Entry {
	f := fields(l.args...)
	for k, v := range fields(args...) {
		f[k] = v
	}
	f["ns"] = l.ns
	return l.logrus.WithFields(logrus.Fields(f))
}

func fields(args ...interface{}) map[string]interface{} {
	f := make(map[string]interface{}, len(args)/2)
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			f["error"] = err
		} else {
			f["unknown"] = args[0]
		}
		return f
	}
	for i := 0; i+1 < len(args); i += 2 {
		k := args[i].(string)
		v := args[i+1]
		f[k] = v
	}
	if len(args)%2 != 0 {
		f["unknown"] = args[len(args)-1]
	}
	return f
}

// recoverLogErr is used to recover from any panics during logging.
// Panics aren't expected of course, but logging should never crash
// a program, so this failsafe tries to prevent those crashes.
func recoverLogErr() {
	if r := recover(); r != nil {
		fmt.Fprintln(os.Stderr, "Recovered from logging panic", r)
	}
}

// PrintSimpleError prints out an error message with a red "ERROR:" prefix.
func PrintSimpleError(err error) {
	fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m %s\n", "ERROR:", err.Error())
}
