package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/mitchellh/colorstring"
)

// Logger writes colored, leveled lines to a single sink.
// Info lines are only written when verbose output was requested; warnings
// and errors are always written.
type Logger struct {
	stateLock sync.Mutex
	out       io.Writer
	verbose   bool
	colorize  colorstring.Colorize
}

// Option ...
type Option func(*Logger)

// Verbose -
func Verbose() Option {
	return func(l *Logger) {
		l.verbose = true
	}
}

// NoColor -
func NoColor() Option {
	return func(l *Logger) {
		l.colorize.Disable = true
	}
}

// New returns a logger writing to out.
func New(out io.Writer, opts ...Option) *Logger {
	result := &Logger{
		out: out,
		colorize: colorstring.Colorize{
			Colors: colorstring.DefaultColors,
			Reset:  true,
		},
	}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, NoColor())
}

// IsVerbose ...
func (l *Logger) IsVerbose() bool {
	return l.verbose
}

// Infof -
func (l *Logger) Infof(component, format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[yellow][INFO]", component, format, args...)
}

// Warnf -
func (l *Logger) Warnf(component, format string, args ...interface{}) {
	l.write("[magenta][WARN]", component, format, args...)
}

// Errorf -
func (l *Logger) Errorf(component, format string, args ...interface{}) {
	l.write("[red][ERROR]", component, format, args...)
}

// only the prefix goes through colorstring, paths in the message may
// contain brackets.
func (l *Logger) write(level, component, format string, args ...interface{}) {
	prefix := l.colorize.Color(fmt.Sprintf("%s %s :", level, component))
	l.stateLock.Lock()
	defer l.stateLock.Unlock()
	fmt.Fprintf(l.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
