package file

import (
	"os"
	"sync"

	"github.com/damoonazarpazhooh/interleaver/internal/logger"
)

// Option - options setter method
type Option func(*Storage)

// Storage reads whole files into memory and writes them back. It has no
// cache and no background work; every call touches the disk.
type Storage struct {
	stateLock   sync.RWMutex
	logOps      bool
	initialized bool
	log         *logger.Logger
	// -----
	path     string
	fileMode os.FileMode
}

// LogOps -
func LogOps() Option {
	return func(e *Storage) {
		e.stateLock.Lock()
		defer e.stateLock.Unlock()
		e.logOps = true
	}
}

// WithPath - relative keys are resolved against arg
func WithPath(arg string) Option {
	return func(e *Storage) {
		e.stateLock.Lock()
		defer e.stateLock.Unlock()
		e.path = arg
	}
}

// WithFileMode - permission bits for files created by Put
func WithFileMode(arg os.FileMode) Option {
	return func(e *Storage) {
		e.stateLock.Lock()
		defer e.stateLock.Unlock()
		e.fileMode = arg
	}
}

// WithLogger -
func WithLogger(arg *logger.Logger) Option {
	return func(e *Storage) {
		e.stateLock.Lock()
		defer e.stateLock.Unlock()
		e.log = arg
	}
}
